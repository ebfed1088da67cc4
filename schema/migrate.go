package schema

import (
	"github.com/jinzhu/gorm"
)

// AutoMigrate creates or updates the postgres tables and their unique
// indexes. The index names are the constraint names the store matches
// unique violations against.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&HelpRequest{},
		&Conversation{},
		&Message{},
		&Rating{},
	).Error
}
