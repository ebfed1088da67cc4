package schema

import (
	"database/sql/driver"
	"time"

	"github.com/lib/pq"
)

const (
	UserCollection = "users"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleVolunteer Role = "volunteer"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleVolunteer
}

// Categories is the ordered list of help categories a user offers. It is
// stored as a postgres text array.
type Categories []CategoryID

func (c Categories) Value() (driver.Value, error) {
	a := make(pq.StringArray, 0, len(c))
	for _, id := range c {
		a = append(a, string(id))
	}
	return a.Value()
}

func (c *Categories) Scan(src interface{}) error {
	var a pq.StringArray
	if err := a.Scan(src); err != nil {
		return err
	}

	ids := make(Categories, 0, len(a))
	for _, s := range a {
		ids = append(ids, CategoryID(s))
	}
	*c = ids
	return nil
}

// Set returns the categories as a lookup set
func (c Categories) Set() CategorySet {
	return NewCategorySet(c...)
}

type User struct {
	ID             string     `json:"id" gorm:"type:varchar(36);primary_key" bson:"_id"`
	Email          string     `json:"email" gorm:"not null;unique_index:uix_users_email" bson:"email"`
	PasswordHash   string     `json:"-" gorm:"column:password;not null" bson:"password"`
	Name           string     `json:"name" gorm:"not null" bson:"name"`
	Role           Role       `json:"role" gorm:"type:varchar(16);not null;default:'user'" bson:"role"`
	JmbgHash       string     `json:"-" gorm:"not null;unique_index:uix_users_jmbg_hash" bson:"jmbg_hash"`
	HelpCategories Categories `json:"helpCategories" gorm:"type:text[];not null;default:'{}'" bson:"help_categories"`
	Rating         float64    `json:"rating" gorm:"not null;default:0" bson:"rating"`
	RatingCount    int        `json:"ratingCount" gorm:"not null;default:0" bson:"rating_count"`
	CreatedAt      time.Time  `json:"createdAt" bson:"created_at"`
}

// ProfileUpdate carries the mutable part of a user. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name           *string
	Role           *Role
	HelpCategories *Categories
}
