package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/linkme/linkme-api/schema"
)

// CreateUser registers a user. Email and identity hash collisions are
// reported as ErrDuplicateEmail and ErrDuplicateIdentity.
func (s *LinkStore) CreateUser(ctx context.Context, user *schema.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.HelpCategories == nil {
		user.HelpCategories = schema.Categories{}
	}

	if err := s.ormDB.Create(user).Error; err != nil {
		switch {
		case isUniqueViolation(err, "uix_users_email"):
			return ErrDuplicateEmail
		case isUniqueViolation(err, "uix_users_jmbg_hash"):
			return ErrDuplicateIdentity
		}
		return err
	}

	return nil
}

// GetUser returns a user of a given id
func (s *LinkStore) GetUser(ctx context.Context, id string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *LinkStore) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

func (s *LinkStore) GetUserByJmbgHash(ctx context.Context, jmbgHash string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("jmbg_hash = ?", jmbgHash).First(&u).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &u, nil
}

// UpdateUserProfile is to update the mutable fields of a user
func (s *LinkStore) UpdateUserProfile(ctx context.Context, id string, update schema.ProfileUpdate) (*schema.User, error) {
	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.HelpCategories != nil {
		fields["help_categories"] = *update.HelpCategories
	}

	if len(fields) > 0 {
		result := s.ormDB.Model(&schema.User{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrRecordNotFound
		}
	}

	return s.GetUser(ctx, id)
}

// ApplyRating updates the running mean within one statement so concurrent
// ratings for the same user never lose an update
func (s *LinkStore) ApplyRating(ctx context.Context, userID string, score int) (*schema.User, error) {
	result := s.ormDB.Model(&schema.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"rating":       gorm.Expr("(rating * rating_count + ?) / (rating_count + 1)", score),
		"rating_count": gorm.Expr("rating_count + 1"),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return s.GetUser(ctx, userID)
}
