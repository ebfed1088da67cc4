package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/linkme/linkme-api/schema"
)

// CreateRating stores a rating. There is no update or delete counterpart:
// ratings are immutable.
func (s *LinkStore) CreateRating(ctx context.Context, rating *schema.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	if err := s.ormDB.Create(rating).Error; err != nil {
		if isUniqueViolation(err, "uix_ratings_request_from") {
			return ErrDuplicateRating
		}
		return err
	}

	return nil
}

func (s *LinkStore) GetRatingByRequestAndUser(ctx context.Context, helpRequestID, fromUserID string) (*schema.Rating, error) {
	var r schema.Rating
	if err := s.ormDB.Where("help_request_id = ? AND from_user_id = ?", helpRequestID, fromUserID).First(&r).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &r, nil
}
