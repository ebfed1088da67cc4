package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linkme/linkme-api/schema"
)

func (m *mongoDB) CreateRating(ctx context.Context, rating *schema.Rating) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	if _, err := m.collection(schema.RatingCollection).InsertOne(ctx, rating); err != nil {
		if isDuplicateKey(err, "uix_ratings_request_from") {
			return ErrDuplicateRating
		}
		return err
	}
	return nil
}

func (m *mongoDB) GetRatingByRequestAndUser(ctx context.Context, helpRequestID, fromUserID string) (*schema.Rating, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var r schema.Rating
	if err := m.collection(schema.RatingCollection).FindOne(ctx, bson.M{
		"help_request_id": helpRequestID,
		"from_user_id":    fromUserID,
	}).Decode(&r); err != nil {
		return nil, mongoNotFoundOr(err)
	}
	return &r, nil
}
