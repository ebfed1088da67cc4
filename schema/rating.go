package schema

import (
	"time"
)

const (
	RatingCollection = "ratings"

	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is immutable once stored. At most one exists per
// (HelpRequestID, FromUserID).
type Rating struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primary_key" bson:"_id"`
	FromUserID    string    `json:"fromUserId" gorm:"type:varchar(36);not null;unique_index:uix_ratings_request_from" bson:"from_user_id"`
	ToUserID      string    `json:"toUserId" gorm:"type:varchar(36);not null;index" bson:"to_user_id"`
	HelpRequestID string    `json:"helpRequestId" gorm:"type:varchar(36);not null;unique_index:uix_ratings_request_from" bson:"help_request_id"`
	Score         int       `json:"score" gorm:"not null" bson:"score"`
	Comment       *string   `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
}
