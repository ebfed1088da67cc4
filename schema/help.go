package schema

import (
	"time"
)

const (
	HelpRequestCollection = "help_requests"
)

type Urgency string

const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyFlexible Urgency = "flexible"
)

func (u Urgency) Valid() bool {
	return u == UrgencyUrgent || u == UrgencyFlexible
}

type RequestStatus string

const (
	HelpOpen      RequestStatus = "open"
	HelpAccepted  RequestStatus = "accepted"
	HelpCompleted RequestStatus = "completed"
	HelpCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case HelpOpen, HelpAccepted, HelpCompleted, HelpCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition can leave the status
func (s RequestStatus) Terminal() bool {
	return s == HelpCompleted || s == HelpCancelled
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HelpRequest struct {
	ID            string        `json:"id" gorm:"type:varchar(36);primary_key" bson:"_id"`
	UserID        string        `json:"userId" gorm:"type:varchar(36);not null;index" bson:"user_id"`
	UserName      string        `json:"userName" gorm:"not null" bson:"user_name"`
	Category      CategoryID    `json:"category" gorm:"type:text;not null" bson:"category"`
	Description   string        `json:"description" gorm:"not null" bson:"description"`
	Urgency       Urgency       `json:"urgency" gorm:"type:varchar(16);not null;default:'flexible'" bson:"urgency"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(16);not null;default:'open';index" bson:"status"`
	Latitude      *float64      `json:"latitude" bson:"latitude"`
	Longitude     *float64      `json:"longitude" bson:"longitude"`
	Address       string        `json:"address" gorm:"not null" bson:"address"`
	VolunteerID   *string       `json:"volunteerId,omitempty" gorm:"type:varchar(36)" bson:"volunteer_id,omitempty"`
	VolunteerName *string       `json:"volunteerName,omitempty" bson:"volunteer_name,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" bson:"created_at"`

	// AIMatchScore is computed per volunteer listing and never stored
	AIMatchScore *int `json:"aiMatchScore,omitempty" gorm:"-" bson:"-"`
}

// Location returns the coordinates of the request, or nil when unknown
func (h HelpRequest) Location() *Location {
	if h.Latitude == nil || h.Longitude == nil {
		return nil
	}
	return &Location{Latitude: *h.Latitude, Longitude: *h.Longitude}
}

// IsParticipant reports whether the user owns the request or is its
// assigned volunteer
func (h HelpRequest) IsParticipant(userID string) bool {
	if h.UserID == userID {
		return true
	}
	return h.VolunteerID != nil && *h.VolunteerID == userID
}

// Assignment is the volunteer a request is handed to on acceptance. A nil
// assignment clears the volunteer.
type Assignment struct {
	VolunteerID   string
	VolunteerName string
}
