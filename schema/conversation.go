package schema

import (
	"time"
)

const (
	ConversationCollection = "conversations"
	MessageCollection      = "messages"
)

// PairKey normalizes an unordered pair of participant ids
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Conversation struct {
	ID               string    `json:"id" gorm:"type:varchar(36);primary_key" bson:"_id"`
	HelpRequestID    *string   `json:"helpRequestId,omitempty" gorm:"type:varchar(36)" bson:"help_request_id,omitempty"`
	Participant1ID   string    `json:"participant1Id" gorm:"type:varchar(36);not null;index" bson:"participant1_id"`
	Participant1Name string    `json:"participant1Name" gorm:"not null" bson:"participant1_name"`
	Participant2ID   string    `json:"participant2Id" gorm:"type:varchar(36);not null;index" bson:"participant2_id"`
	Participant2Name string    `json:"participant2Name" gorm:"not null" bson:"participant2_name"`
	PairKey          string    `json:"-" gorm:"not null;unique_index:uix_conversations_pair_key" bson:"pair_key"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updated_at"`

	LastMessage *Message `json:"lastMessage,omitempty" gorm:"-" bson:"-"`
	UnreadCount int      `json:"unreadCount" gorm:"-" bson:"-"`
}

func (c Conversation) Participants() []Participant {
	return []Participant{
		{ID: c.Participant1ID, Name: c.Participant1Name},
		{ID: c.Participant2ID, Name: c.Participant2Name},
	}
}

func (c Conversation) HasParticipant(userID string) bool {
	return c.Participant1ID == userID || c.Participant2ID == userID
}

type Message struct {
	ID             string    `json:"id" gorm:"type:varchar(36);primary_key" bson:"_id"`
	ConversationID string    `json:"conversationId" gorm:"type:varchar(36);not null;index" bson:"conversation_id"`
	SenderID       string    `json:"senderId" gorm:"type:varchar(36);not null" bson:"sender_id"`
	SenderName     string    `json:"senderName" gorm:"not null" bson:"sender_name"`
	Text           string    `json:"text" gorm:"not null" bson:"text"`
	Read           bool      `json:"read" gorm:"not null;default:false" bson:"read"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
}
