package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/linkme/linkme-api/schema"
)

// CreateConversation inserts a conversation. The unique pair key turns a
// concurrent insert for the same participants into ErrConversationExists.
func (s *LinkStore) CreateConversation(ctx context.Context, conversation *schema.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.PairKey = schema.PairKey(conversation.Participant1ID, conversation.Participant2ID)
	if conversation.UpdatedAt.IsZero() {
		conversation.UpdatedAt = time.Now().UTC()
	}

	// the loser of a race looks up the winner in the same transaction
	return s.savepoint("create_conversation", func() error {
		if err := s.ormDB.Create(conversation).Error; err != nil {
			if isUniqueViolation(err, "uix_conversations_pair_key") {
				return ErrConversationExists
			}
			return err
		}
		return nil
	})
}

func (s *LinkStore) GetConversation(ctx context.Context, id string) (*schema.Conversation, error) {
	var c schema.Conversation
	if err := s.ormDB.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

// GetConversationByParticipants finds the conversation of two users in
// either slot order
func (s *LinkStore) GetConversationByParticipants(ctx context.Context, userID1, userID2 string) (*schema.Conversation, error) {
	var c schema.Conversation
	if err := s.ormDB.Where("pair_key = ?", schema.PairKey(userID1, userID2)).First(&c).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &c, nil
}

func (s *LinkStore) ListConversationsByUser(ctx context.Context, userID string) ([]schema.Conversation, error) {
	conversations := []schema.Conversation{}

	if err := s.ormDB.
		Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, err
	}

	return conversations, nil
}

func (s *LinkStore) TouchConversation(ctx context.Context, id string, at time.Time) error {
	result := s.ormDB.Model(schema.Conversation{}).Where("id = ?", id).UpdateColumn("updated_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *LinkStore) CreateMessage(ctx context.Context, message *schema.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	return s.ormDB.Create(message).Error
}

// ListMessagesByConversation returns messages oldest first
func (s *LinkStore) ListMessagesByConversation(ctx context.Context, conversationID string) ([]schema.Message, error) {
	messages := []schema.Message{}

	if err := s.ormDB.Where("conversation_id = ?", conversationID).Order("created_at ASC").Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *LinkStore) MarkMessagesAsRead(ctx context.Context, conversationID, readerID string) (int64, error) {
	result := s.ormDB.Model(schema.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND read = ?", conversationID, readerID, false).
		UpdateColumn("read", true)

	return result.RowsAffected, result.Error
}
