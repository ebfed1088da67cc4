package help

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/linkme/linkme-api/schema"
	"github.com/linkme/linkme-api/store"
)

// GetOrCreateConversation returns the conversation between a and b,
// creating it when there is none. Lookup ignores the participant order and
// an existing conversation is returned untouched. The caller must be one
// of the participants.
func (s *Service) GetOrCreateConversation(ctx context.Context, session Session, a, b schema.Participant, helpRequestID *string) (*schema.Conversation, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	if session.UserID != a.ID && session.UserID != b.ID {
		return nil, notPermitted("caller is not a participant")
	}

	return s.getOrCreateConversation(ctx, s.store, a, b, helpRequestID)
}

func (s *Service) getOrCreateConversation(ctx context.Context, core store.LinkCore, a, b schema.Participant, helpRequestID *string) (*schema.Conversation, error) {
	a.Name, b.Name = strings.TrimSpace(a.Name), strings.TrimSpace(b.Name)
	if a.ID == "" || b.ID == "" || a.Name == "" || b.Name == "" {
		return nil, validationError("missing participant")
	}
	if a.ID == b.ID {
		return nil, validationError("cannot start a conversation with yourself")
	}

	existing, err := core.GetConversationByParticipants(ctx, a.ID, b.ID)
	if err == nil {
		return existing, nil
	}
	if err != store.ErrRecordNotFound {
		return nil, storeError("lookup conversation", err)
	}

	if helpRequestID != nil && *helpRequestID == "" {
		helpRequestID = nil
	}

	conversation := &schema.Conversation{
		HelpRequestID:    helpRequestID,
		Participant1ID:   a.ID,
		Participant1Name: a.Name,
		Participant2ID:   b.ID,
		Participant2Name: b.Name,
		UpdatedAt:        s.now(),
	}

	switch err := core.CreateConversation(ctx, conversation); err {
	case nil:
		log.WithFields(log.Fields{
			"prefix":       logPrefix,
			"conversation": conversation.ID,
		}).Debug("conversation created")
		return conversation, nil
	case store.ErrConversationExists:
		// lost the race, return the winner's conversation
		winner, err := core.GetConversationByParticipants(ctx, a.ID, b.ID)
		if err != nil {
			return nil, storeError("lookup conversation", err)
		}
		return winner, nil
	default:
		return nil, storeError("create conversation", err)
	}
}

// participantConversation loads a conversation the caller takes part in
func (s *Service) participantConversation(ctx context.Context, session Session, id string) (*schema.Conversation, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	conversation, err := s.store.GetConversation(ctx, id)
	if err != nil {
		return nil, storeError("conversation", err)
	}

	if !conversation.HasParticipant(session.UserID) {
		return nil, notPermitted("caller is not a participant")
	}

	return conversation, nil
}

func (s *Service) GetConversation(ctx context.Context, session Session, id string) (*schema.Conversation, error) {
	return s.participantConversation(ctx, session, id)
}

// ListConversations returns the caller's conversations, most recently
// active first, each with its last message and the number of messages the
// caller has not read yet
func (s *Service) ListConversations(ctx context.Context, session Session) ([]schema.Conversation, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	conversations, err := s.store.ListConversationsByUser(ctx, session.UserID)
	if err != nil {
		return nil, storeError("list conversations", err)
	}

	for i := range conversations {
		messages, err := s.store.ListMessagesByConversation(ctx, conversations[i].ID)
		if err != nil {
			return nil, storeError("list messages", err)
		}

		unread := 0
		for _, m := range messages {
			if m.SenderID != session.UserID && !m.Read {
				unread++
			}
		}
		conversations[i].UnreadCount = unread

		if n := len(messages); n > 0 {
			last := messages[n-1]
			conversations[i].LastMessage = &last
		}
	}

	return conversations, nil
}

// ListMessages returns the messages of a conversation, oldest first
func (s *Service) ListMessages(ctx context.Context, session Session, conversationID string) ([]schema.Message, error) {
	if _, err := s.participantConversation(ctx, session, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.store.ListMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, storeError("list messages", err)
	}
	return messages, nil
}

// SendMessage posts a message from the caller and bumps the conversation
func (s *Service) SendMessage(ctx context.Context, session Session, conversationID, text string) (*schema.Message, error) {
	conversation, err := s.participantConversation(ctx, session, conversationID)
	if err != nil {
		return nil, err
	}

	return s.postMessage(ctx, s.store, conversation, session.Participant(), text)
}

func (s *Service) postMessage(ctx context.Context, core store.LinkCore, conversation *schema.Conversation, sender schema.Participant, text string) (*schema.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationError("empty message")
	}

	now := s.now()
	message := &schema.Message{
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		Text:           text,
		CreatedAt:      now,
	}
	if err := core.CreateMessage(ctx, message); err != nil {
		return nil, storeError("create message", err)
	}

	if err := core.TouchConversation(ctx, conversation.ID, now); err != nil {
		return nil, storeError("touch conversation", err)
	}
	conversation.UpdatedAt = now

	return message, nil
}

// MarkConversationRead marks every message the caller received in the
// conversation as read and returns how many changed
func (s *Service) MarkConversationRead(ctx context.Context, session Session, conversationID string) (int64, error) {
	if _, err := s.participantConversation(ctx, session, conversationID); err != nil {
		return 0, err
	}

	count, err := s.store.MarkMessagesAsRead(ctx, conversationID, session.UserID)
	if err != nil {
		return 0, storeError("mark messages read", err)
	}
	return count, nil
}
