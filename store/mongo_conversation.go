package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkme/linkme-api/schema"
)

func (m *mongoDB) CreateConversation(ctx context.Context, conversation *schema.Conversation) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.PairKey = schema.PairKey(conversation.Participant1ID, conversation.Participant2ID)
	if conversation.UpdatedAt.IsZero() {
		conversation.UpdatedAt = time.Now().UTC()
	}

	if _, err := m.collection(schema.ConversationCollection).InsertOne(ctx, conversation); err != nil {
		if isDuplicateKey(err, "uix_conversations_pair_key") {
			return ErrConversationExists
		}
		return err
	}
	return nil
}

func (m *mongoDB) findConversation(ctx context.Context, filter bson.M) (*schema.Conversation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var c schema.Conversation
	if err := m.collection(schema.ConversationCollection).FindOne(ctx, filter).Decode(&c); err != nil {
		return nil, mongoNotFoundOr(err)
	}
	return &c, nil
}

func (m *mongoDB) GetConversation(ctx context.Context, id string) (*schema.Conversation, error) {
	return m.findConversation(ctx, bson.M{"_id": id})
}

func (m *mongoDB) GetConversationByParticipants(ctx context.Context, userID1, userID2 string) (*schema.Conversation, error) {
	return m.findConversation(ctx, bson.M{"pair_key": schema.PairKey(userID1, userID2)})
}

func (m *mongoDB) ListConversationsByUser(ctx context.Context, userID string) ([]schema.Conversation, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := m.collection(schema.ConversationCollection).Find(ctx,
		bson.M{"$or": bson.A{
			bson.M{"participant1_id": userID},
			bson.M{"participant2_id": userID},
		}},
		options.Find().SetSort(bson.D{{"updated_at", -1}}))
	if err != nil {
		return nil, err
	}

	conversations := []schema.Conversation{}
	if err := cur.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (m *mongoDB) TouchConversation(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := m.collection(schema.ConversationCollection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"updated_at": at}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (m *mongoDB) CreateMessage(ctx context.Context, message *schema.Message) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	_, err := m.collection(schema.MessageCollection).InsertOne(ctx, message)
	return err
}

func (m *mongoDB) ListMessagesByConversation(ctx context.Context, conversationID string) ([]schema.Message, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := m.collection(schema.MessageCollection).Find(ctx,
		bson.M{"conversation_id": conversationID},
		options.Find().SetSort(bson.D{{"created_at", 1}}))
	if err != nil {
		return nil, err
	}

	messages := []schema.Message{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (m *mongoDB) MarkMessagesAsRead(ctx context.Context, conversationID, readerID string) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	result, err := m.collection(schema.MessageCollection).UpdateMany(ctx,
		bson.M{
			"conversation_id": conversationID,
			"sender_id":       bson.M{"$ne": readerID},
			"read":            false,
		},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
