package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return NewMongoDBIndexerWithClient(client, dbName)
}

func NewMongoDBIndexerWithClient(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexHelpRequestCollection())
	panicIfError(m.IndexConversationCollection())
	panicIfError(m.IndexMessageCollection())
	panicIfError(m.IndexRatingCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true).SetName("uix_users_email"),
	}); err != nil {
		return err
	}

	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys:    bson.M{"jmbg_hash": 1},
		Options: options.Index().SetUnique(true).SetName("uix_users_jmbg_hash"),
	})
}

func (m *MongoDBIndexer) IndexHelpRequestCollection() error {
	if err := m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{"user_id", 1},
			{"created_at", -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(HelpRequestCollection, mongo.IndexModel{
		Keys: bson.D{
			{"status", 1},
			{"created_at", -1},
		},
	})
}

func (m *MongoDBIndexer) IndexConversationCollection() error {
	if err := m.createIndex(ConversationCollection, mongo.IndexModel{
		Keys:    bson.M{"pair_key": 1},
		Options: options.Index().SetUnique(true).SetName("uix_conversations_pair_key"),
	}); err != nil {
		return err
	}

	if err := m.createIndex(ConversationCollection, mongo.IndexModel{
		Keys: bson.M{"participant1_id": 1},
	}); err != nil {
		return err
	}

	return m.createIndex(ConversationCollection, mongo.IndexModel{
		Keys: bson.M{"participant2_id": 1},
	})
}

func (m *MongoDBIndexer) IndexMessageCollection() error {
	return m.createIndex(MessageCollection, mongo.IndexModel{
		Keys: bson.D{
			{"conversation_id", 1},
			{"created_at", 1},
		},
	})
}

func (m *MongoDBIndexer) IndexRatingCollection() error {
	if err := m.createIndex(RatingCollection, mongo.IndexModel{
		Keys: bson.D{
			{"help_request_id", 1},
			{"from_user_id", 1},
		},
		Options: options.Index().SetUnique(true).SetName("uix_ratings_request_from"),
	}); err != nil {
		return err
	}

	return m.createIndex(RatingCollection, mongo.IndexModel{
		Keys: bson.M{"to_user_id": 1},
	})
}
