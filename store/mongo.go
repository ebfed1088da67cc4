package store

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix   = "mongo"
	defaultTimeout   = 5 * time.Second
	DuplicateKeyCode = 11000
)

// Closer - close db connection
type Closer interface {
	Close()
}

// MongoStore - LinkCore backed by mongodb
type MongoStore interface {
	LinkCore
	Closer
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// withTimeout bounds a single mongo operation by the caller's context and
// the default timeout
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultTimeout)
}

// duplicateKeyIndex reports the name of the unique index that rejected a
// write, if any
func duplicateKeyIndex(err error) (string, bool) {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return "", false
	}

	for _, e := range we.WriteErrors {
		if e.Code == DuplicateKeyCode {
			return e.Message, true
		}
	}
	return "", false
}

func isDuplicateKey(err error, index string) bool {
	msg, ok := duplicateKeyIndex(err)
	return ok && strings.Contains(msg, index)
}

func mongoNotFoundOr(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrRecordNotFound
	}
	return err
}
