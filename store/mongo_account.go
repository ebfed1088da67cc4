package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkme/linkme-api/schema"
)

func (m *mongoDB) CreateUser(ctx context.Context, user *schema.User) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.HelpCategories == nil {
		user.HelpCategories = schema.Categories{}
	}

	if _, err := m.collection(schema.UserCollection).InsertOne(ctx, user); err != nil {
		switch {
		case isDuplicateKey(err, "uix_users_email"):
			return ErrDuplicateEmail
		case isDuplicateKey(err, "uix_users_jmbg_hash"):
			return ErrDuplicateIdentity
		}
		return err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("user created: %s", user.ID)
	return nil
}

func (m *mongoDB) findUser(ctx context.Context, filter bson.M) (*schema.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var u schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, mongoNotFoundOr(err)
	}
	return &u, nil
}

func (m *mongoDB) GetUser(ctx context.Context, id string) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"_id": id})
}

func (m *mongoDB) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

func (m *mongoDB) GetUserByJmbgHash(ctx context.Context, jmbgHash string) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"jmbg_hash": jmbgHash})
}

func (m *mongoDB) UpdateUserProfile(ctx context.Context, id string, update schema.ProfileUpdate) (*schema.User, error) {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.HelpCategories != nil {
		fields["help_categories"] = *update.HelpCategories
	}

	if len(fields) == 0 {
		return m.GetUser(ctx, id)
	}

	return m.findOneAndUpdateUser(ctx, id, bson.M{"$set": fields})
}

// ApplyRating uses a pipeline update so the new mean is computed from the
// stored values inside a single document write
func (m *mongoDB) ApplyRating(ctx context.Context, userID string, score int) (*schema.User, error) {
	newCount := bson.D{{"$add", bson.A{"$rating_count", 1}}}
	update := mongo.Pipeline{
		{{"$set", bson.D{
			{"rating", bson.D{{"$divide", bson.A{
				bson.D{{"$add", bson.A{
					bson.D{{"$multiply", bson.A{"$rating", "$rating_count"}}},
					score,
				}}},
				newCount,
			}}}},
			{"rating_count", newCount},
		}}},
	}

	return m.findOneAndUpdateUser(ctx, userID, update)
}

func (m *mongoDB) findOneAndUpdateUser(ctx context.Context, id string, update interface{}) (*schema.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var u schema.User
	if err := m.collection(schema.UserCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u); err != nil {
		return nil, mongoNotFoundOr(err)
	}

	return &u, nil
}
