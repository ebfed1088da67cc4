package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkme/linkme-api/schema"
)

func (m *mongoDB) CreateHelpRequest(ctx context.Context, request *schema.HelpRequest) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	_, err := m.collection(schema.HelpRequestCollection).InsertOne(ctx, request)
	return err
}

func (m *mongoDB) GetHelpRequest(ctx context.Context, id string) (*schema.HelpRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var help schema.HelpRequest
	if err := m.collection(schema.HelpRequestCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&help); err != nil {
		return nil, mongoNotFoundOr(err)
	}
	return &help, nil
}

func (m *mongoDB) findHelpRequests(ctx context.Context, filter bson.M) ([]schema.HelpRequest, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cur, err := m.collection(schema.HelpRequestCollection).Find(ctx, filter,
		options.Find().SetSort(bson.D{{"created_at", -1}}))
	if err != nil {
		return nil, err
	}

	helps := []schema.HelpRequest{}
	if err := cur.All(ctx, &helps); err != nil {
		return nil, err
	}
	return helps, nil
}

func (m *mongoDB) ListHelpRequestsByUser(ctx context.Context, userID string) ([]schema.HelpRequest, error) {
	return m.findHelpRequests(ctx, bson.M{"user_id": userID})
}

func (m *mongoDB) ListOpenHelpRequests(ctx context.Context) ([]schema.HelpRequest, error) {
	return m.findHelpRequests(ctx, bson.M{"status": schema.HelpOpen})
}

// TransitionHelpRequest is a conditional find-and-modify, the document
// level equivalent of `UPDATE ... WHERE status = from`
func (m *mongoDB) TransitionHelpRequest(ctx context.Context, id string, from, to schema.RequestStatus, assignment *schema.Assignment) (*schema.HelpRequest, error) {
	filter := bson.M{"_id": id, "status": from}
	set := bson.M{"status": to}
	update := bson.M{}

	switch to {
	case schema.HelpAccepted:
		if assignment != nil {
			set["volunteer_id"] = assignment.VolunteerID
			set["volunteer_name"] = assignment.VolunteerName
		}
	case schema.HelpOpen:
		update["$unset"] = bson.M{"volunteer_id": "", "volunteer_name": ""}
		if assignment != nil {
			filter["volunteer_id"] = assignment.VolunteerID
		}
	}
	update["$set"] = set

	opCtx, cancel := withTimeout(ctx)
	defer cancel()

	var help schema.HelpRequest
	err := m.collection(schema.HelpRequestCollection).FindOneAndUpdate(opCtx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&help)
	if err == nil {
		return &help, nil
	}

	if err := mongoNotFoundOr(err); err != ErrRecordNotFound {
		return nil, err
	}

	if _, err := m.GetHelpRequest(ctx, id); err != nil {
		return nil, err
	}
	return nil, ErrStatusConflict
}
