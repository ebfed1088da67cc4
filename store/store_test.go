package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linkme/linkme-api/schema"
)

const (
	testMongoDatabase = "linkme_test"
)

// LinkCoreTestSuite runs the same behaviour checks against every backend
type LinkCoreTestSuite struct {
	suite.Suite
	open  func() LinkCore
	reset func() error
	store LinkCore
	ctx   context.Context
}

func (s *LinkCoreTestSuite) SetupTest() {
	if s.reset != nil {
		s.Require().NoError(s.reset())
	}
	s.store = s.open()
	s.ctx = context.Background()
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &LinkCoreTestSuite{
		open: func() LinkCore { return NewMemoryStore() },
	})
}

func TestPostgresStore(t *testing.T) {
	conn := os.Getenv("LINKME_TEST_ORM_CONN")
	if conn == "" {
		t.Skip("LINKME_TEST_ORM_CONN is not set")
	}

	db, err := gorm.Open("postgres", conn)
	if err != nil {
		t.Fatalf("connect postgres with error: %s", err)
	}
	defer db.Close()

	if err := schema.AutoMigrate(db); err != nil {
		t.Fatal(err)
	}

	suite.Run(t, &LinkCoreTestSuite{
		open: func() LinkCore { return NewLinkStore(db) },
		reset: func() error {
			for _, m := range []interface{}{
				&schema.Rating{}, &schema.Message{}, &schema.Conversation{},
				&schema.HelpRequest{}, &schema.User{},
			} {
				if err := db.Unscoped().Delete(m).Error; err != nil {
					return err
				}
			}
			return nil
		},
	})
}

func TestMongoStore(t *testing.T) {
	conn := os.Getenv("LINKME_TEST_MONGO_CONN")
	if conn == "" {
		t.Skip("LINKME_TEST_MONGO_CONN is not set")
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(conn))
	if err != nil {
		t.Fatalf("create mongo client with error: %s", err)
	}
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("connect mongo database with error: %s", err)
	}
	defer client.Disconnect(context.Background())

	suite.Run(t, &LinkCoreTestSuite{
		open: func() LinkCore { return NewMongoStore(client, testMongoDatabase) },
		reset: func() error {
			if err := client.Database(testMongoDatabase).Drop(context.Background()); err != nil {
				return err
			}
			schema.NewMongoDBIndexerWithClient(client, testMongoDatabase).IndexAll()
			return nil
		},
	})
}

func (s *LinkCoreTestSuite) newUser(email, jmbgHash string) *schema.User {
	u := &schema.User{
		Email:          email,
		PasswordHash:   "hash",
		Name:           email,
		Role:           schema.RoleVolunteer,
		JmbgHash:       jmbgHash,
		HelpCategories: schema.Categories{schema.CategoryShopping},
	}
	s.Require().NoError(s.store.CreateUser(s.ctx, u))
	return u
}

func (s *LinkCoreTestSuite) newHelpRequest(owner *schema.User, createdAt time.Time) *schema.HelpRequest {
	lat, lng := 43.8563, 18.4131
	h := &schema.HelpRequest{
		UserID:      owner.ID,
		UserName:    owner.Name,
		Category:    schema.CategoryShopping,
		Description: "groceries",
		Urgency:     schema.UrgencyFlexible,
		Status:      schema.HelpOpen,
		Latitude:    &lat,
		Longitude:   &lng,
		Address:     "Ferhadija 1",
		CreatedAt:   createdAt,
	}
	s.Require().NoError(s.store.CreateHelpRequest(s.ctx, h))
	return h
}

func (s *LinkCoreTestSuite) TestCreateUserUniqueness() {
	u := s.newUser("amra@example.com", "hash-1")
	s.NotEmpty(u.ID)

	err := s.store.CreateUser(s.ctx, &schema.User{
		Email: "amra@example.com", PasswordHash: "x", Name: "x", Role: schema.RoleUser, JmbgHash: "hash-2",
	})
	s.Equal(ErrDuplicateEmail, err)

	err = s.store.CreateUser(s.ctx, &schema.User{
		Email: "other@example.com", PasswordHash: "x", Name: "x", Role: schema.RoleUser, JmbgHash: "hash-1",
	})
	s.Equal(ErrDuplicateIdentity, err)

	found, err := s.store.GetUserByEmail(s.ctx, "amra@example.com")
	s.NoError(err)
	s.Equal(u.ID, found.ID)

	found, err = s.store.GetUserByJmbgHash(s.ctx, "hash-1")
	s.NoError(err)
	s.Equal(u.ID, found.ID)
	s.Equal(schema.Categories{schema.CategoryShopping}, found.HelpCategories)

	_, err = s.store.GetUser(s.ctx, "missing")
	s.Equal(ErrRecordNotFound, err)
}

func (s *LinkCoreTestSuite) TestUpdateUserProfile() {
	u := s.newUser("kenan@example.com", "hash-k")

	name := "Kenan"
	categories := schema.Categories{schema.CategoryTech, schema.CategoryTools}
	updated, err := s.store.UpdateUserProfile(s.ctx, u.ID, schema.ProfileUpdate{
		Name:           &name,
		HelpCategories: &categories,
	})
	s.NoError(err)
	s.Equal("Kenan", updated.Name)
	s.Equal(schema.RoleVolunteer, updated.Role)
	s.Equal(categories, updated.HelpCategories)
	s.Equal("hash-k", updated.JmbgHash)

	_, err = s.store.UpdateUserProfile(s.ctx, "missing", schema.ProfileUpdate{Name: &name})
	s.Equal(ErrRecordNotFound, err)
}

func (s *LinkCoreTestSuite) TestApplyRatingRunningMean() {
	u := s.newUser("lejla@example.com", "hash-l")

	updated, err := s.store.ApplyRating(s.ctx, u.ID, 4)
	s.NoError(err)
	s.InDelta(4.0, updated.Rating, 0.0001)
	s.Equal(1, updated.RatingCount)

	updated, err = s.store.ApplyRating(s.ctx, u.ID, 5)
	s.NoError(err)
	s.InDelta(4.5, updated.Rating, 0.0001)
	s.Equal(2, updated.RatingCount)

	_, err = s.store.ApplyRating(s.ctx, "missing", 5)
	s.Equal(ErrRecordNotFound, err)
}

func (s *LinkCoreTestSuite) TestApplyRatingConcurrent() {
	u := s.newUser("emir@example.com", "hash-e")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := s.store.ApplyRating(s.ctx, u.ID, score)
			s.NoError(err)
		}(i%5 + 1)
	}
	wg.Wait()

	found, err := s.store.GetUser(s.ctx, u.ID)
	s.NoError(err)
	s.Equal(10, found.RatingCount)
	s.InDelta(3.0, found.Rating, 0.0001)
}

func (s *LinkCoreTestSuite) TestListHelpRequests() {
	owner := s.newUser("owner@example.com", "hash-o")
	other := s.newUser("other@example.com", "hash-x")

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	older := s.newHelpRequest(owner, base)
	newer := s.newHelpRequest(owner, base.Add(time.Hour))
	foreign := s.newHelpRequest(other, base.Add(2*time.Hour))

	_, err := s.store.TransitionHelpRequest(s.ctx, foreign.ID, schema.HelpOpen, schema.HelpCancelled, nil)
	s.NoError(err)

	mine, err := s.store.ListHelpRequestsByUser(s.ctx, owner.ID)
	s.NoError(err)
	s.Len(mine, 2)
	s.Equal(newer.ID, mine[0].ID)
	s.Equal(older.ID, mine[1].ID)

	open, err := s.store.ListOpenHelpRequests(s.ctx)
	s.NoError(err)
	s.Len(open, 2)
	s.Equal(newer.ID, open[0].ID)
	for _, h := range open {
		s.Nil(h.AIMatchScore)
	}

	found, err := s.store.GetHelpRequest(s.ctx, older.ID)
	s.NoError(err)
	s.Equal("Ferhadija 1", found.Address)
	s.Require().NotNil(found.Location())
	s.InDelta(43.8563, found.Location().Latitude, 0.00001)
}

func (s *LinkCoreTestSuite) TestTransitionHelpRequest() {
	owner := s.newUser("owner@example.com", "hash-o")
	h := s.newHelpRequest(owner, time.Now().UTC())

	accepted, err := s.store.TransitionHelpRequest(s.ctx, h.ID, schema.HelpOpen, schema.HelpAccepted,
		&schema.Assignment{VolunteerID: "vol-1", VolunteerName: "Vol"})
	s.NoError(err)
	s.Equal(schema.HelpAccepted, accepted.Status)
	s.Require().NotNil(accepted.VolunteerID)
	s.Equal("vol-1", *accepted.VolunteerID)
	s.Equal("Vol", *accepted.VolunteerName)

	_, err = s.store.TransitionHelpRequest(s.ctx, h.ID, schema.HelpOpen, schema.HelpAccepted,
		&schema.Assignment{VolunteerID: "vol-2", VolunteerName: "Other"})
	s.Equal(ErrStatusConflict, err)

	// reopening only matches the assigned volunteer
	_, err = s.store.TransitionHelpRequest(s.ctx, h.ID, schema.HelpAccepted, schema.HelpOpen,
		&schema.Assignment{VolunteerID: "vol-2"})
	s.Equal(ErrStatusConflict, err)

	reopened, err := s.store.TransitionHelpRequest(s.ctx, h.ID, schema.HelpAccepted, schema.HelpOpen,
		&schema.Assignment{VolunteerID: "vol-1"})
	s.NoError(err)
	s.Equal(schema.HelpOpen, reopened.Status)
	s.Nil(reopened.VolunteerID)
	s.Nil(reopened.VolunteerName)

	_, err = s.store.TransitionHelpRequest(s.ctx, "missing", schema.HelpOpen, schema.HelpAccepted, nil)
	s.Equal(ErrRecordNotFound, err)
}

func (s *LinkCoreTestSuite) TestTransitionHelpRequestSingleWinner() {
	owner := s.newUser("owner@example.com", "hash-o")
	h := s.newHelpRequest(owner, time.Now().UTC())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.store.TransitionHelpRequest(s.ctx, h.ID, schema.HelpOpen, schema.HelpAccepted,
				&schema.Assignment{VolunteerID: string(rune('a' + i)), VolunteerName: "v"})
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				winners++
			case ErrStatusConflict:
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, winners)
	s.Equal(7, conflicts)
}

func (s *LinkCoreTestSuite) TestConversationPairKey() {
	c := &schema.Conversation{
		Participant1ID: "user-b", Participant1Name: "B",
		Participant2ID: "user-a", Participant2Name: "A",
	}
	s.Require().NoError(s.store.CreateConversation(s.ctx, c))
	s.Equal("user-a:user-b", c.PairKey)

	err := s.store.CreateConversation(s.ctx, &schema.Conversation{
		Participant1ID: "user-a", Participant1Name: "A",
		Participant2ID: "user-b", Participant2Name: "B",
	})
	s.Equal(ErrConversationExists, err)

	found, err := s.store.GetConversationByParticipants(s.ctx, "user-a", "user-b")
	s.NoError(err)
	s.Equal(c.ID, found.ID)

	found, err = s.store.GetConversationByParticipants(s.ctx, "user-b", "user-a")
	s.NoError(err)
	s.Equal(c.ID, found.ID)

	_, err = s.store.GetConversationByParticipants(s.ctx, "user-a", "user-c")
	s.Equal(ErrRecordNotFound, err)
}

// TestConversationRaceInTransaction checks that a transaction losing the
// pair key race can still read the winner and commit
func (s *LinkCoreTestSuite) TestConversationRaceInTransaction() {
	t, ok := s.store.(Transactor)
	if !ok {
		s.T().Skip("backend has no transactions")
	}

	winner := &schema.Conversation{
		Participant1ID: "user-a", Participant1Name: "A",
		Participant2ID: "user-b", Participant2Name: "B",
	}

	var found *schema.Conversation
	err := t.WithTransaction(s.ctx, func(core LinkCore) error {
		_, err := core.GetConversationByParticipants(s.ctx, "user-a", "user-b")
		s.Equal(ErrRecordNotFound, err)

		// committed outside the transaction before its own insert
		s.Require().NoError(s.store.CreateConversation(s.ctx, winner))

		err = core.CreateConversation(s.ctx, &schema.Conversation{
			Participant1ID: "user-b", Participant1Name: "B",
			Participant2ID: "user-a", Participant2Name: "A",
		})
		s.Equal(ErrConversationExists, err)

		found, err = core.GetConversationByParticipants(s.ctx, "user-b", "user-a")
		return err
	})
	s.Require().NoError(err)
	s.Equal(winner.ID, found.ID)
}

func (s *LinkCoreTestSuite) TestListConversationsByUser() {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	first := &schema.Conversation{
		Participant1ID: "me", Participant1Name: "Me",
		Participant2ID: "x", Participant2Name: "X",
		UpdatedAt: base,
	}
	second := &schema.Conversation{
		Participant1ID: "y", Participant1Name: "Y",
		Participant2ID: "me", Participant2Name: "Me",
		UpdatedAt: base.Add(time.Minute),
	}
	unrelated := &schema.Conversation{
		Participant1ID: "x", Participant1Name: "X",
		Participant2ID: "y", Participant2Name: "Y",
		UpdatedAt: base,
	}
	for _, c := range []*schema.Conversation{first, second, unrelated} {
		s.Require().NoError(s.store.CreateConversation(s.ctx, c))
	}

	list, err := s.store.ListConversationsByUser(s.ctx, "me")
	s.NoError(err)
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID)

	s.NoError(s.store.TouchConversation(s.ctx, first.ID, base.Add(time.Hour)))

	list, err = s.store.ListConversationsByUser(s.ctx, "me")
	s.NoError(err)
	s.Require().Len(list, 2)
	s.Equal(first.ID, list[0].ID)

	s.Equal(ErrRecordNotFound, s.store.TouchConversation(s.ctx, "missing", base))
}

func (s *LinkCoreTestSuite) TestMessages() {
	c := &schema.Conversation{
		Participant1ID: "alice", Participant1Name: "Alice",
		Participant2ID: "bob", Participant2Name: "Bob",
	}
	s.Require().NoError(s.store.CreateConversation(s.ctx, c))

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, sender := range []string{"alice", "bob", "alice"} {
		s.Require().NoError(s.store.CreateMessage(s.ctx, &schema.Message{
			ConversationID: c.ID,
			SenderID:       sender,
			SenderName:     sender,
			Text:           "hi",
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	messages, err := s.store.ListMessagesByConversation(s.ctx, c.ID)
	s.NoError(err)
	s.Require().Len(messages, 3)
	s.Equal("alice", messages[0].SenderID)
	s.Equal("bob", messages[1].SenderID)

	// bob reads what alice sent
	count, err := s.store.MarkMessagesAsRead(s.ctx, c.ID, "bob")
	s.NoError(err)
	s.Equal(int64(2), count)

	messages, err = s.store.ListMessagesByConversation(s.ctx, c.ID)
	s.NoError(err)
	s.True(messages[0].Read)
	s.False(messages[1].Read)
	s.True(messages[2].Read)

	count, err = s.store.MarkMessagesAsRead(s.ctx, c.ID, "bob")
	s.NoError(err)
	s.Equal(int64(0), count)
}

func (s *LinkCoreTestSuite) TestRatingUniqueness() {
	comment := "thanks"
	r := &schema.Rating{
		FromUserID:    "owner",
		ToUserID:      "vol",
		HelpRequestID: "help-1",
		Score:         4,
		Comment:       &comment,
	}
	s.Require().NoError(s.store.CreateRating(s.ctx, r))
	s.NotEmpty(r.ID)

	err := s.store.CreateRating(s.ctx, &schema.Rating{
		FromUserID: "owner", ToUserID: "vol", HelpRequestID: "help-1", Score: 5,
	})
	s.Equal(ErrDuplicateRating, err)

	s.NoError(s.store.CreateRating(s.ctx, &schema.Rating{
		FromUserID: "vol", ToUserID: "owner", HelpRequestID: "help-1", Score: 5,
	}))

	found, err := s.store.GetRatingByRequestAndUser(s.ctx, "help-1", "owner")
	s.NoError(err)
	s.Equal(4, found.Score)
	s.Equal("thanks", *found.Comment)

	_, err = s.store.GetRatingByRequestAndUser(s.ctx, "help-2", "owner")
	s.Equal(ErrRecordNotFound, err)
}
