package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linkme/linkme-api/schema"
)

// MemoryStore keeps everything in process. It enforces the same uniqueness
// rules as the database backends and is used for local mode and tests.
type MemoryStore struct {
	sync.RWMutex

	users         map[string]schema.User
	helpRequests  map[string]schema.HelpRequest
	conversations map[string]schema.Conversation
	messages      map[string][]schema.Message
	ratings       map[string]schema.Rating
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         map[string]schema.User{},
		helpRequests:  map[string]schema.HelpRequest{},
		conversations: map[string]schema.Conversation{},
		messages:      map[string][]schema.Message{},
		ratings:       map[string]schema.Rating{},
	}
}

func (s *MemoryStore) Ping() error {
	return nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *schema.User) error {
	s.Lock()
	defer s.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
		if u.JmbgHash == user.JmbgHash {
			return ErrDuplicateIdentity
		}
	}

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.HelpCategories == nil {
		user.HelpCategories = schema.Categories{}
	}

	s.users[user.ID] = copyUser(*user)
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, id string) (*schema.User, error) {
	s.RLock()
	defer s.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	u = copyUser(u)
	return &u, nil
}

func (s *MemoryStore) findUser(match func(schema.User) bool) (*schema.User, error) {
	s.RLock()
	defer s.RUnlock()

	for _, u := range s.users {
		if match(u) {
			u = copyUser(u)
			return &u, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	return s.findUser(func(u schema.User) bool { return u.Email == email })
}

func (s *MemoryStore) GetUserByJmbgHash(ctx context.Context, jmbgHash string) (*schema.User, error) {
	return s.findUser(func(u schema.User) bool { return u.JmbgHash == jmbgHash })
}

func (s *MemoryStore) UpdateUserProfile(ctx context.Context, id string, update schema.ProfileUpdate) (*schema.User, error) {
	s.Lock()
	defer s.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	if update.HelpCategories != nil {
		u.HelpCategories = append(schema.Categories{}, (*update.HelpCategories)...)
	}
	s.users[id] = u

	u = copyUser(u)
	return &u, nil
}

func (s *MemoryStore) ApplyRating(ctx context.Context, userID string, score int) (*schema.User, error) {
	s.Lock()
	defer s.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	u.Rating = (u.Rating*float64(u.RatingCount) + float64(score)) / float64(u.RatingCount+1)
	u.RatingCount++
	s.users[userID] = u

	u = copyUser(u)
	return &u, nil
}

func (s *MemoryStore) CreateHelpRequest(ctx context.Context, request *schema.HelpRequest) error {
	s.Lock()
	defer s.Unlock()

	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	h := *request
	h.AIMatchScore = nil
	s.helpRequests[h.ID] = h
	return nil
}

func (s *MemoryStore) GetHelpRequest(ctx context.Context, id string) (*schema.HelpRequest, error) {
	s.RLock()
	defer s.RUnlock()

	h, ok := s.helpRequests[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &h, nil
}

func (s *MemoryStore) listHelpRequests(match func(schema.HelpRequest) bool) []schema.HelpRequest {
	s.RLock()
	defer s.RUnlock()

	helps := []schema.HelpRequest{}
	for _, h := range s.helpRequests {
		if match(h) {
			helps = append(helps, h)
		}
	}
	sort.SliceStable(helps, func(i, j int) bool {
		return helps[i].CreatedAt.After(helps[j].CreatedAt)
	})
	return helps
}

func (s *MemoryStore) ListHelpRequestsByUser(ctx context.Context, userID string) ([]schema.HelpRequest, error) {
	return s.listHelpRequests(func(h schema.HelpRequest) bool { return h.UserID == userID }), nil
}

func (s *MemoryStore) ListOpenHelpRequests(ctx context.Context) ([]schema.HelpRequest, error) {
	return s.listHelpRequests(func(h schema.HelpRequest) bool { return h.Status == schema.HelpOpen }), nil
}

func (s *MemoryStore) TransitionHelpRequest(ctx context.Context, id string, from, to schema.RequestStatus, assignment *schema.Assignment) (*schema.HelpRequest, error) {
	s.Lock()
	defer s.Unlock()

	h, ok := s.helpRequests[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	if h.Status != from {
		return nil, ErrStatusConflict
	}

	switch to {
	case schema.HelpAccepted:
		if assignment != nil {
			volunteerID, volunteerName := assignment.VolunteerID, assignment.VolunteerName
			h.VolunteerID = &volunteerID
			h.VolunteerName = &volunteerName
		}
	case schema.HelpOpen:
		if assignment != nil && (h.VolunteerID == nil || *h.VolunteerID != assignment.VolunteerID) {
			return nil, ErrStatusConflict
		}
		h.VolunteerID = nil
		h.VolunteerName = nil
	}

	h.Status = to
	s.helpRequests[id] = h
	return &h, nil
}

func (s *MemoryStore) CreateConversation(ctx context.Context, conversation *schema.Conversation) error {
	s.Lock()
	defer s.Unlock()

	key := schema.PairKey(conversation.Participant1ID, conversation.Participant2ID)
	for _, c := range s.conversations {
		if c.PairKey == key {
			return ErrConversationExists
		}
	}

	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.PairKey = key
	if conversation.UpdatedAt.IsZero() {
		conversation.UpdatedAt = time.Now().UTC()
	}

	c := *conversation
	c.LastMessage = nil
	c.UnreadCount = 0
	s.conversations[c.ID] = c
	return nil
}

func (s *MemoryStore) GetConversation(ctx context.Context, id string) (*schema.Conversation, error) {
	s.RLock()
	defer s.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &c, nil
}

func (s *MemoryStore) GetConversationByParticipants(ctx context.Context, userID1, userID2 string) (*schema.Conversation, error) {
	s.RLock()
	defer s.RUnlock()

	key := schema.PairKey(userID1, userID2)
	for _, c := range s.conversations {
		if c.PairKey == key {
			return &c, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *MemoryStore) ListConversationsByUser(ctx context.Context, userID string) ([]schema.Conversation, error) {
	s.RLock()
	defer s.RUnlock()

	conversations := []schema.Conversation{}
	for _, c := range s.conversations {
		if c.HasParticipant(userID) {
			conversations = append(conversations, c)
		}
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].UpdatedAt.After(conversations[j].UpdatedAt)
	})
	return conversations, nil
}

func (s *MemoryStore) TouchConversation(ctx context.Context, id string, at time.Time) error {
	s.Lock()
	defer s.Unlock()

	c, ok := s.conversations[id]
	if !ok {
		return ErrRecordNotFound
	}
	c.UpdatedAt = at
	s.conversations[id] = c
	return nil
}

func (s *MemoryStore) CreateMessage(ctx context.Context, message *schema.Message) error {
	s.Lock()
	defer s.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	s.messages[message.ConversationID] = append(s.messages[message.ConversationID], *message)
	return nil
}

func (s *MemoryStore) ListMessagesByConversation(ctx context.Context, conversationID string) ([]schema.Message, error) {
	s.RLock()
	defer s.RUnlock()

	messages := append([]schema.Message{}, s.messages[conversationID]...)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *MemoryStore) MarkMessagesAsRead(ctx context.Context, conversationID, readerID string) (int64, error) {
	s.Lock()
	defer s.Unlock()

	var count int64
	messages := s.messages[conversationID]
	for i := range messages {
		if messages[i].SenderID != readerID && !messages[i].Read {
			messages[i].Read = true
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) CreateRating(ctx context.Context, rating *schema.Rating) error {
	s.Lock()
	defer s.Unlock()

	for _, r := range s.ratings {
		if r.HelpRequestID == rating.HelpRequestID && r.FromUserID == rating.FromUserID {
			return ErrDuplicateRating
		}
	}

	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now().UTC()
	}

	s.ratings[rating.ID] = *rating
	return nil
}

func (s *MemoryStore) GetRatingByRequestAndUser(ctx context.Context, helpRequestID, fromUserID string) (*schema.Rating, error) {
	s.RLock()
	defer s.RUnlock()

	for _, r := range s.ratings {
		if r.HelpRequestID == helpRequestID && r.FromUserID == fromUserID {
			return &r, nil
		}
	}
	return nil, ErrRecordNotFound
}

func copyUser(u schema.User) schema.User {
	u.HelpCategories = append(schema.Categories{}, u.HelpCategories...)
	return u
}
