package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/linkme/linkme-api/schema"
)

const (
	uniqueViolationCode = "23505"
)

var (
	ErrRecordNotFound     = fmt.Errorf("record not found")
	ErrStatusConflict     = fmt.Errorf("help request is not in the expected status")
	ErrDuplicateEmail     = fmt.Errorf("email is already registered")
	ErrDuplicateIdentity  = fmt.Errorf("identity hash is already registered")
	ErrDuplicateRating    = fmt.Errorf("rating already exists for this request and rater")
	ErrConversationExists = fmt.Errorf("conversation already exists for this pair")
)

// LinkCore is the persistence collaborator of the help service. Every
// backend must keep the same uniqueness rules: email, identity hash,
// conversation pair key and (help request, rater).
type LinkCore interface {
	Ping() error

	// User
	CreateUser(ctx context.Context, user *schema.User) error
	GetUser(ctx context.Context, id string) (*schema.User, error)
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)
	GetUserByJmbgHash(ctx context.Context, jmbgHash string) (*schema.User, error)
	UpdateUserProfile(ctx context.Context, id string, update schema.ProfileUpdate) (*schema.User, error)
	// ApplyRating folds one score into the running mean of a user in a
	// single atomic write
	ApplyRating(ctx context.Context, userID string, score int) (*schema.User, error)

	// Help
	CreateHelpRequest(ctx context.Context, request *schema.HelpRequest) error
	GetHelpRequest(ctx context.Context, id string) (*schema.HelpRequest, error)
	ListHelpRequestsByUser(ctx context.Context, userID string) ([]schema.HelpRequest, error)
	ListOpenHelpRequests(ctx context.Context) ([]schema.HelpRequest, error)
	// TransitionHelpRequest is a compare-and-set on the status. Moving to
	// accepted writes the assignment; moving back to open clears the
	// volunteer and, when an assignment is given, only matches that
	// volunteer. ErrStatusConflict is returned when the request exists but
	// does not match.
	TransitionHelpRequest(ctx context.Context, id string, from, to schema.RequestStatus, assignment *schema.Assignment) (*schema.HelpRequest, error)

	// Conversation
	CreateConversation(ctx context.Context, conversation *schema.Conversation) error
	GetConversation(ctx context.Context, id string) (*schema.Conversation, error)
	GetConversationByParticipants(ctx context.Context, userID1, userID2 string) (*schema.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID string) ([]schema.Conversation, error)
	TouchConversation(ctx context.Context, id string, at time.Time) error

	// Message
	CreateMessage(ctx context.Context, message *schema.Message) error
	ListMessagesByConversation(ctx context.Context, conversationID string) ([]schema.Message, error)
	// MarkMessagesAsRead marks the messages the reader received in a
	// conversation as read
	MarkMessagesAsRead(ctx context.Context, conversationID, readerID string) (int64, error)

	// Rating
	CreateRating(ctx context.Context, rating *schema.Rating) error
	GetRatingByRequestAndUser(ctx context.Context, helpRequestID, fromUserID string) (*schema.Rating, error)
}

// Transactor is implemented by backends able to run several writes as one
// transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(LinkCore) error) error
}

// LinkStore is the postgres implementation of LinkCore
type LinkStore struct {
	ormDB *gorm.DB

	// set on the store WithTransaction hands out
	inTransaction bool
}

func NewLinkStore(ormDB *gorm.DB) *LinkStore {
	return &LinkStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *LinkStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// WithTransaction runs fn against a store bound to a single database
// transaction. The transaction is rolled back when fn fails or panics.
func (s *LinkStore) WithTransaction(ctx context.Context, fn func(LinkCore) error) (err error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&LinkStore{ormDB: tx, inTransaction: true}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// savepoint runs fn so that its failure does not abort the surrounding
// transaction. Postgres refuses every statement after an error until the
// transaction rolls back, so a caller recovering from a unique violation
// needs the failed insert undone on its own. Outside a transaction fn runs
// as is.
func (s *LinkStore) savepoint(name string, fn func() error) error {
	if !s.inTransaction {
		return fn()
	}

	if err := s.ormDB.Exec("SAVEPOINT " + name).Error; err != nil {
		return err
	}

	if err := fn(); err != nil {
		if rerr := s.ormDB.Exec("ROLLBACK TO SAVEPOINT " + name).Error; rerr != nil {
			return rerr
		}
		return err
	}

	return s.ormDB.Exec("RELEASE SAVEPOINT " + name).Error
}

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == uniqueViolationCode && (constraint == "" || pqErr.Constraint == constraint)
}

func notFoundOr(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrRecordNotFound
	}
	return err
}
