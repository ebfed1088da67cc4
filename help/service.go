package help

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/linkme/linkme-api/geo"
	"github.com/linkme/linkme-api/store"
)

const (
	logPrefix = "help"

	maxAggregateRetries = 3
)

// IdentityHasher produces the stable one-way hash a national id is
// registered under
type IdentityHasher interface {
	HashIdentity(nationalID string) string
}

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) bool
}

// Service implements the help matching operations on top of a persistence
// backend. It holds no per-user state, every operation takes the caller's
// Session.
type Service struct {
	store      store.LinkCore
	identities IdentityHasher
	passwords  PasswordHasher
	resolver   geo.AddressResolver

	now     func() time.Time
	backOff func() backoff.BackOff
}

// NewService returns a help service. The resolver is optional, without it
// help requests must carry an address.
func NewService(core store.LinkCore, identities IdentityHasher, passwords PasswordHasher, resolver geo.AddressResolver) *Service {
	return &Service{
		store:      core,
		identities: identities,
		passwords:  passwords,
		resolver:   resolver,
		now: func() time.Time {
			return time.Now().UTC()
		},
		backOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxElapsedTime = 5 * time.Second
			return backoff.WithMaxRetries(b, maxAggregateRetries)
		},
	}
}

// Ping checks the persistence backend
func (s *Service) Ping() error {
	return s.store.Ping()
}

// atomically runs fn in one transaction when the backend supports it. The
// returned flag tells fn whether it has to compensate its own partial
// writes.
func (s *Service) atomically(ctx context.Context, fn func(core store.LinkCore, transactional bool) error) error {
	if t, ok := s.store.(store.Transactor); ok {
		return t.WithTransaction(ctx, func(core store.LinkCore) error {
			return fn(core, true)
		})
	}
	return fn(s.store, false)
}
