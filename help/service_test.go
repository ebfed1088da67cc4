package help

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/linkme/linkme-api/geo"
	"github.com/linkme/linkme-api/schema"
	"github.com/linkme/linkme-api/store"
	"github.com/linkme/linkme-api/utils"
)

const (
	sarajevoLat = 43.8563
	sarajevoLng = 18.4131
)

// tickingClock returns a strictly increasing time on every call so that
// ordering by time is deterministic in tests
type tickingClock struct {
	sync.Mutex
	t time.Time
}

func (c *tickingClock) now() time.Time {
	c.Lock()
	defer c.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestService(core store.LinkCore, resolver geo.AddressResolver) *Service {
	s := NewService(core, utils.NewIdentityHasher("test"), utils.NewPasswordHasher(bcrypt.MinCost), resolver)

	clock := &tickingClock{t: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
	s.now = clock.now
	s.backOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), maxAggregateRetries)
	}
	return s
}

// fixture bundles a service on a memory store with a few registered users
type fixture struct {
	t       *testing.T
	ctx     context.Context
	store   *store.MemoryStore
	service *Service

	owner     Session
	volunteer Session
	other     Session
}

var jmbgs = []string{"0101990170003", "1503985171233", "3108877100452"}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		store: store.NewMemoryStore(),
	}
	f.service = newTestService(f.store, nil)

	f.owner = f.register("amra@example.com", "Amra", schema.RoleUser, jmbgs[0], nil)
	f.volunteer = f.register("kenan@example.com", "Kenan", schema.RoleVolunteer, jmbgs[1],
		[]schema.CategoryID{schema.CategoryShopping})
	f.other = f.register("lejla@example.com", "Lejla", schema.RoleVolunteer, jmbgs[2],
		[]schema.CategoryID{schema.CategoryTech})
	return f
}

func (f *fixture) register(email, name string, role schema.Role, jmbg string, categories []schema.CategoryID) Session {
	u, err := f.service.Register(f.ctx, Registration{
		Email:          email,
		Password:       "secret",
		Name:           name,
		Role:           role,
		Jmbg:           jmbg,
		HelpCategories: categories,
	})
	require.NoError(f.t, err)
	return Session{UserID: u.ID, Name: u.Name, Role: u.Role}
}

func (f *fixture) createRequest(session Session, category schema.CategoryID, urgency schema.Urgency, lat, lng float64) *schema.HelpRequest {
	r, err := f.service.CreateHelpRequest(f.ctx, session, HelpRequestInput{
		Category:    category,
		Description: "Trebam pomoć oko kupovine namirnica za ovu sedmicu",
		Urgency:     urgency,
		Latitude:    &lat,
		Longitude:   &lng,
		Address:     "Ferhadija 1, Sarajevo",
	})
	require.NoError(f.t, err)
	return r
}

func (f *fixture) acceptedRequest() *schema.HelpRequest {
	r := f.createRequest(f.owner, schema.CategoryShopping, schema.UrgencyFlexible, sarajevoLat, sarajevoLng)
	a, err := f.service.AcceptHelpRequest(f.ctx, f.volunteer, r.ID)
	require.NoError(f.t, err)
	return a.HelpRequest
}

// transactionalStore runs transactions on a memory store without rollback;
// it only records that the transactional path was taken
type transactionalStore struct {
	*store.MemoryStore
	transactions int
}

func (s *transactionalStore) WithTransaction(ctx context.Context, fn func(store.LinkCore) error) error {
	s.transactions++
	return fn(s.MemoryStore)
}
