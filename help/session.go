package help

import (
	"context"

	"github.com/linkme/linkme-api/schema"
)

// Session identifies the caller of a service operation. It is built by the
// transport layer from a verified token and passed explicitly.
type Session struct {
	UserID string
	Name   string
	Role   schema.Role
}

func (s Session) Participant() schema.Participant {
	return schema.Participant{ID: s.UserID, Name: s.Name}
}

func (s Session) IsVolunteer() bool {
	return s.Role == schema.RoleVolunteer
}

func (s Session) validate() error {
	if s.UserID == "" {
		return notPermitted("missing session")
	}
	return nil
}

// SessionFor builds the session of a user from the stored profile, so a
// changed name or role applies to tokens issued before the change
func (s *Service) SessionFor(ctx context.Context, userID string) (Session, error) {
	if userID == "" {
		return Session{}, notPermitted("missing session")
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return Session{}, storeError("session user", err)
	}

	return Session{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}
