package help

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/linkme/linkme-api/store"
)

// Error kinds. Every error returned by the service wraps exactly one of
// them, test with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDuplicateRating    = errors.New("request already rated by this user")
	ErrDuplicateIdentity  = errors.New("identity already registered")
	ErrPersistence        = errors.New("persistence failure")
	ErrNotPermitted       = errors.New("not permitted")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	ErrDuplicateEmail = fmt.Errorf("%w: email already registered", ErrDuplicateIdentity)
	ErrDuplicateJmbg  = fmt.Errorf("%w: jmbg already registered", ErrDuplicateIdentity)

	// ErrAcceptanceIncomplete means a request was left accepted without its
	// conversation. The volunteer should accept again once the request is
	// back to open, or the owner should cancel it.
	ErrAcceptanceIncomplete = fmt.Errorf("%w: acceptance incomplete, request may need to be reopened", ErrPersistence)
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notPermitted(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotPermitted, fmt.Sprintf(format, args...))
}

var kinds = []error{
	ErrValidation,
	ErrNotFound,
	ErrInvalidTransition,
	ErrDuplicateRating,
	ErrDuplicateIdentity,
	ErrPersistence,
	ErrNotPermitted,
	ErrInvalidCredentials,
}

func hasKind(err error) bool {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return true
		}
	}
	return false
}

// storeError translates a store error into a service error kind. what
// names the entity or operation for the message. Errors already carrying
// a kind are returned as they are.
func storeError(what string, err error) error {
	if err == nil || hasKind(err) {
		return err
	}

	switch err {
	case store.ErrRecordNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case store.ErrStatusConflict:
		return fmt.Errorf("%w: %s", ErrInvalidTransition, what)
	case store.ErrDuplicateRating:
		return ErrDuplicateRating
	case store.ErrDuplicateEmail:
		return ErrDuplicateEmail
	case store.ErrDuplicateIdentity:
		return ErrDuplicateJmbg
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"error":  err,
	}).Errorf("%s failed", what)

	return fmt.Errorf("%w: %s: %v", ErrPersistence, what, err)
}
