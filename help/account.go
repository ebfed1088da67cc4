package help

import (
	"context"
	"net/mail"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/linkme/linkme-api/schema"
	"github.com/linkme/linkme-api/store"
	"github.com/linkme/linkme-api/utils"
)

// Registration carries a new account. Either Jmbg is given and hashed here,
// or JmbgHash is given already hashed by the client.
type Registration struct {
	Email          string
	Password       string
	Name           string
	Role           schema.Role
	Jmbg           string
	JmbgHash       string
	HelpCategories []schema.CategoryID
}

type ProfileInput struct {
	Name           *string
	Role           *schema.Role
	HelpCategories *[]schema.CategoryID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCategories(ids []schema.CategoryID) (schema.Categories, error) {
	categories := make(schema.Categories, 0, len(ids))
	seen := schema.NewCategorySet()
	for _, id := range ids {
		if !id.Valid() {
			return nil, validationError("unknown help category %q", id)
		}
		if seen.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		categories = append(categories, id)
	}
	return categories, nil
}

// Register creates an account. Email and national id are each allowed once.
func (s *Service) Register(ctx context.Context, r Registration) (*schema.User, error) {
	email := normalizeEmail(r.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationError("invalid email")
	}
	if r.Password == "" {
		return nil, validationError("missing password")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, validationError("missing name")
	}

	role := r.Role
	if role == "" {
		role = schema.RoleUser
	}
	if !role.Valid() {
		return nil, validationError("unknown role %q", role)
	}

	categories, err := validateCategories(r.HelpCategories)
	if err != nil {
		return nil, err
	}

	jmbgHash := strings.TrimSpace(r.JmbgHash)
	if r.Jmbg != "" {
		if !utils.ValidJMBG(strings.TrimSpace(r.Jmbg)) {
			return nil, validationError("invalid jmbg")
		}
		jmbgHash = s.identities.HashIdentity(r.Jmbg)
	}
	if jmbgHash == "" {
		return nil, validationError("missing jmbg")
	}

	// friendly errors first, the unique indexes settle races
	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if err != store.ErrRecordNotFound {
		return nil, storeError("lookup email", err)
	}

	if _, err := s.store.GetUserByJmbgHash(ctx, jmbgHash); err == nil {
		return nil, ErrDuplicateJmbg
	} else if err != store.ErrRecordNotFound {
		return nil, storeError("lookup jmbg", err)
	}

	passwordHash, err := s.passwords.HashPassword(r.Password)
	if err != nil {
		return nil, validationError("unusable password")
	}

	user := &schema.User{
		Email:          email,
		PasswordHash:   passwordHash,
		Name:           name,
		Role:           role,
		JmbgHash:       jmbgHash,
		HelpCategories: categories,
		CreatedAt:      s.now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, storeError("create user", err)
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"user":   user.ID,
		"role":   user.Role,
	}).Info("user registered")

	return user, nil
}

// Login checks the credentials and returns the user they belong to
func (s *Service) Login(ctx context.Context, email, password string) (*schema.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, validationError("email and password required")
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err == store.ErrRecordNotFound {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, storeError("lookup email", err)
	}

	if !s.passwords.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) GetUser(ctx context.Context, session Session, id string) (*schema.User, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, storeError("user", err)
	}
	return user, nil
}

// UpdateProfile changes the caller's own profile
func (s *Service) UpdateProfile(ctx context.Context, session Session, input ProfileInput) (*schema.User, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	var update schema.ProfileUpdate
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, validationError("missing name")
		}
		update.Name = &name
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, validationError("unknown role %q", *input.Role)
		}
		role := *input.Role
		update.Role = &role
	}
	if input.HelpCategories != nil {
		categories, err := validateCategories(*input.HelpCategories)
		if err != nil {
			return nil, err
		}
		update.HelpCategories = &categories
	}

	user, err := s.store.UpdateUserProfile(ctx, session.UserID, update)
	if err != nil {
		return nil, storeError("user", err)
	}
	return user, nil
}
