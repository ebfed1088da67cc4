package help

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/linkme/linkme-api/schema"
	"github.com/linkme/linkme-api/score"
	"github.com/linkme/linkme-api/store"
)

type HelpRequestInput struct {
	Category    schema.CategoryID
	Description string
	Urgency     schema.Urgency
	Latitude    *float64
	Longitude   *float64
	Address     string
}

func validCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// CreateHelpRequest posts a new open request owned by the caller. A missing
// address is looked up from the coordinates.
func (s *Service) CreateHelpRequest(ctx context.Context, session Session, input HelpRequestInput) (*schema.HelpRequest, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	if !input.Category.Valid() {
		return nil, validationError("unknown help category %q", input.Category)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, validationError("missing description")
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = schema.UrgencyFlexible
	}
	if !urgency.Valid() {
		return nil, validationError("unknown urgency %q", urgency)
	}

	if input.Latitude == nil || input.Longitude == nil {
		return nil, validationError("missing location")
	}
	if !validCoordinates(*input.Latitude, *input.Longitude) {
		return nil, validationError("location out of range")
	}

	address := strings.TrimSpace(input.Address)
	if address == "" {
		resolved, err := s.resolveAddress(ctx, schema.Location{
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
		})
		if err != nil {
			return nil, err
		}
		address = resolved
	}

	lat, lng := *input.Latitude, *input.Longitude
	request := &schema.HelpRequest{
		UserID:      session.UserID,
		UserName:    session.Name,
		Category:    input.Category,
		Description: description,
		Urgency:     urgency,
		Status:      schema.HelpOpen,
		Latitude:    &lat,
		Longitude:   &lng,
		Address:     address,
		CreatedAt:   s.now(),
	}

	if err := s.store.CreateHelpRequest(ctx, request); err != nil {
		return nil, storeError("create help request", err)
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"request":  request.ID,
		"user":     request.UserID,
		"category": request.Category,
	}).Info("help request created")

	return request, nil
}

func (s *Service) resolveAddress(ctx context.Context, loc schema.Location) (string, error) {
	if s.resolver == nil {
		return "", validationError("missing address")
	}

	address, err := s.resolver.ResolveAddress(ctx, loc)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warn("resolve address")
		return "", validationError("missing address and it cannot be resolved from the location")
	}
	return address, nil
}

func (s *Service) GetHelpRequest(ctx context.Context, session Session, id string) (*schema.HelpRequest, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	request, err := s.store.GetHelpRequest(ctx, id)
	if err != nil {
		return nil, storeError("help request", err)
	}
	return request, nil
}

// ListHelpRequestsByUser returns every request of a user, newest first
func (s *Service) ListHelpRequestsByUser(ctx context.Context, session Session, userID string) ([]schema.HelpRequest, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	requests, err := s.store.ListHelpRequestsByUser(ctx, userID)
	if err != nil {
		return nil, storeError("list help requests", err)
	}
	return requests, nil
}

// ListOpenHelpRequests returns the open requests, newest first
func (s *Service) ListOpenHelpRequests(ctx context.Context, session Session) ([]schema.HelpRequest, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	requests, err := s.store.ListOpenHelpRequests(ctx)
	if err != nil {
		return nil, storeError("list open help requests", err)
	}
	return requests, nil
}

// ListOpenHelpRequestsForVolunteer returns the open requests annotated with
// their match score for the caller and ranked by it. The score is computed
// on every call and never stored.
func (s *Service) ListOpenHelpRequestsForVolunteer(ctx context.Context, session Session, location *schema.Location) ([]schema.HelpRequest, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	if location != nil && !validCoordinates(location.Latitude, location.Longitude) {
		return nil, validationError("location out of range")
	}

	volunteer, err := s.store.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, storeError("user", err)
	}

	requests, err := s.store.ListOpenHelpRequests(ctx)
	if err != nil {
		return nil, storeError("list open help requests", err)
	}

	return score.Rank(requests, volunteer.HelpCategories.Set(), location), nil
}

// CancelHelpRequest moves an open request of the caller to cancelled
func (s *Service) CancelHelpRequest(ctx context.Context, session Session, id string) (*schema.HelpRequest, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	request, err := s.store.GetHelpRequest(ctx, id)
	if err != nil {
		return nil, storeError("help request", err)
	}

	if request.UserID != session.UserID {
		return nil, notPermitted("only the owner can cancel a help request")
	}

	to, err := NextStatus(request.Status, EventCancel)
	if err != nil {
		return nil, err
	}

	cancelled, err := s.store.TransitionHelpRequest(ctx, id, request.Status, to, nil)
	if err != nil {
		return nil, storeError("cancel help request", err)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"request": id,
	}).Info("help request cancelled")

	return cancelled, nil
}

// Acceptance is the outcome of a volunteer accepting a request
type Acceptance struct {
	HelpRequest  *schema.HelpRequest  `json:"helpRequest"`
	Conversation *schema.Conversation `json:"conversation"`
	Message      *schema.Message      `json:"message"`
}

// AcceptHelpRequest assigns an open request to the calling volunteer, opens
// the conversation with the owner and posts the greeting. Of two volunteers
// racing for the same request only one succeeds, the other gets
// ErrInvalidTransition. When the conversation or greeting cannot be written
// the request is put back to open.
func (s *Service) AcceptHelpRequest(ctx context.Context, session Session, id string) (*Acceptance, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	if !session.IsVolunteer() {
		return nil, notPermitted("only volunteers can accept help requests")
	}

	request, err := s.store.GetHelpRequest(ctx, id)
	if err != nil {
		return nil, storeError("help request", err)
	}

	if request.UserID == session.UserID {
		return nil, notPermitted("cannot accept your own help request")
	}

	to, err := NextStatus(request.Status, EventAccept)
	if err != nil {
		return nil, err
	}

	assignment := &schema.Assignment{
		VolunteerID:   session.UserID,
		VolunteerName: session.Name,
	}

	var result Acceptance
	err = s.atomically(ctx, func(core store.LinkCore, transactional bool) error {
		accepted, err := core.TransitionHelpRequest(ctx, id, schema.HelpOpen, to, assignment)
		if err != nil {
			return storeError("accept help request", err)
		}

		conversation, message, err := s.openConversation(ctx, core, accepted, session)
		if err != nil {
			if transactional {
				return err
			}
			return s.compensateAcceptance(ctx, core, id, assignment, err)
		}

		result = Acceptance{
			HelpRequest:  accepted,
			Conversation: conversation,
			Message:      message,
		}
		return nil
	})
	if err != nil {
		return nil, storeError("accept help request", err)
	}

	log.WithFields(log.Fields{
		"prefix":       logPrefix,
		"request":      id,
		"volunteer":    session.UserID,
		"conversation": result.Conversation.ID,
	}).Info("help request accepted")

	return &result, nil
}

func (s *Service) openConversation(ctx context.Context, core store.LinkCore, request *schema.HelpRequest, volunteer Session) (*schema.Conversation, *schema.Message, error) {
	owner := schema.Participant{ID: request.UserID, Name: request.UserName}
	requestID := request.ID

	conversation, err := s.getOrCreateConversation(ctx, core, owner, volunteer.Participant(), &requestID)
	if err != nil {
		return nil, nil, err
	}

	message, err := s.postMessage(ctx, core, conversation, volunteer.Participant(), greeting(request.Description))
	if err != nil {
		return nil, nil, err
	}

	return conversation, message, nil
}

// compensateAcceptance puts an accepted request back to open after its side
// effects failed. The reopen only matches the volunteer who accepted it.
func (s *Service) compensateAcceptance(ctx context.Context, core store.LinkCore, id string, assignment *schema.Assignment, cause error) error {
	entry := log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"request":   id,
		"volunteer": assignment.VolunteerID,
		"cause":     cause,
	})

	if _, err := core.TransitionHelpRequest(ctx, id, schema.HelpAccepted, schema.HelpOpen, assignment); err != nil {
		entry.WithField("error", err).Error("reopen help request after failed acceptance")
		return ErrAcceptanceIncomplete
	}

	entry.Warn("acceptance rolled back")
	return cause
}

const greetingExcerptLength = 50

func greeting(description string) string {
	excerpt := []rune(description)
	if len(excerpt) > greetingExcerptLength {
		excerpt = excerpt[:greetingExcerptLength]
	}
	return "Pozdrav! Htio/Htjela bih Vam pomoći sa Vašim zahtjevom: \"" + string(excerpt) + "...\""
}
