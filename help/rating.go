package help

import (
	"context"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"github.com/linkme/linkme-api/schema"
	"github.com/linkme/linkme-api/store"
)

type RatingInput struct {
	ToUserID      string
	HelpRequestID string
	Score         int
	Comment       *string
}

// SubmitRating lets one party of a help request rate the other. The rating
// is stored first, then folded into the target's running mean, then the
// request is completed. A rejected insert leaves both the aggregate and the
// status as they were.
func (s *Service) SubmitRating(ctx context.Context, session Session, input RatingInput) (*schema.Rating, error) {
	if err := session.validate(); err != nil {
		return nil, err
	}

	if input.Score < schema.MinRatingScore || input.Score > schema.MaxRatingScore {
		return nil, validationError("score must be between %d and %d", schema.MinRatingScore, schema.MaxRatingScore)
	}
	if input.HelpRequestID == "" || input.ToUserID == "" {
		return nil, validationError("missing help request or rated user")
	}

	request, err := s.store.GetHelpRequest(ctx, input.HelpRequestID)
	if err != nil {
		return nil, storeError("help request", err)
	}

	if request.Status != schema.HelpAccepted && request.Status != schema.HelpCompleted {
		return nil, notRateable(request.Status)
	}

	if !ratingParties(request, session.UserID, input.ToUserID) {
		return nil, notPermitted("only the owner and the volunteer of a request can rate each other")
	}

	if _, err := s.store.GetRatingByRequestAndUser(ctx, input.HelpRequestID, session.UserID); err == nil {
		// an earlier submit may have stored the rating but failed to complete
		if err := s.completeRequest(ctx, s.store, request, false); err != nil {
			return nil, err
		}
		return nil, ErrDuplicateRating
	} else if err != store.ErrRecordNotFound {
		return nil, storeError("lookup rating", err)
	}

	var comment *string
	if input.Comment != nil {
		if c := strings.TrimSpace(*input.Comment); c != "" {
			comment = &c
		}
	}

	rating := &schema.Rating{
		FromUserID:    session.UserID,
		ToUserID:      input.ToUserID,
		HelpRequestID: input.HelpRequestID,
		Score:         input.Score,
		Comment:       comment,
		CreatedAt:     s.now(),
	}

	err = s.atomically(ctx, func(core store.LinkCore, transactional bool) error {
		if err := core.CreateRating(ctx, rating); err != nil {
			return storeError("create rating", err)
		}

		if err := s.applyRating(ctx, core, rating, transactional); err != nil {
			return err
		}

		return s.completeRequest(ctx, core, request, transactional)
	})
	if err != nil {
		return nil, storeError("submit rating", err)
	}

	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"request": rating.HelpRequestID,
		"from":    rating.FromUserID,
		"to":      rating.ToUserID,
		"score":   rating.Score,
	}).Info("rating submitted")

	return rating, nil
}

// applyRating updates the target's aggregate. Outside a transaction the
// rating row already exists, so the update is retried rather than left
// behind.
func (s *Service) applyRating(ctx context.Context, core store.LinkCore, rating *schema.Rating, transactional bool) error {
	if transactional {
		_, err := core.ApplyRating(ctx, rating.ToUserID, rating.Score)
		return storeError("update rating aggregate", err)
	}

	operation := func() error {
		_, err := core.ApplyRating(ctx, rating.ToUserID, rating.Score)
		if err == store.ErrRecordNotFound {
			return backoff.Permanent(err)
		}
		return err
	}

	if err := s.retry(ctx, "rating aggregate update", operation); err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"rating": rating.ID,
			"user":   rating.ToUserID,
			"error":  err,
		}).Error("rating stored but aggregate not updated")
		return storeError("update rating aggregate", err)
	}
	return nil
}

// completeRequest moves an accepted request to completed. It is idempotent:
// a request already completed, by the other party or an earlier submit, is
// left as is. Outside a transaction the rating is already stored, so the
// write is retried rather than left behind.
func (s *Service) completeRequest(ctx context.Context, core store.LinkCore, request *schema.HelpRequest, transactional bool) error {
	if request.Status != schema.HelpAccepted {
		return nil
	}

	to, err := NextStatus(request.Status, EventComplete)
	if err != nil {
		return err
	}

	if transactional {
		if _, err := core.TransitionHelpRequest(ctx, request.ID, request.Status, to, nil); err != nil && err != store.ErrStatusConflict {
			return storeError("complete help request", err)
		}
		return nil
	}

	operation := func() error {
		_, err := core.TransitionHelpRequest(ctx, request.ID, request.Status, to, nil)
		switch err {
		case nil, store.ErrStatusConflict:
			return nil
		case store.ErrRecordNotFound:
			return backoff.Permanent(err)
		default:
			return err
		}
	}

	if err := s.retry(ctx, "help request completion", operation); err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"request": request.ID,
			"error":   err,
		}).Error("rating stored but help request not completed")
		return storeError("complete help request", err)
	}
	return nil
}

// retry runs a compensating write with the service backoff
func (s *Service) retry(ctx context.Context, what string, operation backoff.Operation) error {
	notify := func(err error, next time.Duration) {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Warnf("retry %s in %s", what, next)
	}

	return backoff.RetryNotify(operation, backoff.WithContext(s.backOff(), ctx), notify)
}

func ratingParties(request *schema.HelpRequest, from, to string) bool {
	if from == to || request.VolunteerID == nil {
		return false
	}
	volunteer := *request.VolunteerID
	return (from == request.UserID && to == volunteer) || (from == volunteer && to == request.UserID)
}

func notRateable(status schema.RequestStatus) error {
	_, err := NextStatus(status, EventComplete)
	return err
}

// HasRated reports whether the caller already rated a help request
func (s *Service) HasRated(ctx context.Context, session Session, helpRequestID string) (*schema.Rating, bool, error) {
	if err := session.validate(); err != nil {
		return nil, false, err
	}
	if helpRequestID == "" {
		return nil, false, validationError("missing help request")
	}

	rating, err := s.store.GetRatingByRequestAndUser(ctx, helpRequestID, session.UserID)
	switch err {
	case nil:
		return rating, true, nil
	case store.ErrRecordNotFound:
		return nil, false, nil
	default:
		return nil, false, storeError("lookup rating", err)
	}
}
