package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/linkme/linkme-api/schema"
)

// CreateHelpRequest creates a help entry
func (s *LinkStore) CreateHelpRequest(ctx context.Context, request *schema.HelpRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	return s.ormDB.Create(request).Error
}

func (s *LinkStore) GetHelpRequest(ctx context.Context, id string) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	if err := s.ormDB.Where("id = ?", id).First(&help).Error; err != nil {
		return nil, notFoundOr(err)
	}

	return &help, nil
}

// ListHelpRequestsByUser returns the requests a user has made, newest first
func (s *LinkStore) ListHelpRequestsByUser(ctx context.Context, userID string) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.Where("user_id = ?", userID).Order("created_at DESC").Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// ListOpenHelpRequests returns every request still waiting for a
// volunteer, newest first
func (s *LinkStore) ListOpenHelpRequests(ctx context.Context) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	if err := s.ormDB.Where("status = ?", schema.HelpOpen).Order("created_at DESC").Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// TransitionHelpRequest updates the status of a request only when it is
// currently in `from`. The update is a single conditional statement, so of
// two concurrent transitions from the same status only one succeeds.
func (s *LinkStore) TransitionHelpRequest(ctx context.Context, id string, from, to schema.RequestStatus, assignment *schema.Assignment) (*schema.HelpRequest, error) {
	query := s.ormDB.Model(schema.HelpRequest{}).Where("id = ? AND status = ?", id, from)
	fields := map[string]interface{}{
		"status": to,
	}

	switch to {
	case schema.HelpAccepted:
		if assignment != nil {
			fields["volunteer_id"] = assignment.VolunteerID
			fields["volunteer_name"] = assignment.VolunteerName
		}
	case schema.HelpOpen:
		fields["volunteer_id"] = gorm.Expr("NULL")
		fields["volunteer_name"] = gorm.Expr("NULL")
		if assignment != nil {
			query = query.Where("volunteer_id = ?", assignment.VolunteerID)
		}
	}

	result := query.Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := s.GetHelpRequest(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrStatusConflict
	}

	return s.GetHelpRequest(ctx, id)
}
