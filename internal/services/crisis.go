package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// CrisisService handles crisis alert lifecycle for administrators.
type CrisisService struct {
	store store.Store
}

func NewCrisisService(s store.Store) *CrisisService { return &CrisisService{store: s} }

func (s *CrisisService) CreateAlert(ctx context.Context, a *model.CrisisAlert) (*model.CrisisAlert, error) {
	a.AlertID = uuid.NewString()
	if a.Status == "" {
		a.Status = "new"
	}
	return s.store.CrisisAlerts().Create(ctx, a)
}

func (s *CrisisService) ListAlerts(ctx context.Context) ([]*model.CrisisAlert, error) {
	return s.store.CrisisAlerts().ListAll(ctx)
}

// ReviewAlert transitions an alert to reviewed or resolved, recording who
// acted and when.
func (s *CrisisService) ReviewAlert(ctx context.Context, alertID, status string, notes *string, reviewedBy string, at time.Time) (*model.CrisisAlert, error) {
	switch status {
	case "reviewed", "resolved":
	default:
		return nil, fmt.Errorf("%w: invalid alert status %q", model.ErrValidation, status)
	}
	return s.store.CrisisAlerts().Update(ctx, alertID, status, notes, &reviewedBy, &at)
}
