package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/store"
)

// InterventionService handles wellness exercise assignments.
type InterventionService struct {
	store store.Store
}

func NewInterventionService(s store.Store) *InterventionService {
	return &InterventionService{store: s}
}

func (s *InterventionService) Create(ctx context.Context, iv *model.Intervention) (*model.Intervention, error) {
	iv.InterventionID = uuid.NewString()
	return s.store.Interventions().Create(ctx, iv)
}

func (s *InterventionService) List(ctx context.Context, userID string) ([]*model.Intervention, error) {
	return s.store.Interventions().List(ctx, userID)
}

// Complete marks an intervention finished at the given time.
func (s *InterventionService) Complete(ctx context.Context, userID, interventionID string, at time.Time) (*model.Intervention, error) {
	return s.store.Interventions().Complete(ctx, userID, interventionID, at)
}
