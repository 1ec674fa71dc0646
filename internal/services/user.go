package services

import (
	"context"
	"fmt"
	"time"

	"github.com/moodmate/backend/internal/model"
	"github.com/moodmate/backend/internal/personas"
	"github.com/moodmate/backend/internal/store"
)

// UserService handles user-related operations.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) UpsertUser(ctx context.Context, u *model.User) (*model.User, error) {
	if u.SelectedPersona == "" {
		u.SelectedPersona = personas.DefaultID
	}
	return s.store.Users().Upsert(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.store.Users().GetByEmail(ctx, email)
}

// UpdatePersona switches the user's selected counselor persona.
func (s *UserService) UpdatePersona(ctx context.Context, userID, personaID string) (*model.User, error) {
	if !personas.Exists(personaID) {
		return nil, fmt.Errorf("%w: unknown persona %q", model.ErrValidation, personaID)
	}
	return s.store.Users().UpdatePersona(ctx, userID, personaID)
}

// RecordLogin stamps the user's last login time.
func (s *UserService) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	return s.store.Users().TouchLastLogin(ctx, userID, at)
}
