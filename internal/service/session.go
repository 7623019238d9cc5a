package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// SessionService implements the training session log. Technique and tag
// references are stored opaque — the log never checks that they exist or are
// active, so a session outlives soft-deletes in the catalogs.
type SessionService struct {
	sessions repo.SessionRepo
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions repo.SessionRepo) *SessionService {
	return &SessionService{sessions: sessions}
}

// List returns all of the user's sessions, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *SessionService) List(ctx context.Context, userID uuid.UUID) ([]domain.TrainingSession, error) {
	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.SessionService.List: %w", err)
	}
	if sessions == nil {
		return []domain.TrainingSession{}, nil
	}
	return sessions, nil
}

// Get returns a single owned session.
func (s *SessionService) Get(ctx context.Context, userID, sessionID uuid.UUID) (domain.TrainingSession, error) {
	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("service.SessionService.Get: %w", err)
	}
	return session, nil
}

// Create validates and persists a new session.
func (s *SessionService) Create(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	if err := validateSession(session); err != nil {
		return domain.TrainingSession{}, err
	}
	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("service.SessionService.Create: %w", err)
	}
	return created, nil
}

// Update validates and overwrites an owned session.
func (s *SessionService) Update(ctx context.Context, session domain.TrainingSession) (domain.TrainingSession, error) {
	if err := validateSession(session); err != nil {
		return domain.TrainingSession{}, err
	}
	updated, err := s.sessions.Update(ctx, session)
	if err != nil {
		return domain.TrainingSession{}, fmt.Errorf("service.SessionService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an owned session.
func (s *SessionService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, userID, sessionID); err != nil {
		return fmt.Errorf("service.SessionService.Delete: %w", err)
	}
	return nil
}

// validateSession enforces the required fields shared by Create and Update:
// date, time, and a non-negative total duration.
func validateSession(session domain.TrainingSession) error {
	if session.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(session.Time) == "" {
		return fmt.Errorf("%w: time is required", domain.ErrValidation)
	}
	if session.TotalDuration < 0 {
		return fmt.Errorf("%w: totalDuration must not be negative", domain.ErrValidation)
	}
	return nil
}
