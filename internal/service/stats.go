package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DavidJulianGit/BJJTracker/internal/domain"
	"github.com/DavidJulianGit/BJJTracker/internal/repo"
)

// StatsService computes the read-only statistics view. Nothing is persisted;
// every request re-fetches the user's sessions and rolls them up in memory.
type StatsService struct {
	sessions repo.SessionRepo

	// now is swappable in tests.
	now func() time.Time
}

// NewStatsService constructs a StatsService.
func NewStatsService(sessions repo.SessionRepo) *StatsService {
	return &StatsService{sessions: sessions, now: time.Now}
}

// Summary rolls up the user's sessions within the window. topTechniques <= 0
// means no truncation.
func (s *StatsService) Summary(ctx context.Context, userID uuid.UUID, window domain.StatsWindow, topTechniques int) (domain.StatsSummary, error) {
	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return domain.StatsSummary{}, fmt.Errorf("service.StatsService.Summary: %w", err)
	}
	return domain.Summarize(sessions, window.Start(s.now()), topTechniques), nil
}
