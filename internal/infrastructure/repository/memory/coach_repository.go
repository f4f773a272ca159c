package memory

import (
	"context"
	"sync"

	"github.com/fieldside/clubsync/internal/domain/coach"
)

type CoachRepository struct {
	mu      sync.RWMutex
	coaches []coach.Coach
}

func NewCoachRepository(coaches []coach.Coach) *CoachRepository {
	return &CoachRepository{coaches: coaches}
}

func (r *CoachRepository) List(_ context.Context) ([]coach.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]coach.Coach, 0, len(r.coaches))
	out = append(out, r.coaches...)
	return out, nil
}

func (r *CoachRepository) ListByTeam(_ context.Context, teamID string) ([]coach.Coach, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]coach.Coach, 0, 2)
	for _, c := range r.coaches {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	return out, nil
}
