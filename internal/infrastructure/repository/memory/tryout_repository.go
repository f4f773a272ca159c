package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldside/clubsync/internal/domain/tryout"
)

type TryoutRepository struct {
	mu      sync.RWMutex
	tryouts []tryout.Tryout
}

func NewTryoutRepository(tryouts []tryout.Tryout) *TryoutRepository {
	return &TryoutRepository{tryouts: tryouts}
}

func (r *TryoutRepository) List(_ context.Context) ([]tryout.Tryout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tryout.Tryout, 0, len(r.tryouts))
	out = append(out, r.tryouts...)
	return out, nil
}

func (r *TryoutRepository) UpdatePlayerID(_ context.Context, tryoutID, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tryouts {
		if r.tryouts[i].ID == tryoutID {
			r.tryouts[i].PlayerID = playerID
			return nil
		}
	}
	return fmt.Errorf("tryout %s not found", tryoutID)
}
