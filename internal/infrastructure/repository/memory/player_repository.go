package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldside/clubsync/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	order   []string
	players map[string]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{players: make(map[string]player.Player, len(players))}
	for _, p := range players {
		r.order = append(r.order, p.ID)
		r.players[p.ID] = p
	}
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) UpdateTeamID(_ context.Context, playerID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return fmt.Errorf("player %s not found", playerID)
	}
	p.TeamID = teamID
	r.players[playerID] = p
	return nil
}
