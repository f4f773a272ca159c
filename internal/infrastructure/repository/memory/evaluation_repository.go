package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldside/clubsync/internal/domain/evaluation"
)

type EvaluationRepository struct {
	mu         sync.RWMutex
	seq        int
	canonical  []evaluation.Evaluation
	unassigned []evaluation.Unassigned
}

func NewEvaluationRepository(canonical []evaluation.Evaluation, unassigned []evaluation.Unassigned) *EvaluationRepository {
	return &EvaluationRepository{canonical: canonical, unassigned: unassigned}
}

func (r *EvaluationRepository) List(_ context.Context) ([]evaluation.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]evaluation.Evaluation, 0, len(r.canonical))
	out = append(out, r.canonical...)
	return out, nil
}

func (r *EvaluationRepository) ListByPlayer(_ context.Context, playerID string) ([]evaluation.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]evaluation.Evaluation, 0, 4)
	for _, e := range r.canonical {
		if e.PlayerID == playerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EvaluationRepository) Create(_ context.Context, item evaluation.Evaluation) (evaluation.Evaluation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("ev-%d", r.seq)
	}
	r.canonical = append(r.canonical, item)
	return item, nil
}

func (r *EvaluationRepository) ExistsForSource(_ context.Context, sourceID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.canonical {
		if e.SourceID != "" && e.SourceID == sourceID {
			return true, nil
		}
	}
	return false, nil
}

func (r *EvaluationRepository) ListUnassigned(_ context.Context) ([]evaluation.Unassigned, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]evaluation.Unassigned, 0, len(r.unassigned))
	for _, u := range r.unassigned {
		if !u.Assigned {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *EvaluationRepository) CreateUnassigned(_ context.Context, item evaluation.Unassigned) (evaluation.Unassigned, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("uev-%d", r.seq)
	}
	r.unassigned = append(r.unassigned, item)
	return item, nil
}

func (r *EvaluationRepository) MarkAssigned(_ context.Context, unassignedID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.unassigned {
		if r.unassigned[i].ID == unassignedID {
			r.unassigned[i].Assigned = true
			return nil
		}
	}
	return fmt.Errorf("unassigned evaluation %s not found", unassignedID)
}
