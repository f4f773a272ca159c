package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldside/clubsync/internal/domain/assessment"
)

type AssessmentRepository struct {
	mu         sync.RWMutex
	seq        int
	canonical  []assessment.PhysicalAssessment
	unassigned []assessment.Unassigned
}

func NewAssessmentRepository(canonical []assessment.PhysicalAssessment, unassigned []assessment.Unassigned) *AssessmentRepository {
	return &AssessmentRepository{canonical: canonical, unassigned: unassigned}
}

func (r *AssessmentRepository) List(_ context.Context) ([]assessment.PhysicalAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessment.PhysicalAssessment, 0, len(r.canonical))
	out = append(out, r.canonical...)
	return out, nil
}

func (r *AssessmentRepository) ListByPlayer(_ context.Context, playerID string) ([]assessment.PhysicalAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessment.PhysicalAssessment, 0, 4)
	for _, a := range r.canonical {
		if a.PlayerID == playerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AssessmentRepository) Create(_ context.Context, item assessment.PhysicalAssessment) (assessment.PhysicalAssessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("pa-%d", r.seq)
	}
	r.canonical = append(r.canonical, item)
	return item, nil
}

func (r *AssessmentRepository) ExistsForSource(_ context.Context, sourceID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.canonical {
		if a.SourceID != "" && a.SourceID == sourceID {
			return true, nil
		}
	}
	return false, nil
}

func (r *AssessmentRepository) UpdateTeamID(_ context.Context, assessmentID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.canonical {
		if r.canonical[i].ID == assessmentID {
			r.canonical[i].TeamID = teamID
			return nil
		}
	}
	return fmt.Errorf("assessment %s not found", assessmentID)
}

func (r *AssessmentRepository) ListUnassigned(_ context.Context) ([]assessment.Unassigned, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessment.Unassigned, 0, len(r.unassigned))
	for _, u := range r.unassigned {
		if !u.Assigned {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *AssessmentRepository) CreateUnassigned(_ context.Context, item assessment.Unassigned) (assessment.Unassigned, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("upa-%d", r.seq)
	}
	r.unassigned = append(r.unassigned, item)
	return item, nil
}

func (r *AssessmentRepository) MarkAssigned(_ context.Context, unassignedID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.unassigned {
		if r.unassigned[i].ID == unassignedID {
			r.unassigned[i].Assigned = true
			return nil
		}
	}
	return fmt.Errorf("unassigned assessment %s not found", unassignedID)
}
