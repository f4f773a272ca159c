package evaluation

import "context"

// Repository covers both the canonical collection and its staging twin.
type Repository interface {
	List(ctx context.Context) ([]Evaluation, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Evaluation, error)
	Create(ctx context.Context, item Evaluation) (Evaluation, error)
	ExistsForSource(ctx context.Context, sourceID string) (bool, error)

	ListUnassigned(ctx context.Context) ([]Unassigned, error)
	CreateUnassigned(ctx context.Context, item Unassigned) (Unassigned, error)
	MarkAssigned(ctx context.Context, unassignedID string) error
}
