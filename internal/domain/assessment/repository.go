package assessment

import "context"

type Repository interface {
	List(ctx context.Context) ([]PhysicalAssessment, error)
	ListByPlayer(ctx context.Context, playerID string) ([]PhysicalAssessment, error)
	Create(ctx context.Context, item PhysicalAssessment) (PhysicalAssessment, error)
	ExistsForSource(ctx context.Context, sourceID string) (bool, error)
	UpdateTeamID(ctx context.Context, assessmentID, teamID string) error

	ListUnassigned(ctx context.Context) ([]Unassigned, error)
	CreateUnassigned(ctx context.Context, item Unassigned) (Unassigned, error)
	MarkAssigned(ctx context.Context, unassignedID string) error
}
