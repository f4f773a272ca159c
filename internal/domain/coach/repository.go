package coach

import "context"

type Repository interface {
	List(ctx context.Context) ([]Coach, error)
	ListByTeam(ctx context.Context, teamID string) ([]Coach, error)
}
