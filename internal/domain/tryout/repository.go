package tryout

import "context"

type Repository interface {
	List(ctx context.Context) ([]Tryout, error)
	UpdatePlayerID(ctx context.Context, tryoutID, playerID string) error
}
