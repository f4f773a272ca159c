package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldside/clubsync/internal/domain/coach"
	qb "github.com/fieldside/clubsync/internal/platform/querybuilder"
)

type CoachRepository struct {
	db *sqlx.DB
}

type coachTableModel struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	TeamID   string `db:"team_id"`
	Role     string `db:"role"`
}

func NewCoachRepository(db *sqlx.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) List(ctx context.Context) ([]coach.Coach, error) {
	return r.list(ctx, qb.IsNull("deleted_at"))
}

func (r *CoachRepository) ListByTeam(ctx context.Context, teamID string) ([]coach.Coach, error) {
	return r.list(ctx, qb.Eq("team_id", teamID), qb.IsNull("deleted_at"))
}

func (r *CoachRepository) list(ctx context.Context, conditions ...qb.Condition) ([]coach.Coach, error) {
	query, args, err := qb.Select("id", "full_name", "team_id", "role").
		From("coaches").
		Where(conditions...).
		OrderBy("full_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select coaches query: %w", err)
	}

	var rows []coachTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select coaches: %w", err)
	}

	out := make([]coach.Coach, 0, len(rows))
	for _, row := range rows {
		out = append(out, coach.Coach{
			ID:       row.ID,
			FullName: row.FullName,
			TeamID:   row.TeamID,
			Role:     row.Role,
		})
	}
	return out, nil
}
