package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldside/clubsync/internal/domain/team"
	qb "github.com/fieldside/clubsync/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

type teamTableModel struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	AgeGroup string `db:"age_group"`
	Season   string `db:"season"`
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("id", "name", "age_group", "season").
		From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:       row.ID,
			Name:     row.Name,
			AgeGroup: row.AgeGroup,
			Season:   row.Season,
		})
	}
	return out, nil
}
