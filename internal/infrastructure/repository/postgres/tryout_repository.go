package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fieldside/clubsync/internal/domain/tryout"
	qb "github.com/fieldside/clubsync/internal/platform/querybuilder"
)

type TryoutRepository struct {
	db *sqlx.DB
}

type tryoutTableModel struct {
	ID               string         `db:"id"`
	PlayerID         sql.NullString `db:"player_id"`
	PlayerName       string         `db:"player_name"`
	Position         string         `db:"position"`
	Rank             int            `db:"rank"`
	RecommendedGroup string         `db:"recommended_group"`
}

func NewTryoutRepository(db *sqlx.DB) *TryoutRepository {
	return &TryoutRepository{db: db}
}

func (r *TryoutRepository) List(ctx context.Context) ([]tryout.Tryout, error) {
	query, args, err := qb.Select("id", "player_id", "player_name", "position", "rank", "recommended_group").
		From("tryouts").
		Where(qb.IsNull("deleted_at")).
		OrderBy("rank", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tryouts query: %w", err)
	}

	var rows []tryoutTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tryouts: %w", err)
	}

	out := make([]tryout.Tryout, 0, len(rows))
	for _, row := range rows {
		out = append(out, tryout.Tryout{
			ID:               row.ID,
			PlayerID:         row.PlayerID.String,
			PlayerName:       row.PlayerName,
			Position:         row.Position,
			Rank:             row.Rank,
			RecommendedGroup: row.RecommendedGroup,
		})
	}
	return out, nil
}

func (r *TryoutRepository) UpdatePlayerID(ctx context.Context, tryoutID, playerID string) error {
	query, args, err := qb.Update("tryouts").
		Set("player_id", playerID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", tryoutID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update tryout player query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update tryout player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update tryout player rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tryout %s not found", tryoutID)
	}
	return nil
}
