package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fieldside/clubsync/internal/domain/evaluation"
	idgen "github.com/fieldside/clubsync/internal/platform/id"
	qb "github.com/fieldside/clubsync/internal/platform/querybuilder"
)

type EvaluationRepository struct {
	db    *sqlx.DB
	idGen idgen.Generator
}

type evaluationTableModel struct {
	ID             string    `db:"id"`
	PlayerID       string    `db:"player_id"`
	SourceID       string    `db:"source_id"`
	EvaluationDate time.Time `db:"evaluation_date"`
	EvaluatorName  string    `db:"evaluator_name"`

	GrowthMindset int `db:"growth_mindset"`
	Coachability  int `db:"coachability"`
	Effort        int `db:"effort"`
	Technique     int `db:"technique"`
	GameAwareness int `db:"game_awareness"`
	Teamwork      int `db:"teamwork"`

	PlayerStrengths string `db:"player_strengths"`
	AreasOfGrowth   string `db:"areas_of_growth"`
	TrainingFocus   string `db:"training_focus"`
}

var evaluationSelectColumns = []string{
	"id", "player_id", "source_id", "evaluation_date", "evaluator_name",
	"growth_mindset", "coachability", "effort", "technique", "game_awareness", "teamwork",
	"player_strengths", "areas_of_growth", "training_focus",
}

func (m evaluationTableModel) toDomain() evaluation.Evaluation {
	return evaluation.Evaluation{
		ID:             m.ID,
		PlayerID:       m.PlayerID,
		SourceID:       m.SourceID,
		EvaluationDate: m.EvaluationDate,
		EvaluatorName:  m.EvaluatorName,

		GrowthMindset: m.GrowthMindset,
		Coachability:  m.Coachability,
		Effort:        m.Effort,
		Technique:     m.Technique,
		GameAwareness: m.GameAwareness,
		Teamwork:      m.Teamwork,

		PlayerStrengths: m.PlayerStrengths,
		AreasOfGrowth:   m.AreasOfGrowth,
		TrainingFocus:   m.TrainingFocus,
	}
}

type unassignedEvaluationTableModel struct {
	ID             string    `db:"id"`
	PlayerName     string    `db:"player_name"`
	EvaluationDate time.Time `db:"evaluation_date"`
	EvaluatorName  string    `db:"evaluator_name"`

	GrowthMindset int `db:"growth_mindset"`
	Coachability  int `db:"coachability"`
	Effort        int `db:"effort"`
	Technique     int `db:"technique"`
	GameAwareness int `db:"game_awareness"`
	Teamwork      int `db:"teamwork"`

	PlayerStrengths     string `db:"player_strengths"`
	Strengths           string `db:"strengths"`
	AreasOfGrowth       string `db:"areas_of_growth"`
	AreasForImprovement string `db:"areas_for_improvement"`
	TrainingFocus       string `db:"training_focus"`

	Assigned bool `db:"assigned"`
}

var unassignedEvaluationSelectColumns = []string{
	"id", "player_name", "evaluation_date", "evaluator_name",
	"growth_mindset", "coachability", "effort", "technique", "game_awareness", "teamwork",
	"player_strengths", "strengths", "areas_of_growth", "areas_for_improvement", "training_focus",
	"assigned",
}

func (m unassignedEvaluationTableModel) toDomain() evaluation.Unassigned {
	return evaluation.Unassigned{
		ID:             m.ID,
		PlayerName:     m.PlayerName,
		EvaluationDate: m.EvaluationDate,
		EvaluatorName:  m.EvaluatorName,

		GrowthMindset: m.GrowthMindset,
		Coachability:  m.Coachability,
		Effort:        m.Effort,
		Technique:     m.Technique,
		GameAwareness: m.GameAwareness,
		Teamwork:      m.Teamwork,

		PlayerStrengths:     m.PlayerStrengths,
		Strengths:           m.Strengths,
		AreasOfGrowth:       m.AreasOfGrowth,
		AreasForImprovement: m.AreasForImprovement,
		TrainingFocus:       m.TrainingFocus,

		Assigned: m.Assigned,
	}
}

func NewEvaluationRepository(db *sqlx.DB, idGen idgen.Generator) *EvaluationRepository {
	return &EvaluationRepository{db: db, idGen: idGen}
}

func (r *EvaluationRepository) List(ctx context.Context) ([]evaluation.Evaluation, error) {
	return r.listCanonical(ctx, qb.IsNull("deleted_at"))
}

func (r *EvaluationRepository) ListByPlayer(ctx context.Context, playerID string) ([]evaluation.Evaluation, error) {
	return r.listCanonical(ctx, qb.Eq("player_id", playerID), qb.IsNull("deleted_at"))
}

func (r *EvaluationRepository) listCanonical(ctx context.Context, conditions ...qb.Condition) ([]evaluation.Evaluation, error) {
	query, args, err := qb.Select(evaluationSelectColumns...).
		From("evaluations").
		Where(conditions...).
		OrderBy("evaluation_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select evaluations query: %w", err)
	}

	var rows []evaluationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select evaluations: %w", err)
	}

	out := make([]evaluation.Evaluation, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *EvaluationRepository) Create(ctx context.Context, item evaluation.Evaluation) (evaluation.Evaluation, error) {
	if item.ID == "" {
		id, err := r.idGen.NewID()
		if err != nil {
			return evaluation.Evaluation{}, fmt.Errorf("generate evaluation id: %w", err)
		}
		item.ID = id
	}

	model := evaluationTableModel{
		ID:             item.ID,
		PlayerID:       item.PlayerID,
		SourceID:       item.SourceID,
		EvaluationDate: item.EvaluationDate,
		EvaluatorName:  item.EvaluatorName,

		GrowthMindset: item.GrowthMindset,
		Coachability:  item.Coachability,
		Effort:        item.Effort,
		Technique:     item.Technique,
		GameAwareness: item.GameAwareness,
		Teamwork:      item.Teamwork,

		PlayerStrengths: item.PlayerStrengths,
		AreasOfGrowth:   item.AreasOfGrowth,
		TrainingFocus:   item.TrainingFocus,
	}

	query, args, err := qb.InsertModel("evaluations", model, "")
	if err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("build insert evaluation query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return evaluation.Evaluation{}, fmt.Errorf("insert evaluation: %w", err)
	}
	return item, nil
}

func (r *EvaluationRepository) ExistsForSource(ctx context.Context, sourceID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1) AS n").
		From("evaluations").
		Where(
			qb.Eq("source_id", sourceID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count evaluations query: %w", err)
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return false, fmt.Errorf("count evaluations by source: %w", err)
	}
	return n > 0, nil
}

func (r *EvaluationRepository) ListUnassigned(ctx context.Context) ([]evaluation.Unassigned, error) {
	query, args, err := qb.Select(unassignedEvaluationSelectColumns...).
		From("unassigned_evaluations").
		Where(
			qb.Eq("assigned", false),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unassigned evaluations query: %w", err)
	}

	var rows []unassignedEvaluationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unassigned evaluations: %w", err)
	}

	out := make([]evaluation.Unassigned, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *EvaluationRepository) CreateUnassigned(ctx context.Context, item evaluation.Unassigned) (evaluation.Unassigned, error) {
	if item.ID == "" {
		id, err := r.idGen.NewID()
		if err != nil {
			return evaluation.Unassigned{}, fmt.Errorf("generate unassigned evaluation id: %w", err)
		}
		item.ID = id
	}

	model := unassignedEvaluationTableModel{
		ID:             item.ID,
		PlayerName:     item.PlayerName,
		EvaluationDate: item.EvaluationDate,
		EvaluatorName:  item.EvaluatorName,

		GrowthMindset: item.GrowthMindset,
		Coachability:  item.Coachability,
		Effort:        item.Effort,
		Technique:     item.Technique,
		GameAwareness: item.GameAwareness,
		Teamwork:      item.Teamwork,

		PlayerStrengths:     item.PlayerStrengths,
		Strengths:           item.Strengths,
		AreasOfGrowth:       item.AreasOfGrowth,
		AreasForImprovement: item.AreasForImprovement,
		TrainingFocus:       item.TrainingFocus,

		Assigned: item.Assigned,
	}

	query, args, err := qb.InsertModel("unassigned_evaluations", model, "")
	if err != nil {
		return evaluation.Unassigned{}, fmt.Errorf("build insert unassigned evaluation query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return evaluation.Unassigned{}, fmt.Errorf("insert unassigned evaluation: %w", err)
	}
	return item, nil
}

func (r *EvaluationRepository) MarkAssigned(ctx context.Context, unassignedID string) error {
	query, args, err := qb.Update("unassigned_evaluations").
		Set("assigned", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", unassignedID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark evaluation assigned query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark evaluation assigned: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark evaluation assigned rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("unassigned evaluation %s not found", unassignedID)
	}
	return nil
}
