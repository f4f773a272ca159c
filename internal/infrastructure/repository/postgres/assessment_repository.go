package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	idgen "github.com/fieldside/clubsync/internal/platform/id"
	qb "github.com/fieldside/clubsync/internal/platform/querybuilder"
)

type AssessmentRepository struct {
	db    *sqlx.DB
	idGen idgen.Generator
}

type assessmentTableModel struct {
	ID             string         `db:"id"`
	PlayerID       string         `db:"player_id"`
	TeamID         sql.NullString `db:"team_id"`
	SourceID       string         `db:"source_id"`
	PlayerName     string         `db:"player_name"`
	AssessmentDate time.Time      `db:"assessment_date"`

	Sprint   float64 `db:"sprint"`
	Vertical float64 `db:"vertical"`
	Yirt     float64 `db:"yirt"`
	Shuttle  float64 `db:"shuttle"`

	SpeedScore     float64 `db:"speed_score"`
	PowerScore     float64 `db:"power_score"`
	EnduranceScore float64 `db:"endurance_score"`
	AgilityScore   float64 `db:"agility_score"`

	Notes string `db:"notes"`
}

var assessmentSelectColumns = []string{
	"id", "player_id", "team_id", "source_id", "player_name", "assessment_date",
	"sprint", "vertical", "yirt", "shuttle",
	"speed_score", "power_score", "endurance_score", "agility_score",
	"notes",
}

func (m assessmentTableModel) toDomain() assessment.PhysicalAssessment {
	return assessment.PhysicalAssessment{
		ID:             m.ID,
		PlayerID:       m.PlayerID,
		TeamID:         m.TeamID.String,
		SourceID:       m.SourceID,
		PlayerName:     m.PlayerName,
		AssessmentDate: m.AssessmentDate,

		Sprint:   m.Sprint,
		Vertical: m.Vertical,
		Yirt:     m.Yirt,
		Shuttle:  m.Shuttle,

		SpeedScore:     m.SpeedScore,
		PowerScore:     m.PowerScore,
		EnduranceScore: m.EnduranceScore,
		AgilityScore:   m.AgilityScore,

		Notes: m.Notes,
	}
}

type unassignedAssessmentTableModel struct {
	ID         string `db:"id"`
	PlayerName string `db:"player_name"`

	SprintTime   float64 `db:"sprint_time"`
	VerticalJump float64 `db:"vertical_jump"`
	Endurance    float64 `db:"endurance"`
	Agility      float64 `db:"agility"`
	Speed        float64 `db:"speed"`
	Power        float64 `db:"power"`

	Notes    string `db:"notes"`
	Assigned bool   `db:"assigned"`
}

var unassignedAssessmentSelectColumns = []string{
	"id", "player_name",
	"sprint_time", "vertical_jump", "endurance", "agility", "speed", "power",
	"notes", "assigned",
}

func (m unassignedAssessmentTableModel) toDomain() assessment.Unassigned {
	return assessment.Unassigned{
		ID:         m.ID,
		PlayerName: m.PlayerName,

		SprintTime:   m.SprintTime,
		VerticalJump: m.VerticalJump,
		Endurance:    m.Endurance,
		Agility:      m.Agility,
		Speed:        m.Speed,
		Power:        m.Power,

		Notes:    m.Notes,
		Assigned: m.Assigned,
	}
}

func NewAssessmentRepository(db *sqlx.DB, idGen idgen.Generator) *AssessmentRepository {
	return &AssessmentRepository{db: db, idGen: idGen}
}

func (r *AssessmentRepository) List(ctx context.Context) ([]assessment.PhysicalAssessment, error) {
	return r.listCanonical(ctx, qb.IsNull("deleted_at"))
}

func (r *AssessmentRepository) ListByPlayer(ctx context.Context, playerID string) ([]assessment.PhysicalAssessment, error) {
	return r.listCanonical(ctx, qb.Eq("player_id", playerID), qb.IsNull("deleted_at"))
}

func (r *AssessmentRepository) listCanonical(ctx context.Context, conditions ...qb.Condition) ([]assessment.PhysicalAssessment, error) {
	query, args, err := qb.Select(assessmentSelectColumns...).
		From("physical_assessments").
		Where(conditions...).
		OrderBy("assessment_date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select assessments query: %w", err)
	}

	var rows []assessmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select assessments: %w", err)
	}

	out := make([]assessment.PhysicalAssessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AssessmentRepository) Create(ctx context.Context, item assessment.PhysicalAssessment) (assessment.PhysicalAssessment, error) {
	if item.ID == "" {
		id, err := r.idGen.NewID()
		if err != nil {
			return assessment.PhysicalAssessment{}, fmt.Errorf("generate assessment id: %w", err)
		}
		item.ID = id
	}

	model := assessmentTableModel{
		ID:             item.ID,
		PlayerID:       item.PlayerID,
		TeamID:         sql.NullString{String: item.TeamID, Valid: item.TeamID != ""},
		SourceID:       item.SourceID,
		PlayerName:     item.PlayerName,
		AssessmentDate: item.AssessmentDate,

		Sprint:   item.Sprint,
		Vertical: item.Vertical,
		Yirt:     item.Yirt,
		Shuttle:  item.Shuttle,

		SpeedScore:     item.SpeedScore,
		PowerScore:     item.PowerScore,
		EnduranceScore: item.EnduranceScore,
		AgilityScore:   item.AgilityScore,

		Notes: item.Notes,
	}

	query, args, err := qb.InsertModel("physical_assessments", model, "")
	if err != nil {
		return assessment.PhysicalAssessment{}, fmt.Errorf("build insert assessment query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return assessment.PhysicalAssessment{}, fmt.Errorf("insert assessment: %w", err)
	}
	return item, nil
}

func (r *AssessmentRepository) ExistsForSource(ctx context.Context, sourceID string) (bool, error) {
	query, args, err := qb.Select("COUNT(1) AS n").
		From("physical_assessments").
		Where(
			qb.Eq("source_id", sourceID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build count assessments query: %w", err)
	}

	var n int
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return false, fmt.Errorf("count assessments by source: %w", err)
	}
	return n > 0, nil
}

func (r *AssessmentRepository) UpdateTeamID(ctx context.Context, assessmentID, teamID string) error {
	query, args, err := qb.Update("physical_assessments").
		Set("team_id", teamID).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", assessmentID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update assessment team query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update assessment team: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update assessment team rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assessment %s not found", assessmentID)
	}
	return nil
}

func (r *AssessmentRepository) ListUnassigned(ctx context.Context) ([]assessment.Unassigned, error) {
	query, args, err := qb.Select(unassignedAssessmentSelectColumns...).
		From("unassigned_assessments").
		Where(
			qb.Eq("assigned", false),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unassigned assessments query: %w", err)
	}

	var rows []unassignedAssessmentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unassigned assessments: %w", err)
	}

	out := make([]assessment.Unassigned, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *AssessmentRepository) CreateUnassigned(ctx context.Context, item assessment.Unassigned) (assessment.Unassigned, error) {
	if item.ID == "" {
		id, err := r.idGen.NewID()
		if err != nil {
			return assessment.Unassigned{}, fmt.Errorf("generate unassigned assessment id: %w", err)
		}
		item.ID = id
	}

	model := unassignedAssessmentTableModel{
		ID:         item.ID,
		PlayerName: item.PlayerName,

		SprintTime:   item.SprintTime,
		VerticalJump: item.VerticalJump,
		Endurance:    item.Endurance,
		Agility:      item.Agility,
		Speed:        item.Speed,
		Power:        item.Power,

		Notes:    item.Notes,
		Assigned: item.Assigned,
	}

	query, args, err := qb.InsertModel("unassigned_assessments", model, "")
	if err != nil {
		return assessment.Unassigned{}, fmt.Errorf("build insert unassigned assessment query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return assessment.Unassigned{}, fmt.Errorf("insert unassigned assessment: %w", err)
	}
	return item, nil
}

func (r *AssessmentRepository) MarkAssigned(ctx context.Context, unassignedID string) error {
	query, args, err := qb.Update("unassigned_assessments").
		Set("assigned", true).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", unassignedID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark assessment assigned query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark assessment assigned: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark assessment assigned rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("unassigned assessment %s not found", unassignedID)
	}
	return nil
}
