package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/player"
	idgen "github.com/fieldside/clubsync/internal/platform/id"
)

// CaptureAssessmentInput is a raw combine sheet. Metric values use the
// capture-form names; scores left at zero are derived from the raw metrics.
type CaptureAssessmentInput struct {
	PlayerName string

	SprintTime   float64
	VerticalJump float64
	Endurance    float64
	Agility      float64
	Speed        float64
	Power        float64

	Notes string
}

type AssessmentService struct {
	assessmentRepo assessment.Repository
	playerRepo     player.Repository
	idGen          idgen.Generator
	logger         *slog.Logger
}

func NewAssessmentService(
	assessmentRepo assessment.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *slog.Logger,
) *AssessmentService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AssessmentService{
		assessmentRepo: assessmentRepo,
		playerRepo:     playerRepo,
		idGen:          idGen,
		logger:         logger,
	}
}

func (s *AssessmentService) ListByPlayer(ctx context.Context, playerID string) ([]assessment.PhysicalAssessment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssessmentService.ListByPlayer")
	defer span.End()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if _, ok, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	items, err := s.assessmentRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return items, nil
}

// CaptureUnassigned stores a staging assessment sheet for a later sync run.
func (s *AssessmentService) CaptureUnassigned(ctx context.Context, input CaptureAssessmentInput) (assessment.Unassigned, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssessmentService.CaptureUnassigned")
	defer span.End()

	input.PlayerName = strings.TrimSpace(input.PlayerName)
	if input.PlayerName == "" {
		return assessment.Unassigned{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	for _, metric := range []float64{
		input.SprintTime, input.VerticalJump, input.Endurance,
		input.Agility, input.Speed, input.Power,
	} {
		if metric < 0 {
			return assessment.Unassigned{}, fmt.Errorf("%w: metrics must not be negative", ErrInvalidInput)
		}
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return assessment.Unassigned{}, fmt.Errorf("generate assessment id: %w", err)
	}

	item := assessment.DeriveScores(assessment.Unassigned{
		ID:         id,
		PlayerName: input.PlayerName,

		SprintTime:   input.SprintTime,
		VerticalJump: input.VerticalJump,
		Endurance:    input.Endurance,
		Agility:      input.Agility,
		Speed:        input.Speed,
		Power:        input.Power,

		Notes: input.Notes,
	})

	created, err := s.assessmentRepo.CreateUnassigned(ctx, item)
	if err != nil {
		return assessment.Unassigned{}, fmt.Errorf("create unassigned assessment: %w", err)
	}

	s.logger.InfoContext(ctx, "captured unassigned assessment",
		"assessment_id", created.ID,
		"player_name", created.PlayerName,
	)
	return created, nil
}
