package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/domain/player"
	idgen "github.com/fieldside/clubsync/internal/platform/id"
)

// CaptureEvaluationInput is an incoming field-side evaluation. Only the
// player's free-text name is known at capture time; linkage to a rostered
// player happens later in the auto-sync run.
type CaptureEvaluationInput struct {
	PlayerName     string
	EvaluationDate time.Time
	EvaluatorName  string

	GrowthMindset int
	Coachability  int
	Effort        int
	Technique     int
	GameAwareness int
	Teamwork      int

	PlayerStrengths string
	AreasOfGrowth   string
	TrainingFocus   string
}

type EvaluationService struct {
	evaluationRepo evaluation.Repository
	playerRepo     player.Repository
	idGen          idgen.Generator
	logger         *slog.Logger
	now            func() time.Time
}

func NewEvaluationService(
	evaluationRepo evaluation.Repository,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *slog.Logger,
) *EvaluationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		playerRepo:     playerRepo,
		idGen:          idGen,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *EvaluationService) ListByPlayer(ctx context.Context, playerID string) ([]evaluation.Evaluation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EvaluationService.ListByPlayer")
	defer span.End()

	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if _, ok, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	} else if !ok {
		return nil, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	items, err := s.evaluationRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	return items, nil
}

// CaptureUnassigned stores a staging evaluation for a later sync run to link.
func (s *EvaluationService) CaptureUnassigned(ctx context.Context, input CaptureEvaluationInput) (evaluation.Unassigned, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EvaluationService.CaptureUnassigned")
	defer span.End()

	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.EvaluatorName = strings.TrimSpace(input.EvaluatorName)

	if input.PlayerName == "" {
		return evaluation.Unassigned{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	for _, rating := range []int{
		input.GrowthMindset, input.Coachability, input.Effort,
		input.Technique, input.GameAwareness, input.Teamwork,
	} {
		if rating < 0 || rating > 10 {
			return evaluation.Unassigned{}, fmt.Errorf("%w: ratings must be between 0 and 10", ErrInvalidInput)
		}
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return evaluation.Unassigned{}, fmt.Errorf("generate evaluation id: %w", err)
	}

	when := input.EvaluationDate
	if when.IsZero() {
		when = s.now()
	}

	item := evaluation.Unassigned{
		ID:             id,
		PlayerName:     input.PlayerName,
		EvaluationDate: when,
		EvaluatorName:  input.EvaluatorName,

		GrowthMindset: input.GrowthMindset,
		Coachability:  input.Coachability,
		Effort:        input.Effort,
		Technique:     input.Technique,
		GameAwareness: input.GameAwareness,
		Teamwork:      input.Teamwork,

		PlayerStrengths: input.PlayerStrengths,
		AreasOfGrowth:   input.AreasOfGrowth,
		TrainingFocus:   input.TrainingFocus,
	}

	created, err := s.evaluationRepo.CreateUnassigned(ctx, item)
	if err != nil {
		return evaluation.Unassigned{}, fmt.Errorf("create unassigned evaluation: %w", err)
	}

	s.logger.InfoContext(ctx, "captured unassigned evaluation",
		"evaluation_id", created.ID,
		"player_name", created.PlayerName,
	)
	return created, nil
}
