package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fieldside/clubsync/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestEvaluationService_CaptureUnassigned(t *testing.T) {
	evalRepo := memory.NewEvaluationRepository(nil, nil)
	service := NewEvaluationService(
		evalRepo,
		memory.NewPlayerRepository(nil),
		staticIDGenerator{id: "uev-001"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	captureNow := time.Date(2026, 5, 3, 9, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return captureNow }

	created, err := service.CaptureUnassigned(t.Context(), CaptureEvaluationInput{
		PlayerName:    "  Jordan Lee ",
		EvaluatorName: "Pat Okafor",
		GrowthMindset: 4,
		Teamwork:      5,
	})
	if err != nil {
		t.Fatalf("capture unassigned: %v", err)
	}

	if created.ID != "uev-001" {
		t.Fatalf("expected id uev-001, got %s", created.ID)
	}
	if created.PlayerName != "Jordan Lee" {
		t.Fatalf("expected trimmed player name, got %q", created.PlayerName)
	}
	if !created.EvaluationDate.Equal(captureNow) {
		t.Fatalf("expected capture time defaulted to now, got %v", created.EvaluationDate)
	}
	if created.Assigned {
		t.Fatal("captured record must start unassigned")
	}

	pending, err := evalRepo.ListUnassigned(t.Context())
	if err != nil || len(pending) != 1 {
		t.Fatalf("expected 1 pending record, got %d (err=%v)", len(pending), err)
	}
}

func TestEvaluationService_CaptureUnassignedRejectsBadInput(t *testing.T) {
	service := NewEvaluationService(
		memory.NewEvaluationRepository(nil, nil),
		memory.NewPlayerRepository(nil),
		staticIDGenerator{id: "uev-001"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	if _, err := service.CaptureUnassigned(t.Context(), CaptureEvaluationInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}

	_, err := service.CaptureUnassigned(t.Context(), CaptureEvaluationInput{
		PlayerName:    "Jordan Lee",
		GrowthMindset: 11,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for out-of-range rating, got %v", err)
	}
}

func TestEvaluationService_ListByPlayerRequiresKnownPlayer(t *testing.T) {
	service := NewEvaluationService(
		memory.NewEvaluationRepository(nil, nil),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		staticIDGenerator{id: "uev-001"},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	if _, err := service.ListByPlayer(t.Context(), "pl-999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.ListByPlayer(t.Context(), "pl-001"); err != nil {
		t.Fatalf("list for known player: %v", err)
	}
}
