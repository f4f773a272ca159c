package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/domain/player"
	"github.com/fieldside/clubsync/internal/domain/team"
	"github.com/fieldside/clubsync/internal/domain/tryout"
	"github.com/fieldside/clubsync/internal/infrastructure/repository/memory"
	"github.com/fieldside/clubsync/internal/platform/logging"
	"github.com/fieldside/clubsync/internal/platform/matching"
)

func newTestSyncService(
	players []player.Player,
	teams []team.Team,
	evals *memory.EvaluationRepository,
	assessments *memory.AssessmentRepository,
	tryouts []tryout.Tryout,
) (*AutoSyncService, *memory.PlayerRepository, *memory.TryoutRepository) {
	playerRepo := memory.NewPlayerRepository(players)
	tryoutRepo := memory.NewTryoutRepository(tryouts)
	if evals == nil {
		evals = memory.NewEvaluationRepository(nil, nil)
	}
	if assessments == nil {
		assessments = memory.NewAssessmentRepository(nil, nil)
	}

	service := NewAutoSyncService(
		playerRepo,
		memory.NewTeamRepository(teams),
		evals,
		assessments,
		tryoutRepo,
		matching.NewHeuristic(),
		nil,
		AutoSyncOptions{},
		logging.NewNop(),
	)
	return service, playerRepo, tryoutRepo
}

func hasLogEntry(report SyncReport, kind SyncLogType, substr string) bool {
	for _, entry := range report.Log {
		if entry.Type == kind && (substr == "" || strings.Contains(strings.ToLower(entry.Message), strings.ToLower(substr))) {
			return true
		}
	}
	return false
}

func TestAutoSync_LinksPlayerToTeamByName(t *testing.T) {
	service, playerRepo, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith", TeamName: "U12 Blue"}},
		[]team.Team{{ID: "t1", Name: "U12 Blue"}},
		nil, nil, nil,
	)

	report := service.Run(t.Context())

	if report.State != SyncStateCompleted {
		t.Fatalf("expected completed run, got %s", report.State)
	}
	if report.Stats.PlayersMatched != 1 {
		t.Fatalf("expected 1 player matched, got %d", report.Stats.PlayersMatched)
	}
	if !hasLogEntry(report, SyncLogSuccess, "exact match") {
		t.Fatalf("expected a success log entry with exact confidence, log: %+v", report.Log)
	}

	got, ok, err := playerRepo.GetByID(t.Context(), "p1")
	if err != nil || !ok {
		t.Fatalf("player p1 missing after run: ok=%v err=%v", ok, err)
	}
	if got.TeamID != "t1" {
		t.Fatalf("expected p1 linked to t1, got %q", got.TeamID)
	}
}

func TestAutoSync_GenuineTeamIDNeverOverwritten(t *testing.T) {
	// p1 already belongs to t1; its team_name textually matches t2 and must
	// not win.
	service, playerRepo, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith", TeamID: "t1", TeamName: "U14 White"}},
		[]team.Team{{ID: "t1", Name: "U12 Blue"}, {ID: "t2", Name: "U14 White"}},
		nil, nil, nil,
	)

	report := service.Run(t.Context())

	if report.Stats.PlayersMatched != 0 {
		t.Fatalf("expected no player matches, got %d", report.Stats.PlayersMatched)
	}
	got, _, _ := playerRepo.GetByID(t.Context(), "p1")
	if got.TeamID != "t1" {
		t.Fatalf("expected team id t1 untouched, got %q", got.TeamID)
	}
}

func TestAutoSync_PromotesUnassignedEvaluation(t *testing.T) {
	evalRepo := memory.NewEvaluationRepository(nil, []evaluation.Unassigned{
		{ID: "u1", PlayerName: "alex smith", GrowthMindset: 7},
	})
	service, _, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith"}},
		nil, evalRepo, nil, nil,
	)

	report := service.Run(t.Context())

	if report.Stats.EvaluationsAssigned != 1 {
		t.Fatalf("expected 1 evaluation assigned, got %d", report.Stats.EvaluationsAssigned)
	}
	created, err := evalRepo.ListByPlayer(t.Context(), "p1")
	if err != nil || len(created) != 1 {
		t.Fatalf("expected one canonical evaluation for p1, got %d (err=%v)", len(created), err)
	}
	if created[0].GrowthMindset != 7 {
		t.Fatalf("expected growth mindset carried over, got %d", created[0].GrowthMindset)
	}
	if created[0].SourceID != "u1" {
		t.Fatalf("expected source id u1, got %q", created[0].SourceID)
	}

	still, err := evalRepo.ListUnassigned(t.Context())
	if err != nil {
		t.Fatalf("list unassigned: %v", err)
	}
	if len(still) != 0 {
		t.Fatalf("expected staging record flagged assigned, still pending: %+v", still)
	}
}

func TestAutoSync_LegacyEvaluationFieldsFallBack(t *testing.T) {
	evalRepo := memory.NewEvaluationRepository(nil, []evaluation.Unassigned{
		{ID: "u1", PlayerName: "Alex Smith", Strengths: "vision", AreasForImprovement: "left foot"},
	})
	service, _, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith"}},
		nil, evalRepo, nil, nil,
	)

	service.Run(t.Context())

	created, _ := evalRepo.ListByPlayer(t.Context(), "p1")
	if len(created) != 1 {
		t.Fatalf("expected one evaluation, got %d", len(created))
	}
	if created[0].PlayerStrengths != "vision" || created[0].AreasOfGrowth != "left foot" {
		t.Fatalf("expected legacy fields folded in, got %+v", created[0])
	}
}

func TestAutoSync_NoMatchIsWarningNotError(t *testing.T) {
	assessRepo := memory.NewAssessmentRepository(nil, []assessment.Unassigned{
		{ID: "a1", PlayerName: "Unknown Kid"},
	})
	service, _, _ := newTestSyncService(nil, nil, nil, assessRepo, nil)

	report := service.Run(t.Context())

	if report.Stats.AssessmentsAssigned != 0 {
		t.Fatalf("expected 0 assessments assigned, got %d", report.Stats.AssessmentsAssigned)
	}
	if report.Stats.Errors != 0 {
		t.Fatalf("expected 0 errors, got %d", report.Stats.Errors)
	}
	if !hasLogEntry(report, SyncLogWarning, "unknown kid") {
		t.Fatalf("expected a warning naming the record, log: %+v", report.Log)
	}

	still, _ := assessRepo.ListUnassigned(t.Context())
	if len(still) != 1 || still[0].Assigned {
		t.Fatalf("expected a1 untouched and unassigned, got %+v", still)
	}
}

func TestAutoSync_AssessmentFieldRemap(t *testing.T) {
	assessRepo := memory.NewAssessmentRepository(nil, []assessment.Unassigned{
		{
			ID: "a1", PlayerName: "alex", // partial against "Alex Smith"
			SprintTime: 4.8, VerticalJump: 42, Endurance: 900, Agility: 5.1,
			Speed: 73, Power: 70,
		},
	})
	service, _, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith", TeamID: "t1"}},
		[]team.Team{{ID: "t1", Name: "U12 Blue"}},
		nil, assessRepo, nil,
	)

	report := service.Run(t.Context())

	if report.Stats.AssessmentsAssigned != 1 {
		t.Fatalf("expected 1 assessment assigned, got %d", report.Stats.AssessmentsAssigned)
	}
	created, _ := assessRepo.ListByPlayer(t.Context(), "p1")
	if len(created) != 1 {
		t.Fatalf("expected one canonical assessment, got %d", len(created))
	}
	got := created[0]
	if got.Sprint != 4.8 || got.Vertical != 42 || got.Yirt != 900 || got.Shuttle != 5.1 {
		t.Fatalf("raw metric remap wrong: %+v", got)
	}
	if got.SpeedScore != 73 || got.PowerScore != 70 || got.EnduranceScore != 900 || got.AgilityScore != 5.1 {
		t.Fatalf("score remap wrong: %+v", got)
	}
	if got.PlayerName != "Alex Smith" {
		t.Fatalf("expected canonical player name, got %q", got.PlayerName)
	}
	if got.TeamID != "t1" {
		t.Fatalf("expected team id from matched player, got %q", got.TeamID)
	}
}

func TestAutoSync_LinksTryoutAndSkipsLinked(t *testing.T) {
	service, _, tryoutRepo := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith"}},
		nil, nil, nil,
		[]tryout.Tryout{
			{ID: "try-1", PlayerName: "Alex Smith"},
			{ID: "try-2", PlayerID: "p9", PlayerName: "Alex Smith"},
		},
	)

	service.Run(t.Context())

	entries, _ := tryoutRepo.List(t.Context())
	if entries[0].PlayerID != "p1" {
		t.Fatalf("expected try-1 linked to p1, got %q", entries[0].PlayerID)
	}
	if entries[1].PlayerID != "p9" {
		t.Fatalf("expected try-2 left on p9, got %q", entries[1].PlayerID)
	}
}

func TestAutoSync_TeamSweepSeesStageOneRepair(t *testing.T) {
	// p1's team link is repaired in the first stage; the final sweep must
	// rewrite the stale assessment using the repaired id, not the stale
	// snapshot.
	assessRepo := memory.NewAssessmentRepository([]assessment.PhysicalAssessment{
		{ID: "pa-1", PlayerID: "p1", TeamID: "t-old", PlayerName: "Alex Smith"},
	}, nil)
	service, _, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith", TeamName: "U12 Blue"}},
		[]team.Team{{ID: "t1", Name: "U12 Blue"}},
		nil, assessRepo, nil,
	)

	service.Run(t.Context())

	all, _ := assessRepo.List(t.Context())
	if len(all) != 1 || all[0].TeamID != "t1" {
		t.Fatalf("expected sweep to align assessment with repaired team, got %+v", all)
	}
}

func TestAutoSync_SecondRunDoesNotDoubleCount(t *testing.T) {
	evalRepo := memory.NewEvaluationRepository(nil, []evaluation.Unassigned{
		{ID: "u1", PlayerName: "Alex Smith"},
	})
	assessRepo := memory.NewAssessmentRepository(nil, []assessment.Unassigned{
		{ID: "a1", PlayerName: "Alex Smith"},
	})
	service, _, _ := newTestSyncService(
		[]player.Player{{ID: "p1", FullName: "Alex Smith"}},
		nil, evalRepo, assessRepo, nil,
	)

	first := service.Run(t.Context())
	if first.Stats.EvaluationsAssigned != 1 || first.Stats.AssessmentsAssigned != 1 {
		t.Fatalf("first run stats wrong: %+v", first.Stats)
	}

	second := service.Run(t.Context())
	if second.Stats.EvaluationsAssigned != 0 || second.Stats.AssessmentsAssigned != 0 {
		t.Fatalf("second run must not re-assign, got %+v", second.Stats)
	}

	canonical, _ := evalRepo.ListByPlayer(t.Context(), "p1")
	if len(canonical) != 1 {
		t.Fatalf("expected exactly one canonical evaluation, got %d", len(canonical))
	}
}

// flakyEvaluationRepo fails Create for one specific staging source.
type flakyEvaluationRepo struct {
	*memory.EvaluationRepository
	failSource string
}

func (r *flakyEvaluationRepo) Create(ctx context.Context, item evaluation.Evaluation) (evaluation.Evaluation, error) {
	if item.SourceID == r.failSource {
		return evaluation.Evaluation{}, errors.New("store unavailable")
	}
	return r.EvaluationRepository.Create(ctx, item)
}

func TestAutoSync_ErrorIsolation(t *testing.T) {
	inner := memory.NewEvaluationRepository(nil, []evaluation.Unassigned{
		{ID: "u1", PlayerName: "Alex Smith"},
		{ID: "u2", PlayerName: "Alex Smith"},
		{ID: "u3", PlayerName: "Alex Smith"},
	})
	evalRepo := &flakyEvaluationRepo{EvaluationRepository: inner, failSource: "u2"}

	playerRepo := memory.NewPlayerRepository([]player.Player{{ID: "p1", FullName: "Alex Smith"}})
	service := NewAutoSyncService(
		playerRepo,
		memory.NewTeamRepository(nil),
		evalRepo,
		memory.NewAssessmentRepository(nil, nil),
		memory.NewTryoutRepository(nil),
		matching.NewHeuristic(),
		nil,
		AutoSyncOptions{},
		logging.NewNop(),
	)

	report := service.Run(t.Context())

	if report.Stats.EvaluationsAssigned != 2 {
		t.Fatalf("expected 2 evaluations assigned around the failure, got %d", report.Stats.EvaluationsAssigned)
	}
	if report.Stats.Errors != 1 {
		t.Fatalf("expected exactly 1 error, got %d", report.Stats.Errors)
	}
	if report.State != SyncStateCompleted || report.Fatal {
		t.Fatalf("per-record failure must not fail the run: %+v", report)
	}

	still, _ := inner.ListUnassigned(t.Context())
	if len(still) != 1 || still[0].ID != "u2" {
		t.Fatalf("expected only u2 still pending, got %+v", still)
	}
}

// erroringTeamRepo fails every List call.
type erroringTeamRepo struct{}

func (erroringTeamRepo) List(context.Context) ([]team.Team, error) {
	return nil, errors.New("store unreachable")
}

func TestAutoSync_FetchFailureIsFatal(t *testing.T) {
	service := NewAutoSyncService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		erroringTeamRepo{},
		memory.NewEvaluationRepository(nil, memory.SeedUnassignedEvaluations()),
		memory.NewAssessmentRepository(nil, nil),
		memory.NewTryoutRepository(nil),
		matching.NewHeuristic(),
		nil,
		AutoSyncOptions{},
		logging.NewNop(),
	)

	report := service.Run(t.Context())

	if report.State != SyncStateFailed || !report.Fatal {
		t.Fatalf("expected fatal failed run, got %+v", report)
	}
	if report.Stats.Errors != 1 {
		t.Fatalf("expected exactly 1 error, got %d", report.Stats.Errors)
	}
	if report.Stats.EvaluationsAssigned != 0 || report.Stats.PlayersMatched != 0 {
		t.Fatalf("no stage may run after a fetch failure: %+v", report.Stats)
	}
	if report.Progress >= 100 {
		t.Fatalf("failed run must not report completion progress, got %d", report.Progress)
	}
}

func TestAutoSync_ProgressMonotonicReachesHundred(t *testing.T) {
	var mu sync.Mutex
	var seen []int

	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewAutoSyncService(
		playerRepo,
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewEvaluationRepository(nil, memory.SeedUnassignedEvaluations()),
		memory.NewAssessmentRepository(memory.SeedAssessments(), memory.SeedUnassignedAssessments()),
		memory.NewTryoutRepository(memory.SeedTryouts()),
		matching.NewHeuristic(),
		nil,
		AutoSyncOptions{OnProgress: func(pct int) {
			mu.Lock()
			seen = append(seen, pct)
			mu.Unlock()
		}},
		logging.NewNop(),
	)

	report := service.Run(t.Context())

	if report.Progress != 100 {
		t.Fatalf("expected final progress 100, got %d", report.Progress)
	}
	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("progress regressed: %v", seen)
		}
	}
	if len(seen) == 0 || seen[len(seen)-1] != 100 {
		t.Fatalf("expected progress callback to end at 100, got %v", seen)
	}
}

func TestAutoSync_StatusTracksRun(t *testing.T) {
	service, _, _ := newTestSyncService(nil, nil, nil, nil, nil)

	if got := service.Status(); got.State != SyncStateIdle {
		t.Fatalf("expected idle before first run, got %s", got.State)
	}

	service.Run(t.Context())

	got := service.Status()
	if got.State != SyncStateCompleted || got.Progress != 100 {
		t.Fatalf("expected completed status at 100%%, got %+v", got)
	}
	if got.FinishedAt.Before(got.StartedAt) {
		t.Fatalf("finished before started: %+v", got)
	}
}

func TestAutoSync_StartAsyncRejectsConcurrentRun(t *testing.T) {
	release := make(chan struct{})
	playerRepo := &blockingPlayerRepo{release: release}

	service := NewAutoSyncService(
		playerRepo,
		memory.NewTeamRepository(nil),
		memory.NewEvaluationRepository(nil, nil),
		memory.NewAssessmentRepository(nil, nil),
		memory.NewTryoutRepository(nil),
		matching.NewHeuristic(),
		nil,
		AutoSyncOptions{FetchWorkers: 1},
		logging.NewNop(),
	)

	if err := service.StartAsync(t.Context()); err != nil {
		t.Fatalf("first trigger should start: %v", err)
	}

	// Wait until the run is observably in flight.
	deadline := time.After(2 * time.Second)
	for service.Status().State != SyncStateRunning {
		select {
		case <-deadline:
			t.Fatal("run never reached running state")
		case <-time.After(time.Millisecond):
		}
	}

	if err := service.StartAsync(t.Context()); !errors.Is(err, ErrSyncAlreadyRunning) {
		t.Fatalf("expected ErrSyncAlreadyRunning, got %v", err)
	}

	close(release)
	deadline = time.After(2 * time.Second)
	for service.Status().State == SyncStateRunning {
		select {
		case <-deadline:
			t.Fatal("run never finished")
		case <-time.After(time.Millisecond):
		}
	}
}

type blockingPlayerRepo struct {
	release chan struct{}
}

func (r *blockingPlayerRepo) List(context.Context) ([]player.Player, error) {
	<-r.release
	return nil, nil
}

func (r *blockingPlayerRepo) GetByID(context.Context, string) (player.Player, bool, error) {
	return player.Player{}, false, nil
}

func (r *blockingPlayerRepo) UpdateTeamID(context.Context, string, string) error {
	return nil
}
