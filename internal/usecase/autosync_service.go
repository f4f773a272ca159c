package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/domain/player"
	"github.com/fieldside/clubsync/internal/domain/team"
	"github.com/fieldside/clubsync/internal/domain/tryout"
	"github.com/fieldside/clubsync/internal/platform/logging"
	"github.com/fieldside/clubsync/internal/platform/matching"
	"github.com/fieldside/clubsync/internal/platform/resilience"
)

// SyncNotifier receives the finished report exactly once per run, success or
// fetch failure alike. Delivery problems are logged, never propagated.
type SyncNotifier interface {
	NotifyRunCompleted(ctx context.Context, report SyncReport) error
}

type AutoSyncOptions struct {
	// FetchWorkers bounds the pool used for the initial parallel read of the
	// source collections. Values below 1 fall back to one worker per fetch.
	FetchWorkers int
	// OnProgress, when set, observes every progress change (0-100).
	OnProgress func(int)
}

// AutoSyncService is the reconciliation engine: it links orphaned staging
// records and free-hand team references to canonical players and teams.
// Stages run strictly in order; one record's failure never halts its stage.
type AutoSyncService struct {
	players     player.Repository
	teams       team.Repository
	evaluations evaluation.Repository
	assessments assessment.Repository
	tryouts     tryout.Repository
	matcher     matching.Strategy
	notifier    SyncNotifier
	opts        AutoSyncOptions
	logger      *logging.Logger
	now         func() time.Time

	flight resilience.SingleFlight

	mu   sync.Mutex
	last SyncReport
}

func NewAutoSyncService(
	players player.Repository,
	teams team.Repository,
	evaluations evaluation.Repository,
	assessments assessment.Repository,
	tryouts tryout.Repository,
	matcher matching.Strategy,
	notifier SyncNotifier,
	opts AutoSyncOptions,
	logger *logging.Logger,
) *AutoSyncService {
	if matcher == nil {
		matcher = matching.NewHeuristic()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &AutoSyncService{
		players:     players,
		teams:       teams,
		evaluations: evaluations,
		assessments: assessments,
		tryouts:     tryouts,
		matcher:     matcher,
		notifier:    notifier,
		opts:        opts,
		logger:      logger,
		now:         time.Now,
		last:        SyncReport{State: SyncStateIdle, Log: []SyncLogEntry{}},
	}
}

// Status returns a copy of the most recent (possibly in-flight) run report.
func (s *AutoSyncService) Status() SyncReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.last
	out.Log = make([]SyncLogEntry, len(s.last.Log))
	copy(out.Log, s.last.Log)
	return out
}

// Run executes the full pipeline and returns its report. Concurrent callers
// share the in-flight run instead of starting a second one; re-invoking Run
// after completion is the engine's only retry mechanism and is idempotent.
func (s *AutoSyncService) Run(ctx context.Context) SyncReport {
	val, _, shared := s.flight.Do("autosync", func() (any, error) {
		return s.run(ctx), nil
	})
	report, ok := val.(SyncReport)
	if !ok {
		return SyncReport{State: SyncStateFailed, Fatal: true}
	}
	if shared {
		s.logger.InfoContext(ctx, "auto-sync trigger joined in-flight run")
	}
	return report
}

// StartAsync launches a run in the background for fire-and-forget callers.
// Returns ErrSyncAlreadyRunning when a run is in flight; callers poll
// Status() for the outcome. The run outlives the trigger request's context.
func (s *AutoSyncService) StartAsync(ctx context.Context) error {
	s.mu.Lock()
	running := s.last.State == SyncStateRunning
	s.mu.Unlock()
	if running {
		return fmt.Errorf("%w: auto-sync", ErrSyncAlreadyRunning)
	}

	go s.Run(context.WithoutCancel(ctx))
	return nil
}

// syncSnapshot holds the collections fetched once up front. Stage 1 threads
// its team-id repairs back into Players so later stages see the fixed roster.
type syncSnapshot struct {
	Players     []player.Player
	Teams       []team.Team
	Assessments []assessment.PhysicalAssessment
	Evaluations []evaluation.Evaluation
	Unevals     []evaluation.Unassigned
	Unassess    []assessment.Unassigned
	Tryouts     []tryout.Tryout
}

func (s *AutoSyncService) run(ctx context.Context) SyncReport {
	ctx, span := startUsecaseSpan(ctx, "usecase.AutoSyncService.Run")
	defer span.End()

	tracker := newRunTracker(s.now, s.opts.OnProgress)
	s.publishStatus(tracker.snapshot())

	tracker.log(SyncLogInfo, "auto-sync started")

	snap, err := s.fetchAll(ctx)
	if err != nil {
		tracker.log(SyncLogError, fmt.Sprintf("failed to load club data: %v", err))
		tracker.addError()
		report := tracker.finish(SyncStateFailed, true)
		s.publishStatus(report)
		s.notifyCompleted(ctx, report)
		s.logger.ErrorContext(ctx, "auto-sync aborted at fetch", "error", err)
		return report
	}
	tracker.setProgress(syncWeightFetch)
	tracker.log(SyncLogInfo, fmt.Sprintf(
		"loaded %d players, %d teams, %d pending evaluations, %d pending assessments, %d tryouts",
		len(snap.Players), len(snap.Teams), len(snap.Unevals), len(snap.Unassess), len(snap.Tryouts),
	))
	s.publishStatus(tracker.snapshot())

	base := syncWeightFetch
	s.linkPlayersToTeams(ctx, snap, tracker, base)
	base += syncWeightStage
	s.publishStatus(tracker.snapshot())

	s.promoteUnassignedEvaluations(ctx, snap, tracker, base)
	base += syncWeightStage
	s.publishStatus(tracker.snapshot())

	s.promoteUnassignedAssessments(ctx, snap, tracker, base)
	base += syncWeightStage
	s.publishStatus(tracker.snapshot())

	s.linkTryoutsToPlayers(ctx, snap, tracker, base)
	base += syncWeightStage
	s.publishStatus(tracker.snapshot())

	s.reconcileAssessmentTeams(ctx, snap, tracker, base)

	tracker.setProgress(100)
	stats := tracker.snapshot().Stats
	tracker.log(SyncLogSuccess, fmt.Sprintf(
		"auto-sync complete: %d players matched, %d evaluations assigned, %d assessments assigned, %d errors",
		stats.PlayersMatched, stats.EvaluationsAssigned, stats.AssessmentsAssigned, stats.Errors,
	))

	report := tracker.finish(SyncStateCompleted, false)
	s.publishStatus(report)
	s.notifyCompleted(ctx, report)
	s.logger.InfoContext(ctx, "auto-sync finished",
		"players_matched", stats.PlayersMatched,
		"evaluations_assigned", stats.EvaluationsAssigned,
		"assessments_assigned", stats.AssessmentsAssigned,
		"errors", stats.Errors,
	)
	return report
}

func (s *AutoSyncService) publishStatus(report SyncReport) {
	s.mu.Lock()
	s.last = report
	s.mu.Unlock()
}

func (s *AutoSyncService) notifyCompleted(ctx context.Context, report SyncReport) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyRunCompleted(ctx, report); err != nil {
		s.logger.WarnContext(ctx, "sync completion notification failed", "error", err)
	}
}

// fetchAll reads the seven source collections as one awaited group. A nil
// repository degrades to an empty collection; any fetch error is fatal to the
// run before stages begin.
func (s *AutoSyncService) fetchAll(ctx context.Context) (*syncSnapshot, error) {
	snap := &syncSnapshot{}

	fetches := []func() error{
		func() (err error) {
			if s.players == nil {
				return nil
			}
			snap.Players, err = s.players.List(ctx)
			return err
		},
		func() (err error) {
			if s.teams == nil {
				return nil
			}
			snap.Teams, err = s.teams.List(ctx)
			return err
		},
		func() (err error) {
			if s.assessments == nil {
				return nil
			}
			snap.Assessments, err = s.assessments.List(ctx)
			return err
		},
		func() (err error) {
			if s.evaluations == nil {
				return nil
			}
			snap.Unevals, err = s.evaluations.ListUnassigned(ctx)
			return err
		},
		func() (err error) {
			if s.assessments == nil {
				return nil
			}
			snap.Unassess, err = s.assessments.ListUnassigned(ctx)
			return err
		},
		func() (err error) {
			if s.tryouts == nil {
				return nil
			}
			snap.Tryouts, err = s.tryouts.List(ctx)
			return err
		},
		func() (err error) {
			if s.evaluations == nil {
				return nil
			}
			snap.Evaluations, err = s.evaluations.List(ctx)
			return err
		},
	}

	workers := s.opts.FetchWorkers
	if workers < 1 {
		workers = len(fetches)
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	errs := make([]error, len(fetches))
	for i, fetch := range fetches {
		i, fetch := i, fetch
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			errs[i] = fetch()
		}); submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("submit fetch to pool: %w", submitErr)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return snap, nil
}
