package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/fieldside/clubsync/external/webhook"
	"github.com/fieldside/clubsync/internal/config"
	"github.com/fieldside/clubsync/internal/domain/assessment"
	"github.com/fieldside/clubsync/internal/domain/coach"
	"github.com/fieldside/clubsync/internal/domain/evaluation"
	"github.com/fieldside/clubsync/internal/domain/player"
	"github.com/fieldside/clubsync/internal/domain/team"
	"github.com/fieldside/clubsync/internal/domain/tryout"
	"github.com/fieldside/clubsync/internal/infrastructure/repository/memory"
	"github.com/fieldside/clubsync/internal/infrastructure/repository/postgres"
	"github.com/fieldside/clubsync/internal/interfaces/httpapi"
	idgen "github.com/fieldside/clubsync/internal/platform/id"
	"github.com/fieldside/clubsync/internal/platform/logging"
	"github.com/fieldside/clubsync/internal/platform/resilience"
	"github.com/fieldside/clubsync/internal/usecase"
)

type repositories struct {
	teams       team.Repository
	players     player.Repository
	coaches     coach.Repository
	evaluations evaluation.Repository
	assessments assessment.Repository
	tryouts     tryout.Repository
}

// App bundles everything main needs to run and tear down the service.
type App struct {
	Server    *http.Server
	Scheduler *usecase.SyncScheduler
	Engine    *usecase.AutoSyncService

	db *sqlx.DB
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, db, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	idGen := idgen.NewRandomGenerator()
	engineLogger := logging.Default()

	var notifier usecase.SyncNotifier
	if cfg.SyncWebhookEnabled {
		notifier = webhook.NewNotifier(webhook.NotifierConfig{
			URL:     cfg.SyncWebhookURL,
			Secret:  cfg.SyncWebhookSecret,
			Timeout: cfg.SyncWebhookTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.SyncCircuitEnabled,
				FailureThreshold: cfg.SyncCircuitFailureCount,
				OpenTimeout:      cfg.SyncCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.SyncCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	engine := usecase.NewAutoSyncService(
		repos.players,
		repos.teams,
		repos.evaluations,
		repos.assessments,
		repos.tryouts,
		nil,
		notifier,
		usecase.AutoSyncOptions{FetchWorkers: cfg.SyncFetchWorkers},
		engineLogger,
	)

	rosterSvc := usecase.NewRosterService(repos.teams, repos.players, repos.coaches, repos.tryouts)
	evaluationSvc := usecase.NewEvaluationService(repos.evaluations, repos.players, idGen, logger)
	assessmentSvc := usecase.NewAssessmentService(repos.assessments, repos.players, idGen, logger)

	handler := httpapi.NewHandler(rosterSvc, evaluationSvc, assessmentSvc, engine, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:    server,
		Scheduler: usecase.NewSyncScheduler(engine, cfg.SyncInterval, engineLogger),
		Engine:    engine,
		db:        db,
	}, nil
}

// Close releases resources held outside the HTTP server.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// buildRepositories picks the storage backend: postgres when DB_URL is set,
// seeded in-memory stores otherwise.
func buildRepositories(cfg config.Config) (repositories, *sqlx.DB, error) {
	if cfg.DBURL == "" {
		return repositories{
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			coaches:     memory.NewCoachRepository(memory.SeedCoaches()),
			evaluations: memory.NewEvaluationRepository(nil, memory.SeedUnassignedEvaluations()),
			assessments: memory.NewAssessmentRepository(memory.SeedAssessments(), memory.SeedUnassignedAssessments()),
			tryouts:     memory.NewTryoutRepository(memory.SeedTryouts()),
		}, nil, nil
	}

	db, err := openDatabase(dbConfig{
		URL:                   cfg.DBURL,
		DisablePreparedBinary: cfg.DBDisablePreparedBinary,
	})
	if err != nil {
		return repositories{}, nil, err
	}

	idGen := idgen.NewRandomGenerator()

	return repositories{
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		coaches:     postgres.NewCoachRepository(db),
		evaluations: postgres.NewEvaluationRepository(db, idGen),
		assessments: postgres.NewAssessmentRepository(db, idGen),
		tryouts:     postgres.NewTryoutRepository(db),
	}, db, nil
}
