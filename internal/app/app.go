package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/garretthaima/escalation-league/internal/config"
	"github.com/garretthaima/escalation-league/internal/domain/event"
	"github.com/garretthaima/escalation-league/internal/infrastructure/eventbus"
	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/cache"
	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/memory"
	"github.com/garretthaima/escalation-league/internal/infrastructure/repository/postgres"
	"github.com/garretthaima/escalation-league/internal/interfaces/httpapi"
	"github.com/garretthaima/escalation-league/internal/observability"
	idgen "github.com/garretthaima/escalation-league/internal/platform/id"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/platform/random"
	"github.com/garretthaima/escalation-league/internal/platform/resilience"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

// NewHTTPServer wires every dependency behind the HTTP router. The returned
// cleanup drains the event dispatcher and closes the database, and must run
// after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, closeStore)

	metrics := observability.NewMetrics()

	dispatcher, err := eventbus.New(eventbus.Options{
		Workers:   cfg.EventWorkers,
		QueueSize: cfg.EventQueueSize,
	}, logger)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create event dispatcher: %w", err)
	}
	dispatcher.SubscribeAll("log", eventbus.LogSubscriber(logger))
	dispatcher.SubscribeAll("metrics", eventbus.MetricsSubscriber(metrics))
	cleanups = append(cleanups, dispatcher.Close)

	ids := idgen.NewUUIDGenerator()
	src := random.NewCrypto()
	ledger := usecase.NewStatsLedger(metrics, logger)
	repos := st.Repositories()

	leagues := cache.NewLeagueRepository(repos.Leagues, cfg.LeagueCacheTTL)
	dispatcher.Subscribe(event.TournamentPhaseChanged, "league-cache", leagues.Invalidate)

	handler := httpapi.NewHandler(
		usecase.NewPodService(st, ledger, ids, dispatcher, logger),
		usecase.NewTournamentService(st, ids, src, dispatcher, cfg.TournamentResetToken, logger),
		usecase.NewMatchupService(st, src, logger),
		usecase.NewLeagueService(leagues, repos.Standings),
		logger,
	)

	opts := httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Observer:           metrics,
	}
	if cfg.MetricsEnabled {
		opts.MetricsHandler = metrics.Handler()
	}

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.UnitOfWork, func(), error) {
	if cfg.StoreBackend != config.StorePostgres {
		logger.Info("using in-memory store", "seeded_league", memory.LeagueIDDemo)
		return memory.NewSeededStore(), func() {}, nil
	}

	db, err := openPostgres(ctx, cfg.DBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		return nil, nil, err
	}

	if cfg.DBSeedEnabled {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	logger.Info("using postgres store", "db_name", dbNameFromURL(cfg.DBURL), "seed", cfg.DBSeedEnabled)
	breaker := resilience.BreakerConfig{
		FailureThreshold: cfg.DBBreakerThreshold,
		OpenTimeout:      cfg.DBBreakerOpenTimeout,
	}
	return postgres.NewStore(db, breaker), func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database failed", "error", err)
		}
	}, nil
}
