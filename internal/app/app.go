package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/faithrecall/game-server/internal/auth"
	"github.com/faithrecall/game-server/internal/config"
	"github.com/faithrecall/game-server/internal/content"
	"github.com/faithrecall/game-server/internal/db/repository"
	"github.com/faithrecall/game-server/internal/flow"
	"github.com/faithrecall/game-server/internal/leaderboard"
	"github.com/faithrecall/game-server/internal/logging"
	"github.com/faithrecall/game-server/internal/server"
	"github.com/faithrecall/game-server/internal/session"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	lbBroadcaster *leaderboard.Broadcaster
	bgCancels     []context.CancelFunc
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	if err := content.ValidateTables(); err != nil {
		return nil, fmt.Errorf("validate game content: %w", err)
	}

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	playerRepo := repository.NewPlayerRepository(pool)
	lbSvc := leaderboard.NewService(playerRepo, redisClient, logger, leaderboard.ServiceOptions{
		TopN:          cfg.Leaderboard.TopN,
		PubSubChannel: cfg.Leaderboard.PubSubChannel,
	})

	wsHub := ws.NewHub(logger)
	sessions := session.NewManager(logger)

	flowHandler := flow.NewHandler(cfg.Game, sessions, wsHub, lbSvc, logger)
	lbBroadcaster := leaderboard.NewBroadcaster(redisClient, wsHub, lbSvc, logger)
	lbHTTPHandler := leaderboard.NewHTTPHandler(lbSvc, logger)

	adminSvc := auth.NewAdminService(cfg.Admin.PasscodeHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL, logger)
	adminHandlers := auth.NewHandlers(adminSvc, logger)
	requireAdmin := auth.RequireAdmin(adminSvc, logger)

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, server.Routes{
		GameWS:            flowHandler.HandleWebSocket,
		LeaderboardGet:    lbHTTPHandler.HandleGet,
		LeaderboardDelete: requireAdmin(http.HandlerFunc(lbHTTPHandler.HandleDelete)),
		AdminLogin:        adminHandlers.HandleLogin,
	})

	return &Application{
		cfg:           cfg,
		logger:        logger,
		pool:          pool,
		redis:         redisClient,
		http:          apiServer,
		lbBroadcaster: lbBroadcaster,
		bgCancels:     make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.lbBroadcaster != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.lbBroadcaster.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("leaderboard broadcaster stopped")
			}
		}()
	}
}
