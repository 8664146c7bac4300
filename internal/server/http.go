package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/faithrecall/game-server/internal/config"
	"github.com/faithrecall/game-server/internal/logging"
)

// WSUpgrader handles WebSocket upgrades. The game runs on a kiosk on the
// venue network, so any origin is accepted.
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Routes carries the handlers mounted on the API server. Any nil handler
// leaves its route unmounted.
type Routes struct {
	GameWS            http.HandlerFunc
	LeaderboardGet    http.HandlerFunc
	LeaderboardDelete http.Handler
	AdminLogin        http.HandlerFunc
}

// NewHTTPServer wires base routes (health, metrics) plus the game endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, routes Routes) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	if routes.GameWS != nil {
		mux.HandleFunc("/ws/game", routes.GameWS)
	}

	if routes.LeaderboardGet != nil {
		mux.HandleFunc("GET /v1/leaderboard", routes.LeaderboardGet)
	}
	if routes.LeaderboardDelete != nil {
		mux.Handle("DELETE /v1/leaderboard", routes.LeaderboardDelete)
	}
	if routes.AdminLogin != nil {
		mux.HandleFunc("POST /v1/admin/login", routes.AdminLogin)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestLogger(logger, mux),
	}
}

// requestLogger stores a request-scoped logger in the context so handlers
// can annotate their log lines with the request that triggered them.
func requestLogger(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Logger()
		next.ServeHTTP(w, r.WithContext(logging.IntoContext(r.Context(), reqLogger)))
	})
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}
	return nil
}
