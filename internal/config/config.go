package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"faith-recall"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres    Postgres
	Redis       Redis
	Admin       Admin
	Game        Game
	Leaderboard Leaderboard
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Redis holds pub/sub configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Admin secures the leaderboard delete-all endpoint.
type Admin struct {
	// PasscodeHash is a bcrypt hash of the event admin passcode.
	PasscodeHash string        `env:"ADMIN_PASSCODE_HASH,notEmpty"`
	JWTSecret    string        `env:"ADMIN_JWT_SECRET,notEmpty"`
	TokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"30m"`
}

// Game groups gameplay constants. Defaults follow the live event settings;
// the quiz floor and mismatch penalty varied across revisions of the original
// game and are deliberately tunable.
type Game struct {
	MatchRoundSeconds    int           `env:"GAME_MATCH_ROUND_SECONDS" envDefault:"60"`
	MatchRevealSeconds   int           `env:"GAME_MATCH_REVEAL_SECONDS" envDefault:"3"`
	MatchMismatchPenalty int           `env:"GAME_MATCH_MISMATCH_PENALTY" envDefault:"150"`
	QuizQuestionCount    int           `env:"GAME_QUIZ_QUESTION_COUNT" envDefault:"10"`
	QuizQuestionSeconds  int           `env:"GAME_QUIZ_QUESTION_SECONDS" envDefault:"15"`
	QuizGlobalSeconds    int           `env:"GAME_QUIZ_GLOBAL_SECONDS" envDefault:"90"`
	QuizScoreFloor       int           `env:"GAME_QUIZ_SCORE_FLOOR" envDefault:"200"`
	CodeDisplaySeconds   int           `env:"GAME_CODE_DISPLAY_SECONDS" envDefault:"5"`
	VerifyDebounce       time.Duration `env:"GAME_VERIFY_DEBOUNCE" envDefault:"150ms"`
}

// Leaderboard governs fetch and broadcast behavior.
type Leaderboard struct {
	TopN          int    `env:"LEADERBOARD_TOP_N" envDefault:"100"`
	PubSubChannel string `env:"LEADERBOARD_CHANNEL" envDefault:"players:changes"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
