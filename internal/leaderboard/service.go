package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/faithrecall/game-server/internal/db/repository"
	"github.com/faithrecall/game-server/internal/metrics"
	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

// PlayerStore is the persistence surface the service needs. Satisfied by
// repository.PlayerRepository.
type PlayerStore interface {
	Insert(ctx context.Context, name, region string, score int) (repository.Player, error)
	ListTop(ctx context.Context, limit int) ([]repository.Player, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// ChangeEvent is published on the Redis channel whenever the table changes.
type ChangeEvent struct {
	Kind string `json:"kind"` // insert | delete_all
	At   string `json:"at"`
}

// ServiceOptions configures leaderboard behavior.
type ServiceOptions struct {
	TopN          int
	PubSubChannel string
}

// Service fronts the players table and emits change notifications over
// Redis Pub/Sub so every connected leaderboard screen refreshes live.
type Service struct {
	store   PlayerStore
	redis   *redis.Client
	logger  zerolog.Logger
	topN    int
	channel string
}

// NewService constructs a leaderboard service instance.
func NewService(store PlayerStore, redisClient *redis.Client, logger zerolog.Logger, opts ServiceOptions) *Service {
	topN := opts.TopN
	if topN <= 0 {
		topN = 100
	}
	channel := opts.PubSubChannel
	if channel == "" {
		channel = "players:changes"
	}
	return &Service{
		store:   store,
		redis:   redisClient,
		logger:  logger.With().Str("component", "leaderboard").Logger(),
		topN:    topN,
		channel: channel,
	}
}

// Channel returns the Pub/Sub channel carrying change events.
func (s *Service) Channel() string { return s.channel }

// Save inserts one result row and notifies subscribers. Not retried: the
// caller's insert-once guard treats a failure as a soft error.
func (s *Service) Save(ctx context.Context, name, region string, score int) error {
	p, err := s.store.Insert(ctx, name, region, score)
	if err != nil {
		metrics.LeaderboardSaves.WithLabelValues("error").Inc()
		return fmt.Errorf("save result: %w", err)
	}
	metrics.LeaderboardSaves.WithLabelValues("ok").Inc()
	s.logger.Info().
		Str("player_id", p.ID.String()).
		Str("name", p.Name).
		Int("score", p.Score).
		Msg("result persisted")
	s.publish(ChangeEvent{Kind: "insert", At: time.Now().UTC().Format(time.RFC3339)})
	return nil
}

// Top retrieves the top N entries, ranked.
func (s *Service) Top(ctx context.Context, limit int) ([]ws.LeaderboardEntry, error) {
	if limit <= 0 || limit > s.topN {
		limit = s.topN
	}
	players, err := s.store.ListTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	entries := make([]ws.LeaderboardEntry, 0, len(players))
	for i, p := range players {
		entries = append(entries, ws.LeaderboardEntry{
			Rank:   i + 1,
			Name:   p.Name,
			Region: p.Region,
			Score:  p.Score,
		})
	}
	return entries, nil
}

// DeleteAll wipes the table (sentinel excluded) and notifies subscribers.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all results: %w", err)
	}
	s.logger.Warn().Int64("deleted", deleted).Msg("leaderboard wiped by admin")
	s.publish(ChangeEvent{Kind: "delete_all", At: time.Now().UTC().Format(time.RFC3339)})
	return deleted, nil
}

func (s *Service) publish(evt ChangeEvent) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to marshal change event")
		return
	}
	// Fire and forget: a lost notification only delays a screen refresh.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redis.Publish(ctx, s.channel, data).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to publish change event")
	}
}
