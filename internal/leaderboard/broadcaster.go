package leaderboard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/faithrecall/game-server/pkg/http/ws"
)

// Broadcaster listens for Redis Pub/Sub change events, refetches the top of
// the table, and pushes the fresh standings to every connected client.
type Broadcaster struct {
	redis   *redis.Client
	hub     *ws.Hub
	service *Service
	channel string
	logger  zerolog.Logger
}

// NewBroadcaster creates a Pub/Sub powered leaderboard broadcaster.
func NewBroadcaster(redisClient *redis.Client, hub *ws.Hub, service *Service, logger zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		redis:   redisClient,
		hub:     hub,
		service: service,
		channel: service.Channel(),
		logger:  logger.With().Str("component", "leaderboard_broadcaster").Logger(),
	}
}

// Run subscribes to the change channel and blocks until the context is
// cancelled.
func (b *Broadcaster) Run(ctx context.Context) error {
	if b.redis == nil || b.hub == nil {
		return nil
	}

	sub := b.redis.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.logger.Debug().Str("payload", msg.Payload).Msg("change event received")
			b.refresh(ctx)
		}
	}
}

func (b *Broadcaster) refresh(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	top, err := b.service.Top(fetchCtx, 0)
	if err != nil {
		b.logger.Warn().Err(err).Msg("failed to refetch leaderboard")
		return
	}

	msg := ws.Must(ws.TypeLeaderboardUpdate, ws.LeaderboardUpdatePayload{Top: top})
	if err := b.hub.BroadcastAll(msg); err != nil {
		b.logger.Warn().Err(err).Msg("failed to broadcast leaderboard update")
	}
}
