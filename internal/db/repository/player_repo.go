package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Player is one persisted leaderboard row. Rows are insert-only; the only
// mutation the service performs is the admin bulk delete.
type Player struct {
	ID        uuid.UUID
	Name      string
	Region    string
	Score     int
	CreatedAt time.Time
}

// sentinelID is never deleted; DeleteAll excludes it so the bulk delete can
// use a guarded predicate instead of an unconditional DELETE.
var sentinelID = uuid.Nil

// PlayerRepository contains DB helpers for the players table.
type PlayerRepository struct {
	pool *pgxpool.Pool
}

// NewPlayerRepository constructs a player repository over a pgx pool.
func NewPlayerRepository(pool *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{pool: pool}
}

// Insert persists one final result row.
func (r *PlayerRepository) Insert(ctx context.Context, name, region string, score int) (Player, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO players (name, region, score)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, region, score, created_at`,
		name, region, score)

	var p Player
	if err := row.Scan(&p.ID, &p.Name, &p.Region, &p.Score, &p.CreatedAt); err != nil {
		return Player{}, fmt.Errorf("insert player: %w", err)
	}
	return p, nil
}

// ListTop returns up to limit rows ordered by score descending; among equal
// scores the earlier entry ranks higher.
func (r *PlayerRepository) ListTop(ctx context.Context, limit int) ([]Player, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, region, score, created_at
		 FROM players
		 ORDER BY score DESC, created_at ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Player, error) {
		var p Player
		err := row.Scan(&p.ID, &p.Name, &p.Region, &p.Score, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan players: %w", err)
	}
	return players, nil
}

// DeleteAll removes every row except the sentinel and reports how many went.
func (r *PlayerRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM players WHERE id <> $1`, sentinelID)
	if err != nil {
		return 0, fmt.Errorf("delete players: %w", err)
	}
	return tag.RowsAffected(), nil
}
