package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const matchKeyPrefix = "match:"

type MatchRepository interface {
	Save(ctx context.Context, sessionID string, match *tictactoe.Match) error
	GetBySessionID(ctx context.Context, sessionID string) (*tictactoe.Match, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchRepository stores matches in redis. Every save refreshes the TTL,
// so a match lives only as long as its session keeps playing.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMatch) Save(ctx context.Context, sessionID string, match *tictactoe.Match) error {
	matchJSON, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	if err = that.client.Set(ctx, matchKeyPrefix+sessionID, matchJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetBySessionID(ctx context.Context, sessionID string) (*tictactoe.Match, error) {
	response, err := that.client.Get(ctx, matchKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match by session id: %w", err)
	}

	match := tictactoe.NewMatch()
	if err = json.Unmarshal([]byte(response), match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return match, nil
}

func (that *dbMatch) DeleteBySessionID(ctx context.Context, sessionID string) error {
	deleted, err := that.client.Del(ctx, matchKeyPrefix+sessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by session id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMatchNotFound
	}

	return nil
}
