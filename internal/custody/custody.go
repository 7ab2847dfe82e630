// Package custody locks a player's pet token while they are in the game.
// The real deployment delegates this to the token service holding the
// NFT; the Redis implementation here records the lock so the rest of the
// system can enforce the same rules locally.
package custody

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Custody errors
var (
	// ErrAlreadyDeposited is returned when a player's token is already locked
	ErrAlreadyDeposited = errors.New("pet token already deposited")

	// ErrNotDeposited is returned when a player has no locked token
	ErrNotDeposited = errors.New("pet token not deposited")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_locker.go github.com/solapet/petduel/internal/custody Locker

// Locker controls custody of a player's pet token
type Locker interface {
	// Lock takes custody of the player's token for the duration of play
	Lock(ctx context.Context, input *LockInput) error

	// Unlock returns the token to the player
	Unlock(ctx context.Context, input *UnlockInput) error
}

// LockInput contains parameters for locking a token
type LockInput struct {
	PlayerID string
	TokenRef string
}

// UnlockInput contains parameters for unlocking a token
type UnlockInput struct {
	PlayerID string
}

const custodyKeyPrefix = "custody:"

// Config holds configuration for the Redis locker
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// RedisLocker implements Locker by recording locks in Redis
type RedisLocker struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed locker
func NewRedis(cfg *Config) (*RedisLocker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &RedisLocker{
		client: cfg.RedisClient,
	}, nil
}

// Lock records custody of the player's token. A second lock for the same
// player fails.
func (l *RedisLocker) Lock(ctx context.Context, input *LockInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	custodyKey := fmt.Sprintf("%s%s", custodyKeyPrefix, input.PlayerID)
	ok, err := l.client.SetNX(ctx, custodyKey, input.TokenRef, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to lock token: %w", err)
	}

	if !ok {
		return ErrAlreadyDeposited
	}

	return nil
}

// Unlock releases custody of the player's token.
func (l *RedisLocker) Unlock(ctx context.Context, input *UnlockInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	custodyKey := fmt.Sprintf("%s%s", custodyKeyPrefix, input.PlayerID)
	deleted, err := l.client.Del(ctx, custodyKey).Result()
	if err != nil {
		return fmt.Errorf("failed to unlock token: %w", err)
	}

	if deleted == 0 {
		return ErrNotDeposited
	}

	return nil
}
