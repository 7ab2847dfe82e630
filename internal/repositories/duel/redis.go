package duel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/solapet/petduel/internal/models"
)

const (
	// Key prefixes for Redis
	duelKeyPrefix       = "duel:"
	challengerKeyPrefix = "challenger:"
	openDuelsKey        = "open_duels"
)

// ErrDuelNotFound is returned when a duel is not found
var ErrDuelNotFound = errors.New("duel not found")

// Config holds configuration for the Redis duel repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed duel repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveDuel persists a duel to Redis
func (r *redisRepository) SaveDuel(ctx context.Context, input *SaveDuelInput) error {
	if input == nil || input.Duel == nil {
		return errors.New("input and duel cannot be nil")
	}

	if input.Duel.ID == "" {
		return errors.New("duel ID cannot be empty")
	}

	// Marshal the duel to JSON
	duelJSON, err := json.Marshal(input.Duel)
	if err != nil {
		return fmt.Errorf("failed to marshal duel: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the duel
	duelKey := fmt.Sprintf("%s%s", duelKeyPrefix, input.Duel.ID)
	pipe.Set(ctx, duelKey, duelJSON, 0)

	// A challenger has at most one open duel; index it until it finishes
	challengerKey := fmt.Sprintf("%s%s", challengerKeyPrefix, input.Duel.ChallengerID)
	if input.Duel.Status == models.DuelStatusFinished {
		pipe.Del(ctx, challengerKey)
		pipe.SRem(ctx, openDuelsKey, input.Duel.ID)
	} else {
		pipe.Set(ctx, challengerKey, input.Duel.ID, 0)
		pipe.SAdd(ctx, openDuelsKey, input.Duel.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save duel: %w", err)
	}

	return nil
}

// GetDuel retrieves a duel by ID from Redis
func (r *redisRepository) GetDuel(ctx context.Context, input *GetDuelInput) (*models.Duel, error) {
	if input == nil || input.DuelID == "" {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	// Get the duel from Redis
	duelKey := fmt.Sprintf("%s%s", duelKeyPrefix, input.DuelID)
	duelJSON, err := r.client.Get(ctx, duelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to get duel: %w", err)
	}

	// Unmarshal the duel from JSON
	var duel models.Duel
	if err := json.Unmarshal([]byte(duelJSON), &duel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duel: %w", err)
	}

	return &duel, nil
}

// GetDuelByChallenger retrieves a challenger's open duel from Redis
func (r *redisRepository) GetDuelByChallenger(ctx context.Context, input *GetDuelByChallengerInput) (*models.Duel, error) {
	if input == nil || input.ChallengerID == "" {
		return nil, errors.New("input and challenger ID cannot be empty")
	}

	// Get the duel ID from the challenger index
	challengerKey := fmt.Sprintf("%s%s", challengerKeyPrefix, input.ChallengerID)
	duelID, err := r.client.Get(ctx, challengerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to get duel ID for challenger: %w", err)
	}

	// Get the duel using the duel ID
	return r.GetDuel(ctx, &GetDuelInput{
		DuelID: duelID,
	})
}

// DeleteDuel removes a duel from Redis
func (r *redisRepository) DeleteDuel(ctx context.Context, input *DeleteDuelInput) error {
	if input == nil || input.DuelID == "" {
		return errors.New("input and duel ID cannot be empty")
	}

	// Get the duel first to clear its indexes
	duel, err := r.GetDuel(ctx, &GetDuelInput{
		DuelID: input.DuelID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Delete the duel
	duelKey := fmt.Sprintf("%s%s", duelKeyPrefix, input.DuelID)
	pipe.Del(ctx, duelKey)

	// Clear the challenger index
	challengerKey := fmt.Sprintf("%s%s", challengerKeyPrefix, duel.ChallengerID)
	pipe.Del(ctx, challengerKey)

	// Remove the duel from the open duels set
	pipe.SRem(ctx, openDuelsKey, input.DuelID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete duel: %w", err)
	}

	return nil
}

// GetOpenDuels retrieves all open duels from Redis
func (r *redisRepository) GetOpenDuels(ctx context.Context, input *GetOpenDuelsInput) (*GetOpenDuelsOutput, error) {
	// Get all open duel IDs from the set
	duelIDs, err := r.client.SMembers(ctx, openDuelsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open duel IDs: %w", err)
	}

	// If there are no open duels, return an empty slice
	if len(duelIDs) == 0 {
		return &GetOpenDuelsOutput{
			Duels: []*models.Duel{},
		}, nil
	}

	// Get all duels in parallel using a pipeline
	pipe := r.client.Pipeline()
	duelCommands := make(map[string]*redis.StringCmd)

	for _, duelID := range duelIDs {
		duelKey := fmt.Sprintf("%s%s", duelKeyPrefix, duelID)
		duelCommands[duelID] = pipe.Get(ctx, duelKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get open duels: %w", err)
	}

	// Process the results
	duels := make([]*models.Duel, 0, len(duelIDs))
	for duelID, cmd := range duelCommands {
		duelJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Duel was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get duel %s: %w", duelID, err)
		}

		var duel models.Duel
		if err := json.Unmarshal([]byte(duelJSON), &duel); err != nil {
			return nil, fmt.Errorf("failed to unmarshal duel %s: %w", duelID, err)
		}

		duels = append(duels, &duel)
	}

	return &GetOpenDuelsOutput{
		Duels: duels,
	}, nil
}
