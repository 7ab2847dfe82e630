package pet

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
	petKeyPrefix = "pet:"
	allPetsKey   = "pets"
)

// ErrPetNotFound is returned when a pet is not found
var ErrPetNotFound = errors.New("pet not found")

// Config holds configuration for the Redis pet repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed pet repository
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

// SavePet persists a pet's stats to Redis
func (r *redisRepository) SavePet(ctx context.Context, input *SavePetInput) error {
	if input == nil || input.Pet == nil {
		return errors.New("input and pet cannot be nil")
	}

	if input.Pet.PlayerID == "" {
		return errors.New("pet player ID cannot be empty")
	}

	// Marshal the pet to JSON
	petJSON, err := json.Marshal(input.Pet)
	if err != nil {
		return fmt.Errorf("failed to marshal pet: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the pet and index it in the all-pets set
	petKey := fmt.Sprintf("%s%s", petKeyPrefix, input.Pet.PlayerID)
	pipe.Set(ctx, petKey, petJSON, 0)
	pipe.SAdd(ctx, allPetsKey, input.Pet.PlayerID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save pet: %w", err)
	}

	return nil
}

// GetPet retrieves a pet's stats by owner from Redis
func (r *redisRepository) GetPet(ctx context.Context, input *GetPetInput) (*models.PetStats, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// Get the pet from Redis
	petKey := fmt.Sprintf("%s%s", petKeyPrefix, input.PlayerID)
	petJSON, err := r.client.Get(ctx, petKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	// Unmarshal the pet from JSON
	var pet models.PetStats
	if err := json.Unmarshal([]byte(petJSON), &pet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pet: %w", err)
	}

	return &pet, nil
}

// DeletePet removes a pet's stats from Redis
func (r *redisRepository) DeletePet(ctx context.Context, input *DeletePetInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	// Make sure the pet exists so callers get a deterministic error
	if _, err := r.GetPet(ctx, &GetPetInput{PlayerID: input.PlayerID}); err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	petKey := fmt.Sprintf("%s%s", petKeyPrefix, input.PlayerID)
	pipe.Del(ctx, petKey)
	pipe.SRem(ctx, allPetsKey, input.PlayerID)

	// Execute the transaction
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}

	return nil
}

// ListPets retrieves all pets currently in the game from Redis
func (r *redisRepository) ListPets(ctx context.Context, input *ListPetsInput) (*ListPetsOutput, error) {
	// Get all player IDs from the set
	playerIDs, err := r.client.SMembers(ctx, allPetsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get pet owner IDs: %w", err)
	}

	// If there are no pets, return an empty slice
	if len(playerIDs) == 0 {
		return &ListPetsOutput{
			Pets: []*models.PetStats{},
		}, nil
	}

	// Get all pet records in parallel using a pipeline
	pipe := r.client.Pipeline()
	petCommands := make(map[string]*redis.StringCmd)

	for _, playerID := range playerIDs {
		petKey := fmt.Sprintf("%s%s", petKeyPrefix, playerID)
		petCommands[playerID] = pipe.Get(ctx, petKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get pets: %w", err)
	}

	// Process the results
	pets := make([]*models.PetStats, 0, len(playerIDs))
	for playerID, cmd := range petCommands {
		petJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Pet was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get pet %s: %w", playerID, err)
		}

		var pet models.PetStats
		if err := json.Unmarshal([]byte(petJSON), &pet); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pet %s: %w", playerID, err)
		}

		pets = append(pets, &pet)
	}

	return &ListPetsOutput{
		Pets: pets,
	}, nil
}
