package escrow

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
	entryKeyPrefix       = "escrow:"
	duelEntriesKeyPrefix = "duel_escrow:"
	potKeyPrefix         = "pot:"
	vaultBalanceKey      = "vault_balance"
)

// ErrPotNotFound is returned when a duel has no escrowed pot
var ErrPotNotFound = errors.New("escrow pot not found")

// ErrInsufficientVault is returned when a payout exceeds the vault balance
var ErrInsufficientVault = errors.New("vault balance insufficient for payout")

// Config holds configuration for the Redis escrow repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed escrow repository
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

func validateEntry(entry *models.EscrowEntry) error {
	if entry == nil {
		return errors.New("entry cannot be nil")
	}

	if entry.ID == "" {
		return errors.New("entry ID cannot be empty")
	}

	if entry.DuelID == "" {
		return errors.New("entry duel ID cannot be empty")
	}

	if entry.Amount <= 0 {
		return errors.New("entry amount must be positive")
	}

	return nil
}

// recordEntry appends the entry blob and indexes it under its duel.
func (r *redisRepository) recordEntry(ctx context.Context, pipe redis.Pipeliner, entry *models.EscrowEntry) error {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal escrow entry: %w", err)
	}

	entryKey := fmt.Sprintf("%s%s", entryKeyPrefix, entry.ID)
	pipe.Set(ctx, entryKey, entryJSON, 0)

	duelEntriesKey := fmt.Sprintf("%s%s", duelEntriesKeyPrefix, entry.DuelID)
	pipe.ZAdd(ctx, duelEntriesKey, redis.Z{
		Score:  float64(entry.Timestamp.Unix()),
		Member: entry.ID,
	})

	return nil
}

// Deposit moves a player's stake into the vault and adds it to the duel's pot
func (r *redisRepository) Deposit(ctx context.Context, input *DepositInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := validateEntry(input.Entry); err != nil {
		return err
	}

	entry := input.Entry
	entry.Direction = models.EscrowDirectionDeposit

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, entry.DuelID)
	pipe.IncrBy(ctx, potKey, entry.Amount)
	pipe.IncrBy(ctx, vaultBalanceKey, entry.Amount)

	if err := r.recordEntry(ctx, pipe, entry); err != nil {
		return err
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record deposit: %w", err)
	}

	return nil
}

// Payout moves a settlement from the vault to a player and closes the
// duel's pot
func (r *redisRepository) Payout(ctx context.Context, input *PayoutInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if err := validateEntry(input.Entry); err != nil {
		return err
	}

	entry := input.Entry
	entry.Direction = models.EscrowDirectionPayout

	// The vault must cover the payout
	balance, err := r.client.Get(ctx, vaultBalanceKey).Int64()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get vault balance: %w", err)
	}
	if balance < entry.Amount {
		return ErrInsufficientVault
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, entry.DuelID)
	pipe.Del(ctx, potKey)
	pipe.DecrBy(ctx, vaultBalanceKey, entry.Amount)

	if err := r.recordEntry(ctx, pipe, entry); err != nil {
		return err
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record payout: %w", err)
	}

	return nil
}

// ClosePot retires a duel's pot without moving funds. The vault keeps
// the escrowed amount, so the balance is untouched.
func (r *redisRepository) ClosePot(ctx context.Context, input *ClosePotInput) error {
	if input == nil || input.DuelID == "" {
		return errors.New("input and duel ID cannot be empty")
	}

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, input.DuelID)
	if err := r.client.Del(ctx, potKey).Err(); err != nil {
		return fmt.Errorf("failed to close pot: %w", err)
	}

	return nil
}

// GetPot retrieves the total currently escrowed for a duel
func (r *redisRepository) GetPot(ctx context.Context, input *GetPotInput) (*GetPotOutput, error) {
	if input == nil || input.DuelID == "" {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	potKey := fmt.Sprintf("%s%s", potKeyPrefix, input.DuelID)
	amount, err := r.client.Get(ctx, potKey).Int64()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPotNotFound
		}
		return nil, fmt.Errorf("failed to get pot: %w", err)
	}

	return &GetPotOutput{
		Amount: amount,
	}, nil
}

// GetEntriesForDuel retrieves the audit trail for a duel, oldest first
func (r *redisRepository) GetEntriesForDuel(ctx context.Context, input *GetEntriesForDuelInput) (*GetEntriesForDuelOutput, error) {
	if input == nil || input.DuelID == "" {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	duelEntriesKey := fmt.Sprintf("%s%s", duelEntriesKeyPrefix, input.DuelID)
	entryIDs, err := r.client.ZRange(ctx, duelEntriesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get escrow entry IDs: %w", err)
	}

	entries := make([]*models.EscrowEntry, 0, len(entryIDs))
	for _, entryID := range entryIDs {
		entryKey := fmt.Sprintf("%s%s", entryKeyPrefix, entryID)
		entryJSON, err := r.client.Get(ctx, entryKey).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get escrow entry %s: %w", entryID, err)
		}

		var entry models.EscrowEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal escrow entry %s: %w", entryID, err)
		}

		entries = append(entries, &entry)
	}

	return &GetEntriesForDuelOutput{
		Entries: entries,
	}, nil
}
