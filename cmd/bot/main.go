package main

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/solapet/petduel/internal/custody"
	"github.com/solapet/petduel/internal/handlers/discord"
	configRepo "github.com/solapet/petduel/internal/repositories/config"
	duelRepo "github.com/solapet/petduel/internal/repositories/duel"
	escrowRepo "github.com/solapet/petduel/internal/repositories/escrow"
	petRepo "github.com/solapet/petduel/internal/repositories/pet"
	adminService "github.com/solapet/petduel/internal/services/admin"
	duelService "github.com/solapet/petduel/internal/services/duel"
	petService "github.com/solapet/petduel/internal/services/pet"
	"github.com/solapet/petduel/internal/signing"
)

func main() {
	// Load environment from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	pets, err := petRepo.NewRedis(&petRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create pet repository: %v", err)
	}

	duels, err := duelRepo.NewRedis(&duelRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create duel repository: %v", err)
	}

	escrows, err := escrowRepo.NewRedis(&escrowRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create escrow repository: %v", err)
	}

	configs, err := configRepo.NewRedis(&configRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create config repository: %v", err)
	}

	// Initialize the token locker
	locker, err := custody.NewRedis(&custody.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create token locker: %v", err)
	}

	// Initialize the signature verifier
	verifier, err := buildVerifier()
	if err != nil {
		log.Fatalf("Failed to create signature verifier: %v", err)
	}

	// Initialize services
	petSvc, err := petService.New(&petService.Config{
		PetRepo: pets,
		Locker:  locker,
	})
	if err != nil {
		log.Fatalf("Failed to create pet service: %v", err)
	}

	duelSvc, err := duelService.New(&duelService.Config{
		DuelRepo:   duels,
		PetRepo:    pets,
		EscrowRepo: escrows,
		ConfigRepo: configs,
		Verifier:   verifier,
	})
	if err != nil {
		log.Fatalf("Failed to create duel service: %v", err)
	}

	adminSvc, err := adminService.New(&adminService.Config{
		ConfigRepo: configs,
	})
	if err != nil {
		log.Fatalf("Failed to create admin service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         discordToken,
		ApplicationID: applicationID,
		GuildID:       guildID,
		PetService:    petSvc,
		DuelService:   duelSvc,
		AdminService:  adminSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// buildVerifier picks the signature verifier from SIGNING_MODE. The
// ed25519 mode reads PLAYER_KEYS as comma separated playerID=base64key
// pairs.
func buildVerifier() (signing.Verifier, error) {
	mode := getEnv("SIGNING_MODE", "ed25519")

	switch mode {
	case "disabled":
		return signing.NewDisabled(), nil
	case "ed25519":
		keys, err := parsePlayerKeys(getEnv("PLAYER_KEYS", ""))
		if err != nil {
			return nil, err
		}
		return signing.NewEd25519(&signing.Config{
			Keys: keys,
		})
	default:
		return nil, fmt.Errorf("unknown signing mode: %s", mode)
	}
}

// parsePlayerKeys parses "player1=aGVsbG8...,player2=d29ybGQ..." into a
// key registry
func parsePlayerKeys(raw string) (map[string]ed25519.PublicKey, error) {
	keys := make(map[string]ed25519.PublicKey)
	if raw == "" {
		return keys, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		playerID, encoded, found := strings.Cut(pair, "=")
		if !found || playerID == "" {
			return nil, fmt.Errorf("malformed player key entry: %q", pair)
		}

		keyBytes, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode key for player %s: %w", playerID, err)
		}

		if len(keyBytes) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("key for player %s has wrong size %d", playerID, len(keyBytes))
		}

		keys[playerID] = ed25519.PublicKey(keyBytes)
	}

	return keys, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
