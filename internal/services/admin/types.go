package admin

import (
	"github.com/solapet/petduel/internal/common/clock"
	"github.com/solapet/petduel/internal/models"
	configRepo "github.com/solapet/petduel/internal/repositories/config"
)

// Config holds configuration for the admin service
type Config struct {
	// Repository dependencies
	ConfigRepo configRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// InitConfigInput contains parameters for initializing the game
type InitConfigInput struct {
	// AdminID becomes the only identity allowed to change the config
	AdminID string

	// FeePercent is the settlement fee, 0-100
	FeePercent int

	// VaultID references the vault holding escrowed bets
	VaultID string

	// CollectionID references the eligible pet token collection
	CollectionID string
}

// InitConfigOutput contains the result of initializing the game
type InitConfigOutput struct {
	Config *models.GameConfig
}

// UpdateFeesInput contains parameters for changing the settlement fee
type UpdateFeesInput struct {
	// ActorID must match the configured admin
	ActorID string

	// FeePercent is the new fee, 0-100
	FeePercent int
}

// UpdateFeesOutput contains the result of changing the settlement fee
type UpdateFeesOutput struct {
	Config *models.GameConfig
}

// GetConfigInput contains parameters for reading the configuration
type GetConfigInput struct{}

// GetConfigOutput contains the current configuration
type GetConfigOutput struct {
	Config *models.GameConfig
}
