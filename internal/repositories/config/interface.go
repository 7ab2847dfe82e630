package config

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/solapet/petduel/internal/repositories/config Repository

import (
	"context"

	"github.com/solapet/petduel/internal/models"
)

// Repository defines the interface for game configuration persistence
type Repository interface {
	// SaveConfig persists the game configuration
	SaveConfig(ctx context.Context, input *SaveConfigInput) error

	// GetConfig retrieves the game configuration
	GetConfig(ctx context.Context, input *GetConfigInput) (*models.GameConfig, error)
}
