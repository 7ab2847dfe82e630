package config

import "github.com/solapet/petduel/internal/models"

// SaveConfigInput contains parameters for saving the game configuration
type SaveConfigInput struct {
	Config *models.GameConfig
}

// GetConfigInput contains parameters for retrieving the game configuration
type GetConfigInput struct{}
