package models

import (
	"time"
)

// GameConfig holds the process-wide game configuration
type GameConfig struct {
	// AdminID is the only identity allowed to change the configuration
	AdminID string

	// FeePercent is the settlement fee in whole percent, 0-100
	FeePercent int

	// VaultID references the vault holding escrowed bets
	VaultID string

	// CollectionID references the pet token collection eligible to join
	CollectionID string

	// CreatedAt is when the configuration was initialized
	CreatedAt time.Time

	// UpdatedAt is when the configuration was last changed
	UpdatedAt time.Time
}
