package duel

import (
	"context"

	"github.com/solapet/petduel/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/solapet/petduel/internal/repositories/duel Repository

// Repository defines the interface for duel persistence
type Repository interface {
	// SaveDuel persists a duel
	SaveDuel(ctx context.Context, input *SaveDuelInput) error

	// GetDuel retrieves a duel by ID
	GetDuel(ctx context.Context, input *GetDuelInput) (*models.Duel, error)

	// GetDuelByChallenger retrieves a challenger's open duel
	GetDuelByChallenger(ctx context.Context, input *GetDuelByChallengerInput) (*models.Duel, error)

	// DeleteDuel removes a duel once it has been settled
	DeleteDuel(ctx context.Context, input *DeleteDuelInput) error

	// GetOpenDuels retrieves all duels that have not finished
	GetOpenDuels(ctx context.Context, input *GetOpenDuelsInput) (*GetOpenDuelsOutput, error)
}
