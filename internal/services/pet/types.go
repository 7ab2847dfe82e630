package pet

import (
	"github.com/solapet/petduel/internal/common/clock"
	"github.com/solapet/petduel/internal/custody"
	"github.com/solapet/petduel/internal/models"
	petRepo "github.com/solapet/petduel/internal/repositories/pet"
)

// Config holds configuration for the pet service
type Config struct {
	// Repository dependencies
	PetRepo petRepo.Repository

	// Custody of the pet token while the player is in the game
	Locker custody.Locker

	// Clock supplies the current time; injectable for tests
	Clock clock.Clock
}

// JoinGameInput contains parameters for joining the game
type JoinGameInput struct {
	// PlayerID is the identity of the joining player
	PlayerID string

	// TokenRef references the pet token being deposited
	TokenRef string
}

// JoinGameOutput contains the result of joining the game
type JoinGameOutput struct {
	// Pet is the newly created pet, all attributes full
	Pet *models.PetStats
}

// GetPetInput contains parameters for retrieving a pet
type GetPetInput struct {
	PlayerID string
}

// GetPetOutput contains the result of retrieving a pet
type GetPetOutput struct {
	// Pet has decay applied as of the service clock
	Pet *models.PetStats
}

// InteractInput contains parameters for a care action
type InteractInput struct {
	PlayerID string
	Type     models.InteractionType
}

// InteractOutput contains the result of a care action
type InteractOutput struct {
	Pet *models.PetStats
}

// WithdrawInput contains parameters for withdrawing from the game
type WithdrawInput struct {
	PlayerID string
}

// WithdrawOutput contains the result of withdrawing
type WithdrawOutput struct {
	// Success indicates the pet was removed and the token released
	Success bool
}
