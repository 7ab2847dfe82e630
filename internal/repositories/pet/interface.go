package pet

import (
	"context"

	"github.com/solapet/petduel/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/solapet/petduel/internal/repositories/pet Repository

// Repository defines the interface for pet stats persistence
type Repository interface {
	// SavePet persists a pet's stats
	SavePet(ctx context.Context, input *SavePetInput) error

	// GetPet retrieves a pet's stats by owner
	GetPet(ctx context.Context, input *GetPetInput) (*models.PetStats, error)

	// DeletePet removes a pet's stats when the owner withdraws
	DeletePet(ctx context.Context, input *DeletePetInput) error

	// ListPets retrieves all pets currently in the game
	ListPets(ctx context.Context, input *ListPetsInput) (*ListPetsOutput, error)
}
