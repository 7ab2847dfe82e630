package pet

import "github.com/solapet/petduel/internal/models"

// SavePetInput contains parameters for saving a pet
type SavePetInput struct {
	Pet *models.PetStats
}

// GetPetInput contains parameters for retrieving a pet
type GetPetInput struct {
	PlayerID string
}

// DeletePetInput contains parameters for deleting a pet
type DeletePetInput struct {
	PlayerID string
}

// ListPetsInput contains parameters for listing all pets
type ListPetsInput struct{}

// ListPetsOutput contains the result of listing all pets
type ListPetsOutput struct {
	Pets []*models.PetStats
}
