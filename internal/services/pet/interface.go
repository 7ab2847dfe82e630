package pet

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/solapet/petduel/internal/services/pet Service

// Service defines the interface for pet lifecycle operations
type Service interface {
	// JoinGame deposits a player's pet token and creates their pet
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// GetPet returns a pet with decay applied as of now
	GetPet(ctx context.Context, input *GetPetInput) (*GetPetOutput, error)

	// Interact performs a care action (feed, bathe, sleep) on a pet
	Interact(ctx context.Context, input *InteractInput) (*InteractOutput, error)

	// Withdraw returns the player's pet token and removes their pet
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)
}
