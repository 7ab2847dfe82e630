package duel

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/solapet/petduel/internal/services/duel Service

// Service defines the interface for duel operations
type Service interface {
	// Challenge opens a duel and escrows the challenger's stake
	Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error)

	// Accept joins an open duel as the defender and escrows the
	// matching stake
	Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error)

	// Attack performs one turn of the duel
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// Claim settles a finished duel and pays the winner
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// GetDuel retrieves a duel by ID
	GetDuel(ctx context.Context, input *GetDuelInput) (*GetDuelOutput, error)

	// ListOpenDuels retrieves all duels that have not finished
	ListOpenDuels(ctx context.Context, input *ListOpenDuelsInput) (*ListOpenDuelsOutput, error)
}
