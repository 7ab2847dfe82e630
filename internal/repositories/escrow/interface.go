package escrow

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/solapet/petduel/internal/repositories/escrow Repository

import (
	"context"
)

// Repository defines the interface for the vault holding escrowed bets.
// The duel service only calls it after the corresponding state transition
// has validated.
type Repository interface {
	// Deposit moves a player's stake into the vault and adds it to the
	// duel's pot
	Deposit(ctx context.Context, input *DepositInput) error

	// Payout moves a settlement from the vault to a player and closes
	// the duel's pot
	Payout(ctx context.Context, input *PayoutInput) error

	// ClosePot retires a duel's pot without moving funds; the escrowed
	// amount stays in the vault
	ClosePot(ctx context.Context, input *ClosePotInput) error

	// GetPot retrieves the total currently escrowed for a duel
	GetPot(ctx context.Context, input *GetPotInput) (*GetPotOutput, error)

	// GetEntriesForDuel retrieves the audit trail for a duel
	GetEntriesForDuel(ctx context.Context, input *GetEntriesForDuelInput) (*GetEntriesForDuelOutput, error)
}
