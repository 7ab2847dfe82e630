package escrow

import "github.com/solapet/petduel/internal/models"

// DepositInput contains parameters for depositing a stake
type DepositInput struct {
	Entry *models.EscrowEntry
}

// PayoutInput contains parameters for paying out a settlement
type PayoutInput struct {
	Entry *models.EscrowEntry
}

// ClosePotInput contains parameters for retiring a duel's pot
type ClosePotInput struct {
	DuelID string
}

// GetPotInput contains parameters for retrieving a duel's pot
type GetPotInput struct {
	DuelID string
}

// GetPotOutput contains the result of retrieving a duel's pot
type GetPotOutput struct {
	Amount int64
}

// GetEntriesForDuelInput contains parameters for retrieving a duel's entries
type GetEntriesForDuelInput struct {
	DuelID string
}

// GetEntriesForDuelOutput contains the result of retrieving a duel's entries
type GetEntriesForDuelOutput struct {
	Entries []*models.EscrowEntry
}
