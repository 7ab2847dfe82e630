package models

import (
	"time"
)

// EscrowDirection indicates which way value moved through the vault
type EscrowDirection string

const (
	// EscrowDirectionDeposit is a stake moving into the vault
	EscrowDirectionDeposit EscrowDirection = "deposit"

	// EscrowDirectionPayout is a settlement moving out of the vault
	EscrowDirectionPayout EscrowDirection = "payout"
)

// EscrowEntry records one movement of value between a player and the vault
type EscrowEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// DuelID is the duel this entry belongs to
	DuelID string

	// PlayerID is the player whose funds moved
	PlayerID string

	// Amount is the value moved, always positive
	Amount int64

	// Direction is whether the entry is a deposit or a payout
	Direction EscrowDirection

	// Timestamp is when the movement happened
	Timestamp time.Time
}
