package duel

import (
	"github.com/solapet/petduel/internal/common/clock"
	"github.com/solapet/petduel/internal/common/uuid"
	"github.com/solapet/petduel/internal/damage"
	"github.com/solapet/petduel/internal/models"
	configRepo "github.com/solapet/petduel/internal/repositories/config"
	duelRepo "github.com/solapet/petduel/internal/repositories/duel"
	escrowRepo "github.com/solapet/petduel/internal/repositories/escrow"
	petRepo "github.com/solapet/petduel/internal/repositories/pet"
	"github.com/solapet/petduel/internal/signing"
)

// Config holds configuration for the duel service
type Config struct {
	// DamageCap bounds attack damage to [1, DamageCap]
	DamageCap int

	// Repository dependencies
	DuelRepo   duelRepo.Repository
	PetRepo    petRepo.Repository
	EscrowRepo escrowRepo.Repository
	ConfigRepo configRepo.Repository

	// Service dependencies
	Roller        damage.Roller
	Verifier      signing.Verifier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ChallengeInput contains parameters for opening a duel
type ChallengeInput struct {
	// ChallengerID is the player opening the duel
	ChallengerID string

	// BetAmount is each side's stake; zero makes a friendly duel
	BetAmount int64
}

// ChallengeOutput contains the result of opening a duel
type ChallengeOutput struct {
	Duel *models.Duel
}

// AcceptInput contains parameters for accepting a duel
type AcceptInput struct {
	// DuelID is the duel to accept
	DuelID string

	// DefenderID is the player accepting the duel
	DefenderID string
}

// AcceptOutput contains the result of accepting a duel
type AcceptOutput struct {
	Duel *models.Duel
}

// AttackInput contains parameters for one attack turn
type AttackInput struct {
	// DuelID is the duel being fought
	DuelID string

	// ActorID is the attacking player; must hold the turn
	ActorID string

	// Signature is the actor's signature over the current duel context.
	// Its bytes seed the damage roll after verification.
	Signature []byte
}

// AttackOutput contains the result of one attack turn
type AttackOutput struct {
	// Damage dealt by this attack
	Damage int

	// Duel is the duel after the attack
	Duel *models.Duel

	// Finished indicates the attack ended the duel
	Finished bool
}

// ClaimInput contains parameters for settling a finished duel
type ClaimInput struct {
	// DuelID is the duel to settle
	DuelID string

	// ActorID must be the duel's winner
	ActorID string
}

// ClaimOutput contains the result of settling a duel
type ClaimOutput struct {
	// Pot is the total that was escrowed
	Pot int64

	// Fee retained by the vault
	Fee int64

	// Payout transferred to the winner
	Payout int64
}

// GetDuelInput contains parameters for retrieving a duel
type GetDuelInput struct {
	DuelID string
}

// GetDuelOutput contains the result of retrieving a duel
type GetDuelOutput struct {
	Duel *models.Duel
}

// ListOpenDuelsInput contains parameters for listing open duels
type ListOpenDuelsInput struct{}

// ListOpenDuelsOutput contains the result of listing open duels
type ListOpenDuelsOutput struct {
	Duels []*models.Duel
}
