package models

import (
	"time"
)

// DuelStatus represents the current state of a duel
type DuelStatus string

const (
	// DuelStatusChallenged indicates a duel is waiting for a defender
	DuelStatusChallenged DuelStatus = "challenged"

	// DuelStatusStarted indicates a duel has been accepted and attacks
	// are being exchanged
	DuelStatusStarted DuelStatus = "started"

	// DuelStatusInProgress is reserved for a future multi-step turn
	// (declare/reveal). No transition currently enters it; attacks
	// happen while a duel is started.
	DuelStatusInProgress DuelStatus = "in_progress"

	// DuelStatusFinished indicates a duel has a winner
	DuelStatusFinished DuelStatus = "finished"
)

// MaxPetHealth is the health each pet starts a duel with.
const MaxPetHealth = 100

// Duel represents a wagered contest between two pets
type Duel struct {
	// ID is the unique identifier for the duel
	ID string

	// ChallengerID is the player who opened the duel
	ChallengerID string

	// DefenderID is the player who accepted the duel; empty until accepted
	DefenderID string

	// WinnerID is set once the duel finishes
	WinnerID string

	// ChallengerHealth and DefenderHealth are bounded to [0, MaxPetHealth]
	ChallengerHealth int
	DefenderHealth   int

	// BetAmount is each side's stake in the ledger's native currency.
	// Zero is a valid friendly duel.
	BetAmount int64

	// Status is the current state of the duel
	Status DuelStatus

	// ChallengerTurn is true when the challenger attacks next
	ChallengerTurn bool

	// LastTurnAt is when the most recent attack happened
	LastTurnAt time.Time

	// CreatedAt is when the challenge was opened
	CreatedAt time.Time

	// UpdatedAt is when the duel was last modified
	UpdatedAt time.Time
}

// NewDuel creates a duel in the challenged state with both healths full
// and the challenger holding the first turn.
func NewDuel(id, challengerID string, betAmount int64, now time.Time) *Duel {
	return &Duel{
		ID:               id,
		ChallengerID:     challengerID,
		Status:           DuelStatusChallenged,
		ChallengerHealth: MaxPetHealth,
		DefenderHealth:   MaxPetHealth,
		BetAmount:        betAmount,
		ChallengerTurn:   true,
		LastTurnAt:       now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Accept records the defender and starts the duel. Only a challenged duel
// can be accepted, and the challenger cannot accept their own challenge.
func (d *Duel) Accept(defenderID string, now time.Time) error {
	if d.Status != DuelStatusChallenged {
		return ErrDuelAlreadyStarted
	}

	if defenderID == d.ChallengerID {
		return ErrCannotChallengeSelf
	}

	d.DefenderID = defenderID
	d.Status = DuelStatusStarted
	d.UpdatedAt = now
	return nil
}

// ApplyAttack validates the actor against the turn flag, deals damage to
// the opponent's pet with saturating subtraction, finishes the duel when
// a health reaches zero, and flips the turn. A failed validation leaves
// the duel untouched.
func (d *Duel) ApplyAttack(actorID string, dmg int, now time.Time) error {
	if d.Status == DuelStatusFinished {
		return ErrDuelFinished
	}

	if d.ChallengerTurn {
		if actorID != d.ChallengerID {
			return ErrNotChallengerTurn
		}
		d.DefenderHealth = saturatingSub(d.DefenderHealth, dmg)
	} else {
		if actorID != d.DefenderID {
			return ErrNotDefenderTurn
		}
		d.ChallengerHealth = saturatingSub(d.ChallengerHealth, dmg)
	}

	if d.ChallengerHealth == 0 || d.DefenderHealth == 0 {
		d.Status = DuelStatusFinished
		if d.ChallengerHealth == 0 {
			d.WinnerID = d.DefenderID
		} else {
			d.WinnerID = d.ChallengerID
		}
	}

	// The turn flips even on the terminating attack; the finished state
	// rejects anything further.
	d.ChallengerTurn = !d.ChallengerTurn
	d.LastTurnAt = now
	d.UpdatedAt = now
	return nil
}

func saturatingSub(value, sub int) int {
	if sub >= value {
		return 0
	}
	return value - sub
}
