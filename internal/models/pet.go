package models

import (
	"time"
)

// StatMax is the ceiling for every pet attribute.
const StatMax = 100

// Decay periods: the interval after which an attribute loses one point
// absent a player action.
const (
	HungerDecayPeriod  = 30 * time.Minute
	HygieneDecayPeriod = time.Hour
	EnergyDecayPeriod  = time.Hour

	// SleepCooldown is how long a pet must stay awake before it can
	// sleep again (30 periods of 15 minutes).
	SleepCooldown = 30 * 15 * time.Minute
)

// MinDuelEnergy is the energy a pet needs to enter a duel.
const MinDuelEnergy = 20

// InteractionType identifies a pet care action
type InteractionType string

const (
	// InteractionFeed restores hunger to full
	InteractionFeed InteractionType = "feed"

	// InteractionBathe restores hygiene to full
	InteractionBathe InteractionType = "bathe"

	// InteractionSleep restores energy to full, subject to a cooldown
	InteractionSleep InteractionType = "sleep"
)

// PetStats represents a player's pet and its decaying attributes
type PetStats struct {
	// PlayerID is the identity of the pet's owner
	PlayerID string

	// Hunger, Hygiene and Energy are bounded to [0, StatMax]
	Hunger  int
	Hygiene int
	Energy  int

	// LastFedAt is when the pet was last fed
	LastFedAt time.Time

	// LastBathedAt is when the pet was last bathed
	LastBathedAt time.Time

	// LastSleptAt is when the pet last slept
	LastSleptAt time.Time

	// CreatedAt is when the pet joined the game
	CreatedAt time.Time
}

// NewPetStats creates a pet with full attributes anchored at now.
func NewPetStats(playerID string, now time.Time) *PetStats {
	return &PetStats{
		PlayerID:     playerID,
		Hunger:       StatMax,
		Hygiene:      StatMax,
		Energy:       StatMax,
		LastFedAt:    now,
		LastBathedAt: now,
		LastSleptAt:  now,
		CreatedAt:    now,
	}
}

// decay computes an attribute's current value: one point lost per whole
// period elapsed since the action that last restored it, floored at zero.
// Attributes are only ever set to StatMax by their action, so the value is
// a pure function of the anchor timestamp. That keeps a refresh idempotent
// at a fixed clock value no matter how often it runs. A clock behind the
// anchor decays nothing.
func decay(anchor, now time.Time, period time.Duration) int {
	if !now.After(anchor) {
		return StatMax
	}

	return clampStat(StatMax - int(now.Sub(anchor)/period))
}

func clampStat(value int) int {
	if value < 0 {
		return 0
	}
	if value > StatMax {
		return StatMax
	}
	return value
}

// Refresh applies passive decay to all three attributes as of now.
func (p *PetStats) Refresh(now time.Time) {
	p.Hunger = decay(p.LastFedAt, now, HungerDecayPeriod)
	p.Hygiene = decay(p.LastBathedAt, now, HygieneDecayPeriod)
	p.Energy = decay(p.LastSleptAt, now, EnergyDecayPeriod)
}

// Feed restores hunger to full.
func (p *PetStats) Feed(now time.Time) {
	p.Hunger = StatMax
	p.LastFedAt = now
}

// Bathe restores hygiene to full.
func (p *PetStats) Bathe(now time.Time) {
	p.Hygiene = StatMax
	p.LastBathedAt = now
}

// Sleep restores energy to full. The pet must have been awake for the
// full cooldown since it last slept, otherwise ErrInsufficientEnergy is
// returned and nothing changes.
func (p *PetStats) Sleep(now time.Time) error {
	if now.Sub(p.LastSleptAt) < SleepCooldown {
		return ErrInsufficientEnergy
	}

	p.Energy = StatMax
	p.LastSleptAt = now
	return nil
}

// CanDuel reports whether the pet's energy meets the duel threshold.
// Callers should Refresh first so the check sees decayed values.
func (p *PetStats) CanDuel() bool {
	return p.Energy >= MinDuelEnergy
}
