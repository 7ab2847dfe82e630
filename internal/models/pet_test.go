package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestNewPetStats(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)

	assert.Equal(t, "player-1", pet.PlayerID)
	assert.Equal(t, StatMax, pet.Hunger)
	assert.Equal(t, StatMax, pet.Hygiene)
	assert.Equal(t, StatMax, pet.Energy)
	assert.Equal(t, statEpoch, pet.LastFedAt)
	assert.Equal(t, statEpoch, pet.LastBathedAt)
	assert.Equal(t, statEpoch, pet.LastSleptAt)
}

func TestRefreshDecayRates(t *testing.T) {
	tests := []struct {
		name        string
		elapsed     time.Duration
		wantHunger  int
		wantHygiene int
		wantEnergy  int
	}{
		{
			name:        "no time passed",
			elapsed:     0,
			wantHunger:  100,
			wantHygiene: 100,
			wantEnergy:  100,
		},
		{
			name:        "under one period",
			elapsed:     29 * time.Minute,
			wantHunger:  100,
			wantHygiene: 100,
			wantEnergy:  100,
		},
		{
			name:        "one hour",
			elapsed:     time.Hour,
			wantHunger:  98,
			wantHygiene: 99,
			wantEnergy:  99,
		},
		{
			name:        "ten hours",
			elapsed:     10 * time.Hour,
			wantHunger:  80,
			wantHygiene: 90,
			wantEnergy:  90,
		},
		{
			name:        "long absence floors at zero",
			elapsed:     200 * time.Hour,
			wantHunger:  0,
			wantHygiene: 0,
			wantEnergy:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pet := NewPetStats("player-1", statEpoch)
			pet.Refresh(statEpoch.Add(tt.elapsed))

			assert.Equal(t, tt.wantHunger, pet.Hunger, "hunger")
			assert.Equal(t, tt.wantHygiene, pet.Hygiene, "hygiene")
			assert.Equal(t, tt.wantEnergy, pet.Energy, "energy")
		})
	}
}

func TestRefreshIsIdempotentAtSameInstant(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)
	now := statEpoch.Add(7 * time.Hour)

	pet.Refresh(now)
	first := *pet

	pet.Refresh(now)
	assert.Equal(t, first, *pet)
}

func TestRefreshClockBehindAnchor(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)

	// A clock behind the last-action timestamps must decay nothing
	pet.Refresh(statEpoch.Add(-time.Hour))

	assert.Equal(t, StatMax, pet.Hunger)
	assert.Equal(t, StatMax, pet.Hygiene)
	assert.Equal(t, StatMax, pet.Energy)
}

func TestRefreshStaysInBounds(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)

	for _, elapsed := range []time.Duration{
		0, time.Second, time.Hour, 50 * time.Hour, 1000 * time.Hour,
	} {
		pet.Refresh(statEpoch.Add(elapsed))

		assert.GreaterOrEqual(t, pet.Hunger, 0)
		assert.LessOrEqual(t, pet.Hunger, StatMax)
		assert.GreaterOrEqual(t, pet.Hygiene, 0)
		assert.LessOrEqual(t, pet.Hygiene, StatMax)
		assert.GreaterOrEqual(t, pet.Energy, 0)
		assert.LessOrEqual(t, pet.Energy, StatMax)
	}
}

func TestFeedRestoresHunger(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)
	now := statEpoch.Add(20 * time.Hour)
	pet.Refresh(now)
	require.Less(t, pet.Hunger, StatMax)

	pet.Feed(now)

	assert.Equal(t, StatMax, pet.Hunger)
	assert.Equal(t, now, pet.LastFedAt)
}

func TestBatheRestoresHygiene(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)
	now := statEpoch.Add(20 * time.Hour)
	pet.Refresh(now)
	require.Less(t, pet.Hygiene, StatMax)

	pet.Bathe(now)

	assert.Equal(t, StatMax, pet.Hygiene)
	assert.Equal(t, now, pet.LastBathedAt)
}

func TestSleepRequiresCooldown(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)

	// 7.5 hours awake is the threshold; just under fails
	early := statEpoch.Add(SleepCooldown - time.Minute)
	pet.Refresh(early)
	err := pet.Sleep(early)
	assert.ErrorIs(t, err, ErrInsufficientEnergy)
	assert.Less(t, pet.Energy, StatMax)

	// At the threshold it succeeds
	ready := statEpoch.Add(SleepCooldown)
	pet.Refresh(ready)
	require.NoError(t, pet.Sleep(ready))
	assert.Equal(t, StatMax, pet.Energy)
	assert.Equal(t, ready, pet.LastSleptAt)
}

func TestCanDuelThreshold(t *testing.T) {
	pet := NewPetStats("player-1", statEpoch)

	// Energy decays one point per hour; 80 hours leaves exactly 20
	pet.Refresh(statEpoch.Add(80 * time.Hour))
	assert.Equal(t, 20, pet.Energy)
	assert.True(t, pet.CanDuel())

	pet.Refresh(statEpoch.Add(81 * time.Hour))
	assert.Equal(t, 19, pet.Energy)
	assert.False(t, pet.CanDuel())
}
