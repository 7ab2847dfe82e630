package duel

import "github.com/solapet/petduel/internal/models"

// SaveDuelInput contains parameters for saving a duel
type SaveDuelInput struct {
	Duel *models.Duel
}

// GetDuelInput contains parameters for retrieving a duel
type GetDuelInput struct {
	DuelID string
}

// GetDuelByChallengerInput contains parameters for retrieving a
// challenger's open duel
type GetDuelByChallengerInput struct {
	ChallengerID string
}

// DeleteDuelInput contains parameters for deleting a duel
type DeleteDuelInput struct {
	DuelID string
}

// GetOpenDuelsInput contains parameters for retrieving open duels
type GetOpenDuelsInput struct{}

// GetOpenDuelsOutput contains the result of retrieving open duels
type GetOpenDuelsOutput struct {
	Duels []*models.Duel
}
