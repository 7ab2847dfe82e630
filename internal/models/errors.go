package models

import "errors"

// Pet interaction errors
var (
	// ErrInsufficientEnergy indicates a pet tried to sleep before its
	// cooldown elapsed
	ErrInsufficientEnergy = errors.New("pet needs to stay awake longer before sleeping")

	// ErrInvalidInteraction indicates an unknown interaction type
	ErrInvalidInteraction = errors.New("invalid pet interaction")
)

// Duel transition errors
var (
	// ErrDuelAlreadyStarted indicates an accept on a duel that is no
	// longer in the challenged state
	ErrDuelAlreadyStarted = errors.New("duel already started")

	// ErrDuelFinished indicates an attack on a finished duel
	ErrDuelFinished = errors.New("duel is finished")

	// ErrDuelNotFinished indicates a claim on a duel that has no outcome yet
	ErrDuelNotFinished = errors.New("duel is not finished yet")

	// ErrNotChallengerTurn indicates an attack by someone other than the
	// challenger on the challenger's turn
	ErrNotChallengerTurn = errors.New("not challenger's turn")

	// ErrNotDefenderTurn indicates an attack by someone other than the
	// defender on the defender's turn
	ErrNotDefenderTurn = errors.New("not defender's turn")

	// ErrCannotChallengeSelf indicates a player tried to duel themselves
	ErrCannotChallengeSelf = errors.New("cannot challenge yourself")

	// ErrNoWinner indicates a finished duel with no winner recorded
	ErrNoWinner = errors.New("no winner declared for the duel")
)
