package duel

import (
	"context"
	"errors"
	"fmt"

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

// Define errors
var (
	ErrDuelNotFound          = errors.New("duel not found")
	ErrPetNotFound           = errors.New("pet not found")
	ErrInsufficientPetEnergy = errors.New("pet needs rest before dueling")
	ErrInvalidBetAmount      = errors.New("invalid bet amount")
	ErrDuelAlreadyChallenged = errors.New("challenger already has an open duel")
	ErrUnauthorizedAction    = errors.New("unauthorized action")
)

// service implements the Service interface
type service struct {
	damageCap  int
	duelRepo   duelRepo.Repository
	petRepo    petRepo.Repository
	escrowRepo escrowRepo.Repository
	configRepo configRepo.Repository
	roller     damage.Roller
	verifier   signing.Verifier
	clock      clock.Clock
	uuider     uuid.UUID
}

// New creates a new duel service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DuelRepo == nil {
		return nil, errors.New("duel repository cannot be nil")
	}

	if cfg.PetRepo == nil {
		return nil, errors.New("pet repository cannot be nil")
	}

	if cfg.EscrowRepo == nil {
		return nil, errors.New("escrow repository cannot be nil")
	}

	if cfg.ConfigRepo == nil {
		return nil, errors.New("config repository cannot be nil")
	}

	if cfg.Verifier == nil {
		return nil, errors.New("signature verifier cannot be nil")
	}

	if cfg.DamageCap <= 0 {
		cfg.DamageCap = damage.DefaultCap
	}

	if cfg.Roller == nil {
		cfg.Roller = damage.New()
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.New()
	}

	return &service{
		damageCap:  cfg.DamageCap,
		duelRepo:   cfg.DuelRepo,
		petRepo:    cfg.PetRepo,
		escrowRepo: cfg.EscrowRepo,
		configRepo: cfg.ConfigRepo,
		roller:     cfg.Roller,
		verifier:   cfg.Verifier,
		clock:      cfg.Clock,
		uuider:     cfg.UUIDGenerator,
	}, nil
}

// AttackMessage is the duel context an attacker signs: the duel ID bound
// to the timestamp of the previous turn, so each signature is usable for
// exactly one attack.
func AttackMessage(d *models.Duel) []byte {
	return []byte(fmt.Sprintf("%s:%d", d.ID, d.LastTurnAt.Unix()))
}

// Challenge opens a duel after the gatekeeping check and escrows the
// challenger's stake
func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*ChallengeOutput, error) {
	if input == nil || input.ChallengerID == "" {
		return nil, errors.New("input and challenger ID cannot be empty")
	}

	if input.BetAmount < 0 {
		return nil, ErrInvalidBetAmount
	}

	// Gatekeeping: the challenger's pet must have the energy to fight
	if err := s.checkEnergy(ctx, input.ChallengerID); err != nil {
		return nil, err
	}

	// A challenger has at most one open duel
	existing, err := s.duelRepo.GetDuelByChallenger(ctx, &duelRepo.GetDuelByChallengerInput{
		ChallengerID: input.ChallengerID,
	})
	if err == nil && existing != nil {
		return nil, ErrDuelAlreadyChallenged
	}
	if err != nil && !errors.Is(err, duelRepo.ErrDuelNotFound) {
		return nil, err
	}

	d := models.NewDuel(s.uuider.NewUUID(), input.ChallengerID, input.BetAmount, s.clock.Now())

	if err := s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: d,
	}); err != nil {
		return nil, err
	}

	// Fund escrow only after the duel record is committed
	if d.BetAmount > 0 {
		if err := s.depositStake(ctx, d, input.ChallengerID); err != nil {
			return nil, err
		}
	}

	return &ChallengeOutput{
		Duel: d,
	}, nil
}

// Accept joins an open duel as the defender
func (s *service) Accept(ctx context.Context, input *AcceptInput) (*AcceptOutput, error) {
	if input == nil || input.DuelID == "" || input.DefenderID == "" {
		return nil, errors.New("input, duel ID and defender ID cannot be empty")
	}

	d, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	// Gatekeeping: the defender's pet must have the energy to fight
	if err := s.checkEnergy(ctx, input.DefenderID); err != nil {
		return nil, err
	}

	if err := d.Accept(input.DefenderID, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: d,
	}); err != nil {
		return nil, err
	}

	// Fund the matching stake only after the acceptance is committed
	if d.BetAmount > 0 {
		if err := s.depositStake(ctx, d, input.DefenderID); err != nil {
			return nil, err
		}
	}

	return &AcceptOutput{
		Duel: d,
	}, nil
}

// Attack performs one turn: verifies the signature over the duel context,
// derives damage from its bytes, and applies the transition
func (s *service) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.DuelID == "" || input.ActorID == "" {
		return nil, errors.New("input, duel ID and actor ID cannot be empty")
	}

	if len(input.Signature) == 0 {
		return nil, signing.ErrInvalidSignature
	}

	d, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	// The signature authenticity check must pass before its bytes are
	// trusted as entropy; see signing.DisabledVerifier for what goes
	// wrong otherwise.
	if err := s.verifier.Verify(ctx, input.ActorID, AttackMessage(d), input.Signature); err != nil {
		return nil, err
	}

	dmg := s.roller.Roll(input.Signature, uint64(s.damageCap))

	if err := d.ApplyAttack(input.ActorID, dmg, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: d,
	}); err != nil {
		return nil, err
	}

	return &AttackOutput{
		Damage:   dmg,
		Duel:     d,
		Finished: d.Status == models.DuelStatusFinished,
	}, nil
}

// Claim settles a finished duel: computes the fee-adjusted payout, pays
// the winner from the vault, and retires the duel record. The record's
// removal is what makes settlement one-shot.
func (s *service) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input == nil || input.DuelID == "" || input.ActorID == "" {
		return nil, errors.New("input, duel ID and actor ID cannot be empty")
	}

	d, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	if d.Status != models.DuelStatusFinished {
		return nil, models.ErrDuelNotFinished
	}

	if d.WinnerID == "" {
		return nil, models.ErrNoWinner
	}

	if input.ActorID != d.WinnerID {
		return nil, ErrUnauthorizedAction
	}

	gameConfig, err := s.configRepo.GetConfig(ctx, &configRepo.GetConfigInput{})
	if err != nil {
		return nil, err
	}

	// Both sides funded the pot when the duel started
	pot := 2 * d.BetAmount
	fee, payout := computeSettlement(pot, gameConfig.FeePercent)

	// A friendly duel moves no funds but still closes the record
	if payout > 0 {
		err = s.escrowRepo.Payout(ctx, &escrowRepo.PayoutInput{
			Entry: &models.EscrowEntry{
				ID:        s.uuider.NewUUID(),
				DuelID:    d.ID,
				PlayerID:  d.WinnerID,
				Amount:    payout,
				Timestamp: s.clock.Now(),
			},
		})
		if err != nil {
			return nil, err
		}
	} else if pot > 0 {
		// A full fee pays nothing out, but the pot must still be retired
		// or its counter lingers after the duel record is gone
		if err := s.escrowRepo.ClosePot(ctx, &escrowRepo.ClosePotInput{
			DuelID: d.ID,
		}); err != nil {
			return nil, err
		}
	}

	if err := s.duelRepo.DeleteDuel(ctx, &duelRepo.DeleteDuelInput{
		DuelID: d.ID,
	}); err != nil {
		return nil, err
	}

	return &ClaimOutput{
		Pot:    pot,
		Fee:    fee,
		Payout: payout,
	}, nil
}

// GetDuel retrieves a duel by ID
func (s *service) GetDuel(ctx context.Context, input *GetDuelInput) (*GetDuelOutput, error) {
	if input == nil || input.DuelID == "" {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	d, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	return &GetDuelOutput{
		Duel: d,
	}, nil
}

// ListOpenDuels retrieves all duels that have not finished
func (s *service) ListOpenDuels(ctx context.Context, input *ListOpenDuelsInput) (*ListOpenDuelsOutput, error) {
	out, err := s.duelRepo.GetOpenDuels(ctx, &duelRepo.GetOpenDuelsInput{})
	if err != nil {
		return nil, err
	}

	return &ListOpenDuelsOutput{
		Duels: out.Duels,
	}, nil
}

func (s *service) getDuel(ctx context.Context, duelID string) (*models.Duel, error) {
	d, err := s.duelRepo.GetDuel(ctx, &duelRepo.GetDuelInput{
		DuelID: duelID,
	})
	if err != nil {
		if errors.Is(err, duelRepo.ErrDuelNotFound) {
			return nil, ErrDuelNotFound
		}
		return nil, err
	}

	return d, nil
}

// checkEnergy refreshes the player's pet and enforces the duel energy
// threshold. The refreshed values are committed.
func (s *service) checkEnergy(ctx context.Context, playerID string) error {
	pet, err := s.petRepo.GetPet(ctx, &petRepo.GetPetInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			return ErrPetNotFound
		}
		return err
	}

	pet.Refresh(s.clock.Now())

	if err := s.petRepo.SavePet(ctx, &petRepo.SavePetInput{
		Pet: pet,
	}); err != nil {
		return err
	}

	if !pet.CanDuel() {
		return ErrInsufficientPetEnergy
	}

	return nil
}

// depositStake escrows one side's stake for the duel
func (s *service) depositStake(ctx context.Context, d *models.Duel, playerID string) error {
	return s.escrowRepo.Deposit(ctx, &escrowRepo.DepositInput{
		Entry: &models.EscrowEntry{
			ID:        s.uuider.NewUUID(),
			DuelID:    d.ID,
			PlayerID:  playerID,
			Amount:    d.BetAmount,
			Timestamp: s.clock.Now(),
		},
	})
}
