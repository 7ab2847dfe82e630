package pet

import (
	"context"
	"errors"

	"github.com/solapet/petduel/internal/common/clock"
	"github.com/solapet/petduel/internal/custody"
	"github.com/solapet/petduel/internal/models"
	petRepo "github.com/solapet/petduel/internal/repositories/pet"
)

// Define errors
var (
	ErrPetNotFound      = errors.New("pet not found")
	ErrPetAlreadyExists = errors.New("player already has a pet in the game")
)

// service implements the Service interface
type service struct {
	petRepo petRepo.Repository
	locker  custody.Locker
	clock   clock.Clock
}

// New creates a new pet service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PetRepo == nil {
		return nil, errors.New("pet repository cannot be nil")
	}

	if cfg.Locker == nil {
		return nil, errors.New("locker cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	return &service{
		petRepo: cfg.PetRepo,
		locker:  cfg.Locker,
		clock:   cfg.Clock,
	}, nil
}

// JoinGame deposits the player's pet token and creates a pet with full
// attributes
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// A player only ever has one pet
	existing, err := s.petRepo.GetPet(ctx, &petRepo.GetPetInput{
		PlayerID: input.PlayerID,
	})
	if err == nil && existing != nil {
		return nil, ErrPetAlreadyExists
	}
	if err != nil && !errors.Is(err, petRepo.ErrPetNotFound) {
		return nil, err
	}

	// Take custody of the pet token
	if err := s.locker.Lock(ctx, &custody.LockInput{
		PlayerID: input.PlayerID,
		TokenRef: input.TokenRef,
	}); err != nil {
		return nil, err
	}

	pet := models.NewPetStats(input.PlayerID, s.clock.Now())

	if err := s.petRepo.SavePet(ctx, &petRepo.SavePetInput{
		Pet: pet,
	}); err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		Pet: pet,
	}, nil
}

// GetPet returns a pet with decay applied as of now. The refreshed values
// are committed so repeated reads at the same instant agree.
func (s *service) GetPet(ctx context.Context, input *GetPetInput) (*GetPetOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	pet, err := s.refreshPet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPetOutput{
		Pet: pet,
	}, nil
}

// Interact performs a care action on the player's pet
func (s *service) Interact(ctx context.Context, input *InteractInput) (*InteractOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	pet, err := s.refreshPet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	switch input.Type {
	case models.InteractionFeed:
		pet.Feed(now)
	case models.InteractionBathe:
		pet.Bathe(now)
	case models.InteractionSleep:
		if err := pet.Sleep(now); err != nil {
			return nil, err
		}
	default:
		return nil, models.ErrInvalidInteraction
	}

	if err := s.petRepo.SavePet(ctx, &petRepo.SavePetInput{
		Pet: pet,
	}); err != nil {
		return nil, err
	}

	return &InteractOutput{
		Pet: pet,
	}, nil
}

// Withdraw removes the player's pet and returns their token
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	err := s.petRepo.DeletePet(ctx, &petRepo.DeletePetInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}

	if err := s.locker.Unlock(ctx, &custody.UnlockInput{
		PlayerID: input.PlayerID,
	}); err != nil {
		return nil, err
	}

	return &WithdrawOutput{
		Success: true,
	}, nil
}

// refreshPet loads a pet, applies decay at the service clock, and commits
// the refreshed values.
func (s *service) refreshPet(ctx context.Context, playerID string) (*models.PetStats, error) {
	pet, err := s.petRepo.GetPet(ctx, &petRepo.GetPetInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, petRepo.ErrPetNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}

	pet.Refresh(s.clock.Now())

	if err := s.petRepo.SavePet(ctx, &petRepo.SavePetInput{
		Pet: pet,
	}); err != nil {
		return nil, err
	}

	return pet, nil
}
