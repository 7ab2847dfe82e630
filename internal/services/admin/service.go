package admin

import (
	"context"
	"errors"

	"github.com/solapet/petduel/internal/common/clock"
	"github.com/solapet/petduel/internal/models"
	configRepo "github.com/solapet/petduel/internal/repositories/config"
)

// Define errors
var (
	ErrConfigAlreadyInitialized = errors.New("game configuration already initialized")
	ErrConfigNotInitialized     = errors.New("game configuration not initialized")
	ErrInvalidAdminAccess       = errors.New("invalid admin access")
	ErrInvalidFeePercent        = errors.New("fee percentage must be between 0 and 100")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/solapet/petduel/internal/services/admin Service

// Service defines the interface for administrative operations
type Service interface {
	// InitConfig initializes the game configuration once
	InitConfig(ctx context.Context, input *InitConfigInput) (*InitConfigOutput, error)

	// UpdateFees changes the settlement fee; admin only
	UpdateFees(ctx context.Context, input *UpdateFeesInput) (*UpdateFeesOutput, error)

	// GetConfig reads the current configuration
	GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error)
}

// service implements the Service interface
type service struct {
	configRepo configRepo.Repository
	clock      clock.Clock
}

// New creates a new admin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ConfigRepo == nil {
		return nil, errors.New("config repository cannot be nil")
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	return &service{
		configRepo: cfg.ConfigRepo,
		clock:      cfg.Clock,
	}, nil
}

// InitConfig initializes the game configuration. It fails if the game is
// already configured.
func (s *service) InitConfig(ctx context.Context, input *InitConfigInput) (*InitConfigOutput, error) {
	if input == nil || input.AdminID == "" {
		return nil, errors.New("input and admin ID cannot be empty")
	}

	if input.FeePercent < 0 || input.FeePercent > 100 {
		return nil, ErrInvalidFeePercent
	}

	existing, err := s.configRepo.GetConfig(ctx, &configRepo.GetConfigInput{})
	if err == nil && existing != nil {
		return nil, ErrConfigAlreadyInitialized
	}
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	gameConfig := &models.GameConfig{
		AdminID:      input.AdminID,
		FeePercent:   input.FeePercent,
		VaultID:      input.VaultID,
		CollectionID: input.CollectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.configRepo.SaveConfig(ctx, &configRepo.SaveConfigInput{
		Config: gameConfig,
	}); err != nil {
		return nil, err
	}

	return &InitConfigOutput{
		Config: gameConfig,
	}, nil
}

// UpdateFees changes the settlement fee. Malformed percentages are
// rejected here so settlement never sees one.
func (s *service) UpdateFees(ctx context.Context, input *UpdateFeesInput) (*UpdateFeesOutput, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	if input.FeePercent < 0 || input.FeePercent > 100 {
		return nil, ErrInvalidFeePercent
	}

	gameConfig, err := s.configRepo.GetConfig(ctx, &configRepo.GetConfigInput{})
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, ErrConfigNotInitialized
		}
		return nil, err
	}

	if input.ActorID != gameConfig.AdminID {
		return nil, ErrInvalidAdminAccess
	}

	gameConfig.FeePercent = input.FeePercent
	gameConfig.UpdatedAt = s.clock.Now()

	if err := s.configRepo.SaveConfig(ctx, &configRepo.SaveConfigInput{
		Config: gameConfig,
	}); err != nil {
		return nil, err
	}

	return &UpdateFeesOutput{
		Config: gameConfig,
	}, nil
}

// GetConfig reads the current configuration
func (s *service) GetConfig(ctx context.Context, input *GetConfigInput) (*GetConfigOutput, error) {
	gameConfig, err := s.configRepo.GetConfig(ctx, &configRepo.GetConfigInput{})
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return nil, ErrConfigNotInitialized
		}
		return nil, err
	}

	return &GetConfigOutput{
		Config: gameConfig,
	}, nil
}
