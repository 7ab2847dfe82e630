package duel

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/solapet/petduel/internal/models"
	configRepo "github.com/solapet/petduel/internal/repositories/config"
	duelRepo "github.com/solapet/petduel/internal/repositories/duel"
	escrowRepo "github.com/solapet/petduel/internal/repositories/escrow"
	petRepo "github.com/solapet/petduel/internal/repositories/pet"
	"github.com/solapet/petduel/internal/signing"
)

// DuelFlowTestSuite runs the whole duel lifecycle against real Redis
// repositories, the real damage roller and real ed25519 signatures.
type DuelFlowTestSuite struct {
	suite.Suite
	mr          *miniredis.Miniredis
	client      *redis.Client
	duels       duelRepo.Repository
	escrows     escrowRepo.Repository
	duelService Service
	ctx         context.Context

	challengerID   string
	defenderID     string
	challengerPriv ed25519.PrivateKey
	defenderPriv   ed25519.PrivateKey
}

func (s *DuelFlowTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.ctx = context.Background()

	s.challengerID = "flow-challenger-id"
	s.defenderID = "flow-defender-id"

	// Create the repositories
	pets, err := petRepo.NewRedis(&petRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.duels, err = duelRepo.NewRedis(&duelRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.escrows, err = escrowRepo.NewRedis(&escrowRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	configs, err := configRepo.NewRedis(&configRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	// Configure the game with a 5% settlement fee
	err = configs.SaveConfig(s.ctx, &configRepo.SaveConfigInput{
		Config: &models.GameConfig{
			AdminID:    "flow-admin-id",
			FeePercent: 5,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	})
	s.Require().NoError(err)

	// Both players enter with rested pets
	for _, playerID := range []string{s.challengerID, s.defenderID} {
		err = pets.SavePet(s.ctx, &petRepo.SavePetInput{
			Pet: models.NewPetStats(playerID, time.Now()),
		})
		s.Require().NoError(err)
	}

	// Register real signing keys for both players
	challengerPub, challengerPriv, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err)
	s.challengerPriv = challengerPriv

	defenderPub, defenderPriv, err := ed25519.GenerateKey(rand.Reader)
	s.Require().NoError(err)
	s.defenderPriv = defenderPriv

	verifier, err := signing.NewEd25519(&signing.Config{
		Keys: map[string]ed25519.PublicKey{
			s.challengerID: challengerPub,
			s.defenderID:   defenderPub,
		},
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		DuelRepo:   s.duels,
		PetRepo:    pets,
		EscrowRepo: s.escrows,
		ConfigRepo: configs,
		Verifier:   verifier,
	})
	s.Require().NoError(err)
	s.duelService = svc
}

func (s *DuelFlowTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestDuelFlowTestSuite(t *testing.T) {
	suite.Run(t, new(DuelFlowTestSuite))
}

func (s *DuelFlowTestSuite) TestFullDuelLifecycle() {
	// Challenge with a 100 stake
	challengeOutput, err := s.duelService.Challenge(s.ctx, &ChallengeInput{
		ChallengerID: s.challengerID,
		BetAmount:    100,
	})
	s.Require().NoError(err)
	duelID := challengeOutput.Duel.ID

	// The defender accepts and matches the stake
	acceptOutput, err := s.duelService.Accept(s.ctx, &AcceptInput{
		DuelID:     duelID,
		DefenderID: s.defenderID,
	})
	s.Require().NoError(err)
	s.Equal(models.DuelStatusStarted, acceptOutput.Duel.Status)

	// Both stakes are in the pot
	potOutput, err := s.escrows.GetPot(s.ctx, &escrowRepo.GetPotInput{
		DuelID: duelID,
	})
	s.Require().NoError(err)
	s.Equal(int64(200), potOutput.Amount)

	// Alternate signed attacks until someone drops. Health starts at 100
	// and every hit lands for at least 1, so 200 turns is a safe bound.
	var winnerID string
	for turn := 0; turn < 200; turn++ {
		d, err := s.duels.GetDuel(s.ctx, &duelRepo.GetDuelInput{
			DuelID: duelID,
		})
		s.Require().NoError(err)

		actorID, key := s.defenderID, s.defenderPriv
		if d.ChallengerTurn {
			actorID, key = s.challengerID, s.challengerPriv
		}

		attackOutput, err := s.duelService.Attack(s.ctx, &AttackInput{
			DuelID:    duelID,
			ActorID:   actorID,
			Signature: ed25519.Sign(key, AttackMessage(d)),
		})
		s.Require().NoError(err)
		s.GreaterOrEqual(attackOutput.Damage, 1)
		s.LessOrEqual(attackOutput.Damage, 40)

		if attackOutput.Finished {
			winnerID = attackOutput.Duel.WinnerID
			break
		}
	}
	s.Require().NotEmpty(winnerID, "duel should finish within the turn bound")

	// Only the winner can settle
	loserID := s.challengerID
	if winnerID == s.challengerID {
		loserID = s.defenderID
	}
	_, err = s.duelService.Claim(s.ctx, &ClaimInput{
		DuelID:  duelID,
		ActorID: loserID,
	})
	s.ErrorIs(err, ErrUnauthorizedAction)

	// The winner takes the pot minus the 5% fee
	claimOutput, err := s.duelService.Claim(s.ctx, &ClaimInput{
		DuelID:  duelID,
		ActorID: winnerID,
	})
	s.Require().NoError(err)
	s.Equal(int64(200), claimOutput.Pot)
	s.Equal(int64(10), claimOutput.Fee)
	s.Equal(int64(190), claimOutput.Payout)

	// The audit trail shows two deposits and a payout to the winner
	entriesOutput, err := s.escrows.GetEntriesForDuel(s.ctx, &escrowRepo.GetEntriesForDuelInput{
		DuelID: duelID,
	})
	s.Require().NoError(err)
	s.Require().Len(entriesOutput.Entries, 3)
	s.Equal(models.EscrowDirectionPayout, entriesOutput.Entries[2].Direction)
	s.Equal(winnerID, entriesOutput.Entries[2].PlayerID)
	s.Equal(int64(190), entriesOutput.Entries[2].Amount)

	// Settlement is one-shot: the record is gone
	_, err = s.duelService.Claim(s.ctx, &ClaimInput{
		DuelID:  duelID,
		ActorID: winnerID,
	})
	s.ErrorIs(err, ErrDuelNotFound)

	_, err = s.duelService.GetDuel(s.ctx, &GetDuelInput{
		DuelID: duelID,
	})
	s.ErrorIs(err, ErrDuelNotFound)
}
