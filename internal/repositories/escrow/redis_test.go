package escrow

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/solapet/petduel/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) deposit(entryID, playerID string, amount int64, at time.Time) {
	err := s.repo.Deposit(context.Background(), &DepositInput{
		Entry: &models.EscrowEntry{
			ID:        entryID,
			DuelID:    "test-duel-id",
			PlayerID:  playerID,
			Amount:    amount,
			Timestamp: at,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestDepositBuildsPot() {
	s.deposit("entry-1", "challenger", 100, s.testNow)
	s.deposit("entry-2", "defender", 100, s.testNow.Add(time.Minute))

	output, err := s.repo.GetPot(context.Background(), &GetPotInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)
	s.Equal(int64(200), output.Amount)
}

func (s *RedisRepositoryTestSuite) TestGetPotNotFound() {
	output, err := s.repo.GetPot(context.Background(), &GetPotInput{
		DuelID: "nonexistent-duel-id",
	})
	s.ErrorIs(err, ErrPotNotFound)
	s.Nil(output)
}

func (s *RedisRepositoryTestSuite) TestDepositRejectsInvalidEntry() {
	err := s.repo.Deposit(context.Background(), &DepositInput{
		Entry: &models.EscrowEntry{
			ID:        "entry-1",
			DuelID:    "test-duel-id",
			PlayerID:  "challenger",
			Amount:    0,
			Timestamp: s.testNow,
		},
	})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestPayout() {
	s.deposit("entry-1", "challenger", 100, s.testNow)
	s.deposit("entry-2", "defender", 100, s.testNow.Add(time.Minute))

	err := s.repo.Payout(context.Background(), &PayoutInput{
		Entry: &models.EscrowEntry{
			ID:        "entry-3",
			DuelID:    "test-duel-id",
			PlayerID:  "challenger",
			Amount:    190,
			Timestamp: s.testNow.Add(2 * time.Minute),
		},
	})
	s.Require().NoError(err)

	// The pot is closed once paid out
	_, err = s.repo.GetPot(context.Background(), &GetPotInput{
		DuelID: "test-duel-id",
	})
	s.ErrorIs(err, ErrPotNotFound)

	// The fee remainder stays behind in the vault
	balance, err := s.client.Get(context.Background(), vaultBalanceKey).Int64()
	s.Require().NoError(err)
	s.Equal(int64(10), balance)
}

func (s *RedisRepositoryTestSuite) TestPayoutExceedingVault() {
	s.deposit("entry-1", "challenger", 100, s.testNow)

	err := s.repo.Payout(context.Background(), &PayoutInput{
		Entry: &models.EscrowEntry{
			ID:        "entry-2",
			DuelID:    "test-duel-id",
			PlayerID:  "challenger",
			Amount:    500,
			Timestamp: s.testNow,
		},
	})
	s.ErrorIs(err, ErrInsufficientVault)

	// A rejected payout leaves the pot untouched
	output, err := s.repo.GetPot(context.Background(), &GetPotInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)
	s.Equal(int64(100), output.Amount)
}

func (s *RedisRepositoryTestSuite) TestClosePot() {
	s.deposit("entry-1", "challenger", 100, s.testNow)
	s.deposit("entry-2", "defender", 100, s.testNow.Add(time.Minute))

	err := s.repo.ClosePot(context.Background(), &ClosePotInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)

	// The pot is gone but the escrowed funds stay in the vault
	_, err = s.repo.GetPot(context.Background(), &GetPotInput{
		DuelID: "test-duel-id",
	})
	s.ErrorIs(err, ErrPotNotFound)

	balance, err := s.client.Get(context.Background(), vaultBalanceKey).Int64()
	s.Require().NoError(err)
	s.Equal(int64(200), balance)
}

func (s *RedisRepositoryTestSuite) TestGetEntriesForDuel() {
	s.deposit("entry-1", "challenger", 100, s.testNow)
	s.deposit("entry-2", "defender", 100, s.testNow.Add(time.Minute))

	err := s.repo.Payout(context.Background(), &PayoutInput{
		Entry: &models.EscrowEntry{
			ID:        "entry-3",
			DuelID:    "test-duel-id",
			PlayerID:  "challenger",
			Amount:    190,
			Timestamp: s.testNow.Add(2 * time.Minute),
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetEntriesForDuel(context.Background(), &GetEntriesForDuelInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	// Oldest first, with directions recorded
	s.Equal("entry-1", output.Entries[0].ID)
	s.Equal(models.EscrowDirectionDeposit, output.Entries[0].Direction)
	s.Equal("entry-2", output.Entries[1].ID)
	s.Equal(models.EscrowDirectionDeposit, output.Entries[1].Direction)
	s.Equal("entry-3", output.Entries[2].ID)
	s.Equal(models.EscrowDirectionPayout, output.Entries[2].Direction)
}

func (s *RedisRepositoryTestSuite) TestGetEntriesForDuelEmpty() {
	output, err := s.repo.GetEntriesForDuel(context.Background(), &GetEntriesForDuelInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}
