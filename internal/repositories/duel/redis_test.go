package duel

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

func (s *RedisRepositoryTestSuite) testDuel() *models.Duel {
	return models.NewDuel("test-duel-id", "test-challenger-id", 100, s.testNow)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetDuel() {
	duel := s.testDuel()

	// Save the duel
	err := s.repo.SaveDuel(context.Background(), &SaveDuelInput{
		Duel: duel,
	})
	s.Require().NoError(err)

	// Get the duel by ID
	retrievedDuel, err := s.repo.GetDuel(context.Background(), &GetDuelInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)
	s.Equal(duel.ID, retrievedDuel.ID)
	s.Equal(duel.ChallengerID, retrievedDuel.ChallengerID)
	s.Equal(duel.BetAmount, retrievedDuel.BetAmount)
	s.Equal(models.DuelStatusChallenged, retrievedDuel.Status)
	s.Equal(models.MaxPetHealth, retrievedDuel.ChallengerHealth)
	s.True(retrievedDuel.ChallengerTurn)
}

func (s *RedisRepositoryTestSuite) TestGetDuelNotFound() {
	retrievedDuel, err := s.repo.GetDuel(context.Background(), &GetDuelInput{
		DuelID: "nonexistent-duel-id",
	})
	s.ErrorIs(err, ErrDuelNotFound)
	s.Nil(retrievedDuel)
}

func (s *RedisRepositoryTestSuite) TestGetDuelByChallenger() {
	duel := s.testDuel()

	err := s.repo.SaveDuel(context.Background(), &SaveDuelInput{
		Duel: duel,
	})
	s.Require().NoError(err)

	// The open duel is reachable through the challenger index
	retrievedDuel, err := s.repo.GetDuelByChallenger(context.Background(), &GetDuelByChallengerInput{
		ChallengerID: "test-challenger-id",
	})
	s.Require().NoError(err)
	s.Equal(duel.ID, retrievedDuel.ID)
}

func (s *RedisRepositoryTestSuite) TestChallengerIndexClearedWhenFinished() {
	duel := s.testDuel()
	s.Require().NoError(duel.Accept("test-defender-id", s.testNow))

	err := s.repo.SaveDuel(context.Background(), &SaveDuelInput{
		Duel: duel,
	})
	s.Require().NoError(err)

	// Finish the duel and save again
	duel.DefenderHealth = 1
	s.Require().NoError(duel.ApplyAttack("test-challenger-id", 10, s.testNow))

	err = s.repo.SaveDuel(context.Background(), &SaveDuelInput{
		Duel: duel,
	})
	s.Require().NoError(err)

	// The challenger is free to open a new duel
	retrievedDuel, err := s.repo.GetDuelByChallenger(context.Background(), &GetDuelByChallengerInput{
		ChallengerID: "test-challenger-id",
	})
	s.ErrorIs(err, ErrDuelNotFound)
	s.Nil(retrievedDuel)

	// The duel record itself remains until the winner claims
	retrievedDuel, err = s.repo.GetDuel(context.Background(), &GetDuelInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)
	s.Equal(models.DuelStatusFinished, retrievedDuel.Status)
}

func (s *RedisRepositoryTestSuite) TestDeleteDuel() {
	duel := s.testDuel()

	err := s.repo.SaveDuel(context.Background(), &SaveDuelInput{
		Duel: duel,
	})
	s.Require().NoError(err)

	err = s.repo.DeleteDuel(context.Background(), &DeleteDuelInput{
		DuelID: "test-duel-id",
	})
	s.Require().NoError(err)

	// The record and the challenger index are both gone
	_, err = s.repo.GetDuel(context.Background(), &GetDuelInput{
		DuelID: "test-duel-id",
	})
	s.ErrorIs(err, ErrDuelNotFound)

	_, err = s.repo.GetDuelByChallenger(context.Background(), &GetDuelByChallengerInput{
		ChallengerID: "test-challenger-id",
	})
	s.ErrorIs(err, ErrDuelNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteDuelNotFound() {
	err := s.repo.DeleteDuel(context.Background(), &DeleteDuelInput{
		DuelID: "nonexistent-duel-id",
	})
	s.ErrorIs(err, ErrDuelNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetOpenDuels() {
	// Save two open duels and one finished duel
	first := models.NewDuel("duel-1", "challenger-1", 100, s.testNow)
	second := models.NewDuel("duel-2", "challenger-2", 50, s.testNow)
	finished := models.NewDuel("duel-3", "challenger-3", 25, s.testNow)
	s.Require().NoError(finished.Accept("defender-3", s.testNow))
	finished.DefenderHealth = 1
	s.Require().NoError(finished.ApplyAttack("challenger-3", 10, s.testNow))

	for _, d := range []*models.Duel{first, second, finished} {
		err := s.repo.SaveDuel(context.Background(), &SaveDuelInput{
			Duel: d,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetOpenDuels(context.Background(), &GetOpenDuelsInput{})
	s.Require().NoError(err)
	s.Len(output.Duels, 2)

	ids := make([]string, 0, len(output.Duels))
	for _, d := range output.Duels {
		ids = append(ids, d.ID)
	}
	s.ElementsMatch([]string{"duel-1", "duel-2"}, ids)
}

func (s *RedisRepositoryTestSuite) TestGetOpenDuelsEmpty() {
	output, err := s.repo.GetOpenDuels(context.Background(), &GetOpenDuelsInput{})
	s.Require().NoError(err)
	s.Empty(output.Duels)
}
