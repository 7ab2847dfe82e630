package pet

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetPet() {
	pet := models.NewPetStats("test-player-id", s.testNow)
	pet.Hunger = 75

	// Save the pet
	err := s.repo.SavePet(context.Background(), &SavePetInput{
		Pet: pet,
	})
	s.Require().NoError(err)

	// Get the pet by owner
	retrievedPet, err := s.repo.GetPet(context.Background(), &GetPetInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Equal("test-player-id", retrievedPet.PlayerID)
	s.Equal(75, retrievedPet.Hunger)
	s.Equal(models.StatMax, retrievedPet.Energy)
	s.True(retrievedPet.LastSleptAt.Equal(s.testNow))
}

func (s *RedisRepositoryTestSuite) TestGetPetNotFound() {
	retrievedPet, err := s.repo.GetPet(context.Background(), &GetPetInput{
		PlayerID: "nonexistent-player-id",
	})
	s.ErrorIs(err, ErrPetNotFound)
	s.Nil(retrievedPet)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesPet() {
	pet := models.NewPetStats("test-player-id", s.testNow)

	err := s.repo.SavePet(context.Background(), &SavePetInput{
		Pet: pet,
	})
	s.Require().NoError(err)

	// Save again with decayed values
	pet.Energy = 40
	err = s.repo.SavePet(context.Background(), &SavePetInput{
		Pet: pet,
	})
	s.Require().NoError(err)

	retrievedPet, err := s.repo.GetPet(context.Background(), &GetPetInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)
	s.Equal(40, retrievedPet.Energy)
}

func (s *RedisRepositoryTestSuite) TestDeletePet() {
	pet := models.NewPetStats("test-player-id", s.testNow)

	err := s.repo.SavePet(context.Background(), &SavePetInput{
		Pet: pet,
	})
	s.Require().NoError(err)

	err = s.repo.DeletePet(context.Background(), &DeletePetInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPet(context.Background(), &GetPetInput{
		PlayerID: "test-player-id",
	})
	s.ErrorIs(err, ErrPetNotFound)

	// The pet no longer shows up in listings
	output, err := s.repo.ListPets(context.Background(), &ListPetsInput{})
	s.Require().NoError(err)
	s.Empty(output.Pets)
}

func (s *RedisRepositoryTestSuite) TestDeletePetNotFound() {
	err := s.repo.DeletePet(context.Background(), &DeletePetInput{
		PlayerID: "nonexistent-player-id",
	})
	s.ErrorIs(err, ErrPetNotFound)
}

func (s *RedisRepositoryTestSuite) TestListPets() {
	for _, playerID := range []string{"player-1", "player-2", "player-3"} {
		err := s.repo.SavePet(context.Background(), &SavePetInput{
			Pet: models.NewPetStats(playerID, s.testNow),
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListPets(context.Background(), &ListPetsInput{})
	s.Require().NoError(err)
	s.Len(output.Pets, 3)

	owners := make([]string, 0, len(output.Pets))
	for _, pet := range output.Pets {
		owners = append(owners, pet.PlayerID)
	}
	s.ElementsMatch([]string{"player-1", "player-2", "player-3"}, owners)
}

func (s *RedisRepositoryTestSuite) TestListPetsEmpty() {
	output, err := s.repo.ListPets(context.Background(), &ListPetsInput{})
	s.Require().NoError(err)
	s.Empty(output.Pets)
}
