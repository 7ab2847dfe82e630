package custody

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisLockerTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	locker Locker
}

func (s *RedisLockerTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	locker, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.locker = locker
}

func (s *RedisLockerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisLockerTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerTestSuite))
}

func (s *RedisLockerTestSuite) TestLockAndUnlock() {
	err := s.locker.Lock(context.Background(), &LockInput{
		PlayerID: "test-player-id",
		TokenRef: "test-token-ref",
	})
	s.Require().NoError(err)

	err = s.locker.Unlock(context.Background(), &UnlockInput{
		PlayerID: "test-player-id",
	})
	s.Require().NoError(err)

	// The player can lock again after getting their token back
	err = s.locker.Lock(context.Background(), &LockInput{
		PlayerID: "test-player-id",
		TokenRef: "test-token-ref",
	})
	s.NoError(err)
}

func (s *RedisLockerTestSuite) TestDoubleLock() {
	err := s.locker.Lock(context.Background(), &LockInput{
		PlayerID: "test-player-id",
		TokenRef: "test-token-ref",
	})
	s.Require().NoError(err)

	err = s.locker.Lock(context.Background(), &LockInput{
		PlayerID: "test-player-id",
		TokenRef: "another-token-ref",
	})
	s.ErrorIs(err, ErrAlreadyDeposited)
}

func (s *RedisLockerTestSuite) TestUnlockWithoutLock() {
	err := s.locker.Unlock(context.Background(), &UnlockInput{
		PlayerID: "test-player-id",
	})
	s.ErrorIs(err, ErrNotDeposited)
}
