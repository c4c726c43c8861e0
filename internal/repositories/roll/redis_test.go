package roll

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dicetable/robbers/internal/models"
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
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAddAndGetRolls() {
	rollResult := &models.RollResult{
		PlayerID:   "player-1",
		PlayerName: "Alice",
		Dice1:      3,
		Dice2:      4,
		Sum:        7,
		Timestamp:  s.testNow,
		IsRobbers:  true,
	}

	err := s.repo.AddRoll(context.Background(), &AddRollInput{
		RoomID: "room-1",
		Roll:   rollResult,
	})
	s.Require().NoError(err)

	output, err := s.repo.GetRollsForRoom(context.Background(), &GetRollsForRoomInput{
		RoomID: "room-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rolls, 1)

	s.Equal("player-1", output.Rolls[0].PlayerID)
	s.Equal("Alice", output.Rolls[0].PlayerName)
	s.Equal(3, output.Rolls[0].Dice1)
	s.Equal(4, output.Rolls[0].Dice2)
	s.Equal(7, output.Rolls[0].Sum)
	s.Equal(s.testNow.Unix(), output.Rolls[0].Timestamp.Unix())
	s.True(output.Rolls[0].IsRobbers)
}

func (s *RedisRepositoryTestSuite) TestRollsKeptInAppendOrder() {
	rolls := []*models.RollResult{
		{PlayerID: "p1", PlayerName: "Alice", Dice1: 1, Dice2: 2, Sum: 3, Timestamp: s.testNow},
		{PlayerID: "p2", PlayerName: "Bob", Dice1: 5, Dice2: 2, Sum: 7, Timestamp: s.testNow.Add(time.Minute), IsRobbers: true},
		{PlayerID: "p1", PlayerName: "Alice", Dice1: 6, Dice2: 6, Sum: 12, Timestamp: s.testNow.Add(2 * time.Minute)},
	}

	for _, rollResult := range rolls {
		err := s.repo.AddRoll(context.Background(), &AddRollInput{
			RoomID: "room-1",
			Roll:   rollResult,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetRollsForRoom(context.Background(), &GetRollsForRoomInput{
		RoomID: "room-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rolls, 3)

	s.Equal(3, output.Rolls[0].Sum)
	s.Equal(7, output.Rolls[1].Sum)
	s.Equal(12, output.Rolls[2].Sum)
}

func (s *RedisRepositoryTestSuite) TestRollsAreKeyedByRoom() {
	err := s.repo.AddRoll(context.Background(), &AddRollInput{
		RoomID: "room-1",
		Roll:   &models.RollResult{PlayerName: "Alice", Dice1: 2, Dice2: 2, Sum: 4, Timestamp: s.testNow},
	})
	s.Require().NoError(err)

	err = s.repo.AddRoll(context.Background(), &AddRollInput{
		RoomID: "room-2",
		Roll:   &models.RollResult{PlayerName: "Bob", Dice1: 3, Dice2: 3, Sum: 6, Timestamp: s.testNow},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetRollsForRoom(context.Background(), &GetRollsForRoomInput{
		RoomID: "room-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rolls, 1)
	s.Equal("Alice", output.Rolls[0].PlayerName)
}

func (s *RedisRepositoryTestSuite) TestGetRollsForUnknownRoomReturnsEmpty() {
	output, err := s.repo.GetRollsForRoom(context.Background(), &GetRollsForRoomInput{
		RoomID: "missing",
	})
	s.Require().NoError(err)
	s.Empty(output.Rolls)
}
