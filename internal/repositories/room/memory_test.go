package room

import (
	"context"
	"testing"

	"github.com/dicetable/robbers/internal/models"
	"github.com/stretchr/testify/suite"
)

type MemoryRepositoryTestSuite struct {
	suite.Suite
	repo Repository
	ctx  context.Context
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	repo, err := NewMemory(nil)
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

func (s *MemoryRepositoryTestSuite) TestCreateRoom() {
	created, err := s.repo.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:     "ABCD",
		MaxPlayers: 4,
	})
	s.Require().NoError(err)

	s.Equal("ABCD", created.ID)
	s.Equal(4, created.MaxPlayers)
	s.Equal(0, created.CurrentTurn)
	s.Empty(created.Players)
	s.False(created.GameStarted)
	s.False(created.GameEnded)
	s.NotNil(created.Statistics)
	s.NotNil(created.Shoe)
}

func (s *MemoryRepositoryTestSuite) TestCreateRoomDefaultsCapacity() {
	created, err := s.repo.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID: "ABCD",
	})
	s.Require().NoError(err)

	s.Equal(models.DefaultMaxPlayers, created.MaxPlayers)
}

func (s *MemoryRepositoryTestSuite) TestCreateRoomClampsCapacityToMinimum() {
	created, err := s.repo.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:     "ABCD",
		MaxPlayers: 1,
	})
	s.Require().NoError(err)

	s.Equal(models.MinPlayers, created.MaxPlayers)
}

func (s *MemoryRepositoryTestSuite) TestCreateRoomOverwritesExisting() {
	first, err := s.repo.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:     "ABCD",
		MaxPlayers: 2,
	})
	s.Require().NoError(err)

	first.Lock()
	first.GameStarted = true
	first.Unlock()

	// Idempotent creation: last writer wins.
	replaced, err := s.repo.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:     "ABCD",
		MaxPlayers: 3,
	})
	s.Require().NoError(err)

	s.False(replaced.GameStarted)
	s.Equal(3, replaced.MaxPlayers)

	got, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "ABCD"})
	s.Require().NoError(err)
	s.Same(replaced, got)
}

func (s *MemoryRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "missing"})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *MemoryRepositoryTestSuite) TestGetOrCreateRoom() {
	created, err := s.repo.GetOrCreateRoom(s.ctx, &GetOrCreateRoomInput{
		RoomID: "ABCD",
	})
	s.Require().NoError(err)
	s.Equal(models.DefaultMaxPlayers, created.MaxPlayers)

	// A second call returns the same room, ignoring the new capacity.
	again, err := s.repo.GetOrCreateRoom(s.ctx, &GetOrCreateRoomInput{
		RoomID:     "ABCD",
		MaxPlayers: 6,
	})
	s.Require().NoError(err)
	s.Same(created, again)
	s.Equal(models.DefaultMaxPlayers, again.MaxPlayers)
}

func (s *MemoryRepositoryTestSuite) TestDeleteRoom() {
	_, err := s.repo.CreateRoom(s.ctx, &CreateRoomInput{RoomID: "ABCD"})
	s.Require().NoError(err)

	err = s.repo.DeleteRoom(s.ctx, &DeleteRoomInput{RoomID: "ABCD"})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: "ABCD"})
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *MemoryRepositoryTestSuite) TestDeleteRoomNotFound() {
	err := s.repo.DeleteRoom(s.ctx, &DeleteRoomInput{RoomID: "missing"})
	s.ErrorIs(err, ErrRoomNotFound)
}
