package game

import (
	"context"
	"errors"
	"log"

	"github.com/dicetable/robbers/internal/common/clock"
	"github.com/dicetable/robbers/internal/common/uuid"
	"github.com/dicetable/robbers/internal/models"
	rollRepo "github.com/dicetable/robbers/internal/repositories/roll"
	roomRepo "github.com/dicetable/robbers/internal/repositories/room"
)

// service implements the Service interface
type service struct {
	roomRepo      roomRepo.Repository
	rollRepo      rollRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.RollRepo == nil {
		return nil, ErrNilRollRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		roomRepo:      cfg.RoomRepo,
		rollRepo:      cfg.RollRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateRoom creates a room, replacing any existing room at the same id
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	created, err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{
		RoomID:     input.RoomID,
		MaxPlayers: input.MaxPlayers,
	})
	if err != nil {
		return nil, err
	}

	created.Lock()
	snapshot := created.Snapshot()
	created.Unlock()

	return &CreateRoomOutput{
		Room: snapshot,
	}, nil
}

// JoinRoom adds a player to a room or reconnects an existing one
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	current, err := s.roomRepo.GetOrCreateRoom(ctx, &roomRepo.GetOrCreateRoomInput{
		RoomID:     input.RoomID,
		MaxPlayers: input.MaxPlayers,
	})
	if err != nil {
		return nil, err
	}

	current.Lock()
	defer current.Unlock()

	// Reconnect path: the name already holds a seat, only the connection
	// handle changes
	for _, p := range current.Players {
		if p.Name == input.PlayerName {
			p.SocketID = input.SocketID
			joined := *p

			return &JoinRoomOutput{
				Room:        current.Snapshot(),
				Player:      &joined,
				Reconnected: true,
			}, nil
		}
	}

	if len(current.Players) >= current.MaxPlayers {
		return nil, ErrRoomFull
	}

	player := &models.Player{
		ID:       s.uuidGenerator.NewUUID(),
		Name:     input.PlayerName,
		SocketID: input.SocketID,
		JoinedAt: s.clock.Now(),
	}
	current.Players = append(current.Players, player)

	// The game starts exactly when the roster reaches capacity
	if len(current.Players) == current.MaxPlayers {
		current.GameStarted = true
	}

	initPlayerStats(current, input.PlayerName)

	joined := *player

	return &JoinRoomOutput{
		Room:   current.Snapshot(),
		Player: &joined,
	}, nil
}

// StartGame forces a room into the started state
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	current.Lock()
	current.GameStarted = true
	snapshot := current.Snapshot()
	current.Unlock()

	return &StartGameOutput{
		Room: snapshot,
	}, nil
}

// StopGame marks a room's game as ended
func (s *service) StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	current.Lock()
	current.GameEnded = true
	snapshot := current.Snapshot()
	current.Unlock()

	return &StopGameOutput{
		Room: snapshot,
	}, nil
}

// RollDice draws a dice pair for the current player and advances the turn
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	current.Lock()
	defer current.Unlock()

	if current.GameEnded {
		return nil, ErrGameEnded
	}

	if !validateTurn(current, input.PlayerName) {
		return nil, ErrNotYourTurn
	}

	currentPlayer := current.Players[current.CurrentTurn]

	dice1, dice2 := current.Shoe.DrawPair()
	sum := dice1 + dice2

	rollResult := &models.RollResult{
		PlayerID:   currentPlayer.ID,
		PlayerName: currentPlayer.Name,
		Dice1:      dice1,
		Dice2:      dice2,
		Sum:        sum,
		Timestamp:  s.clock.Now(),
		IsRobbers:  sum == models.RobbersSum,
	}

	recordRoll(current, rollResult)
	advanceTurn(current)

	// Fire-and-forget persistence: a slow or failing sink must never block
	// or fail the roll
	persisted := *rollResult
	go s.persistRoll(input.RoomID, &persisted)

	roll := *rollResult

	return &RollDiceOutput{
		Room: current.Snapshot(),
		Roll: &roll,
	}, nil
}

// ReorderPlayers applies a new seating order to a room
func (s *service) ReorderPlayers(ctx context.Context, input *ReorderPlayersInput) (*ReorderPlayersOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	current.Lock()
	applyPlayerOrder(current, input.OrderedPlayerIDs)
	snapshot := current.Snapshot()
	current.Unlock()

	return &ReorderPlayersOutput{
		Room: snapshot,
	}, nil
}

// GetStatistics returns the room with its current statistics
func (s *service) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	current.Lock()
	snapshot := current.Snapshot()
	current.Unlock()

	return &GetStatisticsOutput{
		Room: snapshot,
	}, nil
}

// LeaveRoom removes a player from a room, destroying the room if the roster
// drops below the minimum viable size
func (s *service) LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error) {
	current, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	current.Lock()

	removedIndex := -1
	for i, p := range current.Players {
		if p.ID == input.PlayerID || (input.SocketID != "" && p.SocketID == input.SocketID) {
			removedIndex = i
			break
		}
	}

	if removedIndex == -1 {
		current.Unlock()
		return nil, ErrPlayerNotFound
	}

	removed := *current.Players[removedIndex]
	current.Players = append(current.Players[:removedIndex], current.Players[removedIndex+1:]...)

	removePlayerStats(current, removed.Name)
	repairTurnAfterRemoval(current, removedIndex)

	// A room that was started only by being full is no longer started
	if len(current.Players) < current.MaxPlayers {
		current.GameStarted = false
	}

	roomDeleted := len(current.Players) < models.MinPlayers
	snapshot := current.Snapshot()
	current.Unlock()

	if roomDeleted {
		if err := s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{RoomID: input.RoomID}); err != nil {
			return nil, err
		}
	}

	return &LeaveRoomOutput{
		Room:        snapshot,
		Removed:     &removed,
		RoomDeleted: roomDeleted,
	}, nil
}

// getRoom looks up a room, mapping the registry's not-found to the service
// error
func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	current, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: roomID})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return current, nil
}

// persistRoll appends a roll to the durable log; failures are logged and
// never surfaced
func (s *service) persistRoll(roomID string, rollResult *models.RollResult) {
	err := s.rollRepo.AddRoll(context.Background(), &rollRepo.AddRollInput{
		RoomID: roomID,
		Roll:   rollResult,
	})
	if err != nil {
		log.Printf("failed to persist roll for room %s: %v", roomID, err)
	}
}
