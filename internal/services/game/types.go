package game

import (
	"github.com/dicetable/robbers/internal/common/clock"
	"github.com/dicetable/robbers/internal/common/uuid"
	"github.com/dicetable/robbers/internal/models"
	rollRepo "github.com/dicetable/robbers/internal/repositories/roll"
	roomRepo "github.com/dicetable/robbers/internal/repositories/room"
)

// Config holds configuration for the game service
type Config struct {
	// Room registry
	RoomRepo roomRepo.Repository

	// Durable roll log, written fire-and-forget on each accepted roll
	RollRepo rollRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	// RoomID is the identifier chosen by the creator
	RoomID string

	// MaxPlayers is the room capacity; zero means the default of 2
	MaxPlayers int
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// Room is a snapshot of the created room
	Room *models.Room
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// RoomID identifies the room; the room is created if absent
	RoomID string

	// PlayerName is the display name of the joining player
	PlayerName string

	// SocketID is the connection handle of the joining player
	SocketID string

	// MaxPlayers applies only when the join implicitly creates the room
	MaxPlayers int
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// Room is a snapshot of the room after the join
	Room *models.Room

	// Player is the joined (or reconnected) player
	Player *models.Player

	// Reconnected indicates the name was already seated and only the
	// socket id was updated
	Reconnected bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	RoomID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Room *models.Room
}

// StopGameInput contains parameters for ending a game
type StopGameInput struct {
	RoomID string
}

// StopGameOutput contains the result of ending a game
type StopGameOutput struct {
	Room *models.Room
}

// RollDiceInput contains parameters for rolling the dice
type RollDiceInput struct {
	// RoomID identifies the room
	RoomID string

	// PlayerName is the name of the player attempting to roll
	PlayerName string
}

// RollDiceOutput contains the result of a dice roll
type RollDiceOutput struct {
	// Room is a snapshot of the room after the roll
	Room *models.Room

	// Roll is the produced roll result
	Roll *models.RollResult
}

// ReorderPlayersInput contains parameters for reseating players
type ReorderPlayersInput struct {
	// RoomID identifies the room
	RoomID string

	// OrderedPlayerIDs is the desired seating order; ids not currently in
	// the room are dropped
	OrderedPlayerIDs []string
}

// ReorderPlayersOutput contains the result of reseating players
type ReorderPlayersOutput struct {
	Room *models.Room
}

// GetStatisticsInput contains parameters for a statistics read
type GetStatisticsInput struct {
	RoomID string
}

// GetStatisticsOutput contains the statistics snapshot
type GetStatisticsOutput struct {
	Room *models.Room
}

// LeaveRoomInput contains parameters for removing a player
type LeaveRoomInput struct {
	// RoomID identifies the room
	RoomID string

	// PlayerID is the stable id of the leaving player
	PlayerID string

	// SocketID is the leaving connection; matched when PlayerID misses
	SocketID string
}

// LeaveRoomOutput contains the result of removing a player
type LeaveRoomOutput struct {
	// Room is a snapshot of the room after the removal
	Room *models.Room

	// Removed is the player that left
	Removed *models.Player

	// RoomDeleted indicates the roster dropped below the minimum and the
	// room was destroyed
	RoomDeleted bool
}
