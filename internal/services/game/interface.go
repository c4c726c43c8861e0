package game

import "context"

// Service defines the interface for room and game operations
type Service interface {
	// CreateRoom creates a room, replacing any existing room at the same id
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to a room or reconnects an existing one
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartGame forces a room into the started state
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// StopGame marks a room's game as ended; further rolls are ignored
	StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error)

	// RollDice draws a dice pair for the current player and advances the turn
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// ReorderPlayers applies a new seating order to a room
	ReorderPlayers(ctx context.Context, input *ReorderPlayersInput) (*ReorderPlayersOutput, error)

	// GetStatistics returns the room with its current statistics
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)

	// LeaveRoom removes a player from a room, destroying the room if the
	// roster drops below the minimum viable size
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)
}
