package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound     GameError = "room not found"
	ErrRoomFull         GameError = "room is at maximum capacity"
	ErrNotYourTurn      GameError = "not your turn"
	ErrGameEnded        GameError = "game has ended"
	ErrPlayerNotFound   GameError = "player not found in room"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRoomRepo      GameError = "room repository cannot be nil"
	ErrNilRollRepo      GameError = "roll repository cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
