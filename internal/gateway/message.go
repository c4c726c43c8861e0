package gateway

import (
	"encoding/json"

	"github.com/dicetable/robbers/internal/models"
)

// Inbound event names
const (
	EventCreateRoom     = "create-room"
	EventJoinGame       = "join-game"
	EventStartGame      = "start-game"
	EventRollDice       = "roll-dice"
	EventReorderPlayers = "reorder-players"
	EventGetStatistics  = "get-statistics"
	EventStopGame       = "stop-game"
	EventPlayerLeft     = "player-left"
)

// Outbound event names
const (
	EventRoomCreated     = "room-created"
	EventPlayerConnected = "player-connected"
	EventPlayerJoined    = "player-joined"
	EventGameState       = "game-state"
	EventDiceRolled      = "dice-rolled"
	EventGameStarted     = "game-started"
	EventStatisticsData  = "statistics-data"
	EventUserLeftRoom    = "user-left-room"
	EventRoomFull        = "room-full"
	EventNotYourTurn     = "not-your-turn"
	EventError           = "error"
)

// Message is the envelope for all traffic on the event channel. The payload
// stays raw JSON until the event name decides its shape.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// CreateRoomPayload is the inbound payload for create-room
type CreateRoomPayload struct {
	RoomID     string `json:"roomId"`
	MaxPlayers int    `json:"maxPlayers"`
}

// JoinGamePayload is the inbound payload for join-game
type JoinGamePayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
	MaxPlayers int    `json:"maxPlayers,omitempty"`
}

// RoomPayload is the inbound payload for events addressing a room
type RoomPayload struct {
	RoomID string `json:"roomId"`
}

// RollDicePayload is the inbound payload for roll-dice
type RollDicePayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

// ReorderPlayersPayload is the inbound payload for reorder-players
type ReorderPlayersPayload struct {
	RoomID           string   `json:"roomId"`
	OrderedPlayerIDs []string `json:"orderedPlayerIds"`
}

// PlayerLeftPayload is the inbound payload for player-left
type PlayerLeftPayload struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

// RoomCreatedPayload is the outbound payload for room-created
type RoomCreatedPayload struct {
	RoomID string `json:"roomId"`
}

// PlayerRoomPayload is the outbound payload for player-connected and
// player-joined
type PlayerRoomPayload struct {
	Player *models.Player `json:"player"`
	Room   *models.Room   `json:"room"`
}

// DiceRolledPayload is the outbound payload for dice-rolled
type DiceRolledPayload struct {
	RollResult *models.RollResult `json:"rollResult"`
}

// UserLeftRoomPayload is the outbound payload for user-left-room
type UserLeftRoomPayload struct {
	PlayerID   string       `json:"playerId"`
	PlayerName string       `json:"playerName"`
	Room       *models.Room `json:"room"`
}

// ErrorPayload is the outbound payload for the generic error event
type ErrorPayload struct {
	Message string `json:"message"`
}

// newMessage wraps a payload into the event envelope
func newMessage(event string, payload any) (Message, error) {
	if payload == nil {
		return Message{Event: event}, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Event: event, Data: data}, nil
}
