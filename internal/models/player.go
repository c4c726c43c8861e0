package models

import (
	"time"
)

// Player represents a seated player in a room
type Player struct {
	// ID is the stable identity of the player for this room membership
	ID string `json:"id"`

	// Name is the display name and the statistics key
	Name string `json:"name"`

	// SocketID is the current connection handle; reassigned when the same
	// name reconnects
	SocketID string `json:"socketId"`

	// JoinedAt is when the player first joined the room
	JoinedAt time.Time `json:"joinedAt"`
}
