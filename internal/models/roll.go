package models

import (
	"time"
)

// RobbersSum is the dice sum that counts as a robbers roll
const RobbersSum = 7

// RollResult represents a single dice-pair roll in a room
type RollResult struct {
	// PlayerID is the ID of the player who made the roll
	PlayerID string `json:"playerId"`

	// PlayerName is the display name of the player who made the roll
	PlayerName string `json:"playerName"`

	// Dice1 is the face of the first die, 1..6
	Dice1 int `json:"dice1"`

	// Dice2 is the face of the second die, 1..6
	Dice2 int `json:"dice2"`

	// Sum is Dice1 + Dice2
	Sum int `json:"sum"`

	// Timestamp is when the roll was made
	Timestamp time.Time `json:"timestamp"`

	// IsRobbers indicates if the roll summed to 7
	IsRobbers bool `json:"isRobbers"`
}
