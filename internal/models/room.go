package models

import (
	"sync"

	"github.com/dicetable/robbers/internal/dice"
)

const (
	// DefaultMaxPlayers is the room capacity used when the caller does not
	// supply one
	DefaultMaxPlayers = 2

	// MinPlayers is the minimum viable roster size; a room dropping below
	// this after a departure is destroyed
	MinPlayers = 2
)

// Room represents an isolated game session with its own roster, turn pointer,
// and statistics
type Room struct {
	// ID is the opaque room identifier
	ID string `json:"id"`

	// Players is the ordered roster; insertion order is seating/turn order
	Players []*Player `json:"players"`

	// CurrentTurn is the index into Players of the player whose roll is valid
	CurrentTurn int `json:"currentTurn"`

	// MaxPlayers is the fixed capacity decided at creation
	MaxPlayers int `json:"maxPlayers"`

	// GameStarted is true exactly while the roster is at capacity
	GameStarted bool `json:"gameStarted"`

	// GameEnded is the terminal flag; once true, rolls are ignored
	GameEnded bool `json:"gameEnded"`

	// Statistics holds per-player stats and the room robbers counter
	Statistics *RoomStatistics `json:"statistics"`

	// RollHistory is the append-only audit trail of every roll in the room
	RollHistory []*RollResult `json:"rollHistory"`

	// Shoe is the remaining dice-pair draws for the current shuffle epoch.
	// Never serialized: broadcasting it would disclose upcoming draws.
	Shoe dice.Drawer `json:"-"`

	// mu guards all mutable room state. One lock per room, never global, so
	// unrelated rooms are never serialized against each other.
	mu sync.Mutex
}

// Lock acquires the room's lock. All mutation and snapshotting must happen
// while it is held.
func (r *Room) Lock() {
	r.mu.Lock()
}

// Unlock releases the room's lock
func (r *Room) Unlock() {
	r.mu.Unlock()
}

// Snapshot returns a copy of the room safe to marshal and send after the
// lock is released. The caller must hold the lock.
func (r *Room) Snapshot() *Room {
	players := make([]*Player, len(r.Players))
	for i, p := range r.Players {
		copied := *p
		players[i] = &copied
	}

	stats := NewRoomStatistics()
	stats.RobbersCount = r.Statistics.RobbersCount
	for name, ps := range r.Statistics.Players {
		stats.Players[name] = copyPlayerStats(ps)
	}

	return &Room{
		ID:          r.ID,
		Players:     players,
		CurrentTurn: r.CurrentTurn,
		MaxPlayers:  r.MaxPlayers,
		GameStarted: r.GameStarted,
		GameEnded:   r.GameEnded,
		Statistics:  stats,
		RollHistory: copyRolls(r.RollHistory),
	}
}

func copyPlayerStats(ps *PlayerStats) *PlayerStats {
	diceStats := make(map[int]int, len(ps.DiceStats))
	for face, count := range ps.DiceStats {
		diceStats[face] = count
	}

	sumStats := make(map[int]int, len(ps.SumStats))
	for sum, count := range ps.SumStats {
		sumStats[sum] = count
	}

	return &PlayerStats{
		TotalRolls:  ps.TotalRolls,
		RollHistory: copyRolls(ps.RollHistory),
		DiceStats:   diceStats,
		SumStats:    sumStats,
	}
}

func copyRolls(rolls []*RollResult) []*RollResult {
	copied := make([]*RollResult, len(rolls))
	for i, roll := range rolls {
		r := *roll
		copied[i] = &r
	}
	return copied
}
