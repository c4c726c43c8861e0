package models

// PlayerStats accumulates roll statistics for a single player in a room
type PlayerStats struct {
	// TotalRolls is the number of accepted rolls by this player
	TotalRolls int `json:"totalRolls"`

	// RollHistory is the ordered sequence of this player's rolls
	RollHistory []*RollResult `json:"rollHistory"`

	// DiceStats maps die face 1..6 to occurrence count across both dice
	DiceStats map[int]int `json:"diceStats"`

	// SumStats maps dice sum 2..12 to occurrence count
	SumStats map[int]int `json:"sumStats"`
}

// NewPlayerStats creates a zeroed PlayerStats entry with every face and sum
// bucket present
func NewPlayerStats() *PlayerStats {
	diceStats := make(map[int]int, 6)
	for face := 1; face <= 6; face++ {
		diceStats[face] = 0
	}

	sumStats := make(map[int]int, 11)
	for sum := 2; sum <= 12; sum++ {
		sumStats[sum] = 0
	}

	return &PlayerStats{
		TotalRolls:  0,
		RollHistory: []*RollResult{},
		DiceStats:   diceStats,
		SumStats:    sumStats,
	}
}

// RoomStatistics holds per-player stats keyed by player name plus the
// room-level robbers counter
type RoomStatistics struct {
	// Players maps player name to that player's accumulated stats
	Players map[string]*PlayerStats `json:"players"`

	// RobbersCount is the number of rolls in this room that summed to 7
	RobbersCount int `json:"robbersCount"`
}

// NewRoomStatistics creates an empty statistics container
func NewRoomStatistics() *RoomStatistics {
	return &RoomStatistics{
		Players: make(map[string]*PlayerStats),
	}
}
