package game

import (
	"github.com/dicetable/robbers/internal/models"
)

// initPlayerStats creates a zeroed stats entry for the name if one does not
// exist. The caller must hold the room lock.
func initPlayerStats(room *models.Room, playerName string) {
	if _, ok := room.Statistics.Players[playerName]; ok {
		return
	}
	room.Statistics.Players[playerName] = models.NewPlayerStats()
}

// recordRoll folds a roll into the player's and the room's counters and
// appends it to both roll histories. The caller must hold the room lock.
func recordRoll(room *models.Room, rollResult *models.RollResult) {
	playerStats, ok := room.Statistics.Players[rollResult.PlayerName]
	if !ok {
		// Seated players always have a stats entry; guard anyway so a
		// roll never drops on the floor
		playerStats = models.NewPlayerStats()
		room.Statistics.Players[rollResult.PlayerName] = playerStats
	}

	playerStats.TotalRolls++
	playerStats.RollHistory = append(playerStats.RollHistory, rollResult)
	playerStats.DiceStats[rollResult.Dice1]++
	playerStats.DiceStats[rollResult.Dice2]++
	playerStats.SumStats[rollResult.Sum]++

	if rollResult.IsRobbers {
		room.Statistics.RobbersCount++
	}

	room.RollHistory = append(room.RollHistory, rollResult)
}

// removePlayerStats drops the stats entry for a departed player
func removePlayerStats(room *models.Room, playerName string) {
	delete(room.Statistics.Players, playerName)
}
