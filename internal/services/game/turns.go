package game

import (
	"github.com/dicetable/robbers/internal/models"
)

// validateTurn reports whether it is the named player's turn. The caller must
// hold the room lock.
func validateTurn(room *models.Room, playerName string) bool {
	if len(room.Players) == 0 {
		return false
	}
	return room.Players[room.CurrentTurn].Name == playerName
}

// advanceTurn moves the turn pointer to the next seat; no-op on an empty
// roster
func advanceTurn(room *models.Room) {
	if len(room.Players) == 0 {
		return
	}
	room.CurrentTurn = (room.CurrentTurn + 1) % len(room.Players)
}

// repairTurnAfterRemoval keeps the turn pointer valid after the seat at
// removedIndex was vacated, preserving relative turn order for the remaining
// players.
func repairTurnAfterRemoval(room *models.Room, removedIndex int) {
	if len(room.Players) == 0 {
		room.CurrentTurn = 0
	} else if removedIndex < room.CurrentTurn {
		room.CurrentTurn--
	} else if room.CurrentTurn >= len(room.Players) {
		room.CurrentTurn = 0
	}
}

// applyPlayerOrder reseats the roster to follow the given id permutation,
// dropping ids that are not currently present. The turn pointer keeps its
// positional index; it may now point at a different player.
func applyPlayerOrder(room *models.Room, orderedPlayerIDs []string) {
	byID := make(map[string]*models.Player, len(room.Players))
	for _, p := range room.Players {
		byID[p.ID] = p
	}

	reordered := make([]*models.Player, 0, len(room.Players))
	for _, id := range orderedPlayerIDs {
		if p, ok := byID[id]; ok {
			reordered = append(reordered, p)
		}
	}

	room.Players = reordered

	if room.CurrentTurn >= len(room.Players) {
		room.CurrentTurn = 0
	}
}
