package roll

import "github.com/dicetable/robbers/internal/models"

type AddRollInput struct {
	RoomID string
	Roll   *models.RollResult
}

type GetRollsForRoomInput struct {
	RoomID string
}

type GetRollsForRoomOutput struct {
	Rolls []*models.RollResult
}
