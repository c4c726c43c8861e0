package roll

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dicetable/robbers/internal/repositories/roll Repository

import (
	"context"
)

// Repository defines the interface for the durable roll log
type Repository interface {
	// AddRoll appends a roll to the room's roll log
	AddRoll(ctx context.Context, input *AddRollInput) error

	// GetRollsForRoom retrieves all rolls for a room in append order
	GetRollsForRoom(ctx context.Context, input *GetRollsForRoomInput) (*GetRollsForRoomOutput, error)
}
