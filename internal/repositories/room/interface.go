package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/dicetable/robbers/internal/repositories/room Repository

import (
	"context"

	"github.com/dicetable/robbers/internal/models"
)

// Repository defines the interface for the room registry
type Repository interface {
	// CreateRoom inserts a fresh room, overwriting any existing room at the
	// same id
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*models.Room, error)

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetOrCreateRoom retrieves a room or creates one if absent
	GetOrCreateRoom(ctx context.Context, input *GetOrCreateRoomInput) (*models.Room, error)

	// DeleteRoom removes a room
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}
