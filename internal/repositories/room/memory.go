package room

import (
	"context"
	"errors"
	"sync"

	"github.com/dicetable/robbers/internal/dice"
	"github.com/dicetable/robbers/internal/models"
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// Config holds configuration for the in-memory room registry
type Config struct {
	// ShoeFactory builds the dice shoe attached to each new room; defaults
	// to a crypto-random shoe
	ShoeFactory func() dice.Drawer
}

// memoryRepository implements the Repository interface with a process-wide
// in-memory map. Room state lives in one process's memory; there is no
// persistence across restarts.
type memoryRepository struct {
	mu      sync.RWMutex
	rooms   map[string]*models.Room
	newShoe func() dice.Drawer
}

// NewMemory creates a new in-memory room registry
func NewMemory(cfg *Config) (*memoryRepository, error) {
	newShoe := func() dice.Drawer {
		return dice.New(nil)
	}
	if cfg != nil && cfg.ShoeFactory != nil {
		newShoe = cfg.ShoeFactory
	}

	return &memoryRepository{
		rooms:   make(map[string]*models.Room),
		newShoe: newShoe,
	}, nil
}

// CreateRoom inserts a fresh room at the given id; last writer wins
func (r *memoryRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	newRoom := r.buildRoom(input.RoomID, input.MaxPlayers)

	r.mu.Lock()
	r.rooms[input.RoomID] = newRoom
	r.mu.Unlock()

	return newRoom, nil
}

// GetRoom retrieves a room by ID
func (r *memoryRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	r.mu.RLock()
	existing, ok := r.rooms[input.RoomID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrRoomNotFound
	}

	return existing, nil
}

// GetOrCreateRoom retrieves a room, creating it first if absent
func (r *memoryRepository) GetOrCreateRoom(ctx context.Context, input *GetOrCreateRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rooms[input.RoomID]; ok {
		return existing, nil
	}

	newRoom := r.buildRoom(input.RoomID, input.MaxPlayers)
	r.rooms[input.RoomID] = newRoom

	return newRoom, nil
}

// DeleteRoom removes a room from the registry
func (r *memoryRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[input.RoomID]; !ok {
		return ErrRoomNotFound
	}

	delete(r.rooms, input.RoomID)

	return nil
}

// buildRoom constructs an empty room with its own dice shoe
func (r *memoryRepository) buildRoom(roomID string, maxPlayers int) *models.Room {
	if maxPlayers == 0 {
		maxPlayers = models.DefaultMaxPlayers
	}
	if maxPlayers < models.MinPlayers {
		maxPlayers = models.MinPlayers
	}

	return &models.Room{
		ID:          roomID,
		Players:     []*models.Player{},
		CurrentTurn: 0,
		MaxPlayers:  maxPlayers,
		Statistics:  models.NewRoomStatistics(),
		RollHistory: []*models.RollResult{},
		Shoe:        r.newShoe(),
	}
}
