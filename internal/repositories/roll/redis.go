package roll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dicetable/robbers/internal/models"
)

const (
	// Key prefix for per-room roll logs
	roomRollsKeyPrefix = "room_rolls:"
)

// Config holds configuration for the Redis roll repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roll repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddRoll appends a roll to the room's roll log
func (r *redisRepository) AddRoll(ctx context.Context, input *AddRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	if input.RoomID == "" {
		return errors.New("room ID cannot be empty")
	}

	// Marshal the roll to JSON
	rollJSON, err := json.Marshal(input.Roll)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	// Append to the room's roll list
	roomKey := fmt.Sprintf("%s%s", roomRollsKeyPrefix, input.RoomID)
	if err := r.client.RPush(ctx, roomKey, rollJSON).Err(); err != nil {
		return fmt.Errorf("failed to append roll: %w", err)
	}

	return nil
}

// GetRollsForRoom retrieves all rolls for a room in append order
func (r *redisRepository) GetRollsForRoom(ctx context.Context, input *GetRollsForRoomInput) (*GetRollsForRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomRollsKeyPrefix, input.RoomID)
	rollJSONs, err := r.client.LRange(ctx, roomKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rolls for room: %w", err)
	}

	rolls := make([]*models.RollResult, 0, len(rollJSONs))
	for _, rollJSON := range rollJSONs {
		var rollResult models.RollResult
		if err := json.Unmarshal([]byte(rollJSON), &rollResult); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll: %w", err)
		}
		rolls = append(rolls, &rollResult)
	}

	return &GetRollsForRoomOutput{
		Rolls: rolls,
	}, nil
}
