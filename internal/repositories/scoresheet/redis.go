package scoresheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/yahtzee/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoresheetKeyPrefix       = "scoresheet:"
	playerScoresheetKeyPrefix = "player_scoresheets:"
)

// ErrScoresheetNotFound is returned when a scoresheet is not found
var ErrScoresheetNotFound = errors.New("scoresheet not found")

// Config holds configuration for the Redis scoresheet repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed scoresheet repository
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

// SaveScoresheet persists a scoresheet to Redis
func (r *redisRepository) SaveScoresheet(ctx context.Context, input *SaveScoresheetInput) error {
	if input == nil || input.Scoresheet == nil {
		return errors.New("input and scoresheet cannot be nil")
	}

	sheet := input.Scoresheet

	// Ensure the scoresheet has an ID
	if sheet.ID == "" {
		return errors.New("scoresheet ID cannot be empty")
	}

	// Marshal the scoresheet to JSON
	sheetJSON, err := json.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("failed to marshal scoresheet: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the scoresheet
	sheetKey := fmt.Sprintf("%s%s", scoresheetKeyPrefix, sheet.ID)
	pipe.Set(ctx, sheetKey, sheetJSON, 0) // No expiration for now

	// If the scoresheet belongs to a player, index it under the player
	if sheet.PlayerID != "" {
		playerKey := fmt.Sprintf("%s%s", playerScoresheetKeyPrefix, sheet.PlayerID)
		pipe.SAdd(ctx, playerKey, sheet.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save scoresheet: %w", err)
	}

	return nil
}

// GetScoresheet retrieves a scoresheet by ID from Redis
func (r *redisRepository) GetScoresheet(ctx context.Context, input *GetScoresheetInput) (*models.Scoresheet, error) {
	if input == nil || input.ScoresheetID == "" {
		return nil, errors.New("input and scoresheet ID cannot be empty")
	}

	// Get the scoresheet from Redis
	sheetKey := fmt.Sprintf("%s%s", scoresheetKeyPrefix, input.ScoresheetID)
	sheetJSON, err := r.client.Get(ctx, sheetKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrScoresheetNotFound
		}
		return nil, fmt.Errorf("failed to get scoresheet: %w", err)
	}

	// Unmarshal the scoresheet from JSON
	var sheet models.Scoresheet
	if err := json.Unmarshal([]byte(sheetJSON), &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoresheet: %w", err)
	}

	return &sheet, nil
}

// GetScoresheetsByPlayer retrieves all scoresheets recorded for a player
func (r *redisRepository) GetScoresheetsByPlayer(ctx context.Context, input *GetScoresheetsByPlayerInput) (*GetScoresheetsByPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// Get the scoresheet IDs indexed under the player
	playerKey := fmt.Sprintf("%s%s", playerScoresheetKeyPrefix, input.PlayerID)
	sheetIDs, err := r.client.SMembers(ctx, playerKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player scoresheets: %w", err)
	}

	sheets := make([]*models.Scoresheet, 0, len(sheetIDs))
	for _, sheetID := range sheetIDs {
		sheet, err := r.GetScoresheet(ctx, &GetScoresheetInput{
			ScoresheetID: sheetID,
		})
		if err != nil {
			// Skip index entries whose scoresheet was deleted
			if errors.Is(err, ErrScoresheetNotFound) {
				continue
			}
			return nil, err
		}
		sheets = append(sheets, sheet)
	}

	return &GetScoresheetsByPlayerOutput{
		Scoresheets: sheets,
	}, nil
}

// DeleteScoresheet removes a scoresheet from Redis
func (r *redisRepository) DeleteScoresheet(ctx context.Context, input *DeleteScoresheetInput) error {
	if input == nil || input.ScoresheetID == "" {
		return errors.New("input and scoresheet ID cannot be empty")
	}

	// Fetch first so the player index can be cleaned up
	sheet, err := r.GetScoresheet(ctx, &GetScoresheetInput{
		ScoresheetID: input.ScoresheetID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	sheetKey := fmt.Sprintf("%s%s", scoresheetKeyPrefix, input.ScoresheetID)
	pipe.Del(ctx, sheetKey)

	if sheet.PlayerID != "" {
		playerKey := fmt.Sprintf("%s%s", playerScoresheetKeyPrefix, sheet.PlayerID)
		pipe.SRem(ctx, playerKey, input.ScoresheetID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scoresheet: %w", err)
	}

	return nil
}
