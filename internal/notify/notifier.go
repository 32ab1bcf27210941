package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// StreakEvent is published whenever a user's streak changes after a completed session.
type StreakEvent struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	CurrentStreak int       `json:"currentStreak"`
	At            time.Time `json:"at"`
}

// RedisNotifier publishes streak events on a per-user redis channel.
// Delivery to connected clients is owned by whoever subscribes.
type RedisNotifier struct {
	redisClient   *redis.Client
	channelPrefix string
	now           func() time.Time
	newID         func() string
}

func NewRedisNotifier(redisClient *redis.Client, channelPrefix string) *RedisNotifier {
	return &RedisNotifier{
		redisClient:   redisClient,
		channelPrefix: channelPrefix,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Channel is the pub/sub channel a user's live clients subscribe to.
func (n *RedisNotifier) Channel(userID string) string {
	return n.channelPrefix + ":" + userID
}

func (n *RedisNotifier) EmitStreakUpdate(ctx context.Context, userID string, currentStreak int) error {
	payload, err := json.Marshal(StreakEvent{
		ID:            n.newID(),
		UserID:        userID,
		CurrentStreak: currentStreak,
		At:            n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal streak event: %w", err)
	}

	if err := n.redisClient.Publish(ctx, n.Channel(userID), string(payload)).Err(); err != nil {
		return fmt.Errorf("publish streak event: %w", err)
	}
	return nil
}
