package streak

import (
	"alcyxob/workout-sessions/internal/domain"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "streak:"

// RedisTracker keeps a consecutive-day activity counter per user in redis.
// Two keys per user: the current count and the last date the user was active.
type RedisTracker struct {
	redisClient *redis.Client
	now         func() time.Time
}

func NewRedisTracker(redisClient *redis.Client) *RedisTracker {
	return &RedisTracker{
		redisClient: redisClient,
		now:         time.Now,
	}
}

func currentKey(userID string) string {
	return keyPrefix + userID + ":current"
}

func lastActiveKey(userID string) string {
	return keyPrefix + userID + ":last_active"
}

func (t *RedisTracker) days() (today, yesterday string) {
	now := t.now().UTC()
	return now.Format(domain.DateLayout), now.AddDate(0, 0, -1).Format(domain.DateLayout)
}

// maxTxRetries bounds optimistic retries when another completion for the same user
// touches the streak keys between read and write.
const maxTxRetries = 3

// UpdateUserStreak registers activity for today. Activity yesterday extends the streak,
// activity already registered today is a no-op, anything else restarts it at 1.
// Read and write run under WATCH so concurrent completions count once.
func (t *RedisTracker) UpdateUserStreak(ctx context.Context, userID string) error {
	today, yesterday := t.days()

	var lastActive string
	update := func(tx *redis.Tx) error {
		var err error
		lastActive, err = getLastActive(ctx, tx, userID)
		if err != nil {
			return err
		}
		if lastActive == today {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if lastActive == yesterday {
				pipe.Incr(ctx, currentKey(userID))
			} else {
				pipe.Set(ctx, currentKey(userID), 1, 0)
			}
			pipe.Set(ctx, lastActiveKey(userID), today, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := t.redisClient.Watch(ctx, update, currentKey(userID), lastActiveKey(userID))
		if errors.Is(err, redis.TxFailedErr) {
			log.Debugf("streak for user %s changed concurrently, retrying", userID)
			continue
		}
		if err != nil {
			return fmt.Errorf("update streak: %w", err)
		}

		log.Debugf("streak updated for user %s (last active: %q)", userID, lastActive)
		return nil
	}
	return fmt.Errorf("update streak after %d attempts: %w", maxTxRetries, redis.TxFailedErr)
}

// CheckAndResetUserStreak returns the authoritative streak, zeroing it first
// when the user has not been active since before yesterday.
func (t *RedisTracker) CheckAndResetUserStreak(ctx context.Context, userID string) (int, error) {
	today, yesterday := t.days()

	lastActive, err := getLastActive(ctx, t.redisClient, userID)
	if err != nil {
		return 0, err
	}
	if lastActive == "" {
		return 0, nil
	}

	if lastActive != today && lastActive != yesterday {
		if err := t.redisClient.Set(ctx, currentKey(userID), 0, 0).Err(); err != nil {
			return 0, fmt.Errorf("reset streak: %w", err)
		}
		return 0, nil
	}

	current, err := t.redisClient.Get(ctx, currentKey(userID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get streak: %w", err)
	}
	return current, nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func getLastActive(ctx context.Context, client stringGetter, userID string) (string, error) {
	lastActive, err := client.Get(ctx, lastActiveKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get last active: %w", err)
	}
	return lastActive, nil
}
