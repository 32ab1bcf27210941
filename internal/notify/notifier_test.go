package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func newTestNotifier() (*RedisNotifier, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	notifier := NewRedisNotifier(db, "streak")
	notifier.now = func() time.Time {
		return time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	}
	notifier.newID = func() string {
		return "evt-1"
	}
	return notifier, mock
}

func TestRedisNotifier_EmitStreakUpdate(t *testing.T) {
	notifier, mock := newTestNotifier()
	assert.Equal(t, "streak:u1", notifier.Channel("u1"))

	expectedPayload := `{"id":"evt-1","userId":"u1","currentStreak":3,"at":"2024-03-10T18:30:00Z"}`
	mock.ExpectPublish("streak:u1", expectedPayload).SetVal(1)

	require.NoError(t, notifier.EmitStreakUpdate(context.Background(), "u1", 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisNotifier_EmitStreakUpdate_PublishFails(t *testing.T) {
	notifier, mock := newTestNotifier()

	expectedPayload := `{"id":"evt-1","userId":"u1","currentStreak":0,"at":"2024-03-10T18:30:00Z"}`
	mock.ExpectPublish("streak:u1", expectedPayload).SetErr(errors.New("redis gone"))

	err := notifier.EmitStreakUpdate(context.Background(), "u1", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish streak event")
}
