package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyword-dashboard/internal/adapter/redis"
	"keyword-dashboard/internal/core/domain"
)

type fakePublisher struct {
	channel string
	message []byte
	err     error
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *goredis.IntCmd {
	f.channel = channel
	f.message, _ = message.([]byte)
	cmd := goredis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func TestChangeNotifier_Publishes(t *testing.T) {
	pub := &fakePublisher{}
	n := redis.NewChangeNotifier(pub, "keywords.status_changed")

	entry := domain.ChangeLogEntry{
		ID:        uuid.New(),
		KeywordID: uuid.New(),
		OldStatus: domain.StatusActive,
		NewStatus: domain.StatusPaused,
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, n.NotifyStatusChange(context.Background(), entry))

	assert.Equal(t, "keywords.status_changed", pub.channel)
	var got redis.StatusChangedEvent
	require.NoError(t, json.Unmarshal(pub.message, &got))
	assert.Equal(t, redis.EventStatusChanged, got.Type)
	assert.Equal(t, entry.KeywordID, got.Entry.KeywordID)
	assert.Equal(t, domain.StatusPaused, got.Entry.NewStatus)
	assert.True(t, entry.Timestamp.Equal(got.Entry.Timestamp))
}

func TestChangeNotifier_PublishError(t *testing.T) {
	boom := errors.New("connection refused")
	n := redis.NewChangeNotifier(&fakePublisher{err: boom}, "kw")

	err := n.NotifyStatusChange(context.Background(), domain.ChangeLogEntry{KeywordID: uuid.New()})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "publish kw")
}
