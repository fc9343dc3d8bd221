// Package redis publishes keyword status changes over Redis pub/sub.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"keyword-dashboard/internal/core/domain"
	"keyword-dashboard/internal/core/port"
)

var _ port.ChangeNotifier = (*ChangeNotifier)(nil)

// EventStatusChanged is the type of every published status event.
const EventStatusChanged = "EVENT_KEYWORD_STATUS_CHANGED"

// Publisher is the subset of *redis.Client used by ChangeNotifier.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// StatusChangedEvent is the JSON payload published for a transition.
type StatusChangedEvent struct {
	Type  string                `json:"type"`
	Entry domain.ChangeLogEntry `json:"entry"`
}

// ChangeNotifier publishes committed status transitions on a channel.
type ChangeNotifier struct {
	rdb     Publisher
	channel string
}

// NewChangeNotifier returns a notifier publishing on channel.
func NewChangeNotifier(rdb Publisher, channel string) *ChangeNotifier {
	return &ChangeNotifier{rdb: rdb, channel: channel}
}

// NotifyStatusChange publishes entry as a StatusChangedEvent.
func (n *ChangeNotifier) NotifyStatusChange(ctx context.Context, entry domain.ChangeLogEntry) error {
	payload, err := json.Marshal(StatusChangedEvent{Type: EventStatusChanged, Entry: entry})
	if err != nil {
		return fmt.Errorf("marshal status event: %w", err)
	}
	if err = n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", n.channel, err)
	}
	return nil
}
