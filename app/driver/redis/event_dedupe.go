package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"growhub/app/port"
)

const dedupeKeyPrefix = "webhook:dedupe:"

// EventDedupe implements port.EventDedupe with Redis SETNX claims. A claim
// lives for the configured TTL, which bounds how long a redelivered message
// id is recognized as a duplicate.
type EventDedupe struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewEventDedupe creates a Redis-backed dedupe store
func NewEventDedupe(client *redis.Client, ttl time.Duration, logger *slog.Logger) port.EventDedupe {
	return &EventDedupe{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "event_dedupe"),
	}
}

// Begin claims the message id. It returns fresh=true when this delivery is
// the first within the TTL window.
func (d *EventDedupe) Begin(ctx context.Context, messageID string) (bool, error) {
	fresh, err := d.client.SetNX(ctx, dedupeKeyPrefix+messageID, time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim message id %s: %w", messageID, err)
	}

	if !fresh {
		d.logger.Info("duplicate webhook delivery detected", "message_id", messageID)
	}

	return fresh, nil
}

// Release frees the claim so the provider's redelivery of a failed event is
// processed instead of being dropped as a duplicate.
func (d *EventDedupe) Release(ctx context.Context, messageID string) error {
	if err := d.client.Del(ctx, dedupeKeyPrefix+messageID).Err(); err != nil {
		return fmt.Errorf("failed to release message id %s: %w", messageID, err)
	}
	return nil
}
