package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growhub/app/utils/logger"
)

func newTestDedupe(t *testing.T) (*EventDedupe, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewEventDedupe(client, time.Hour, testLogger).(*EventDedupe), mr
}

func TestEventDedupe_Begin(t *testing.T) {
	dedupe, _ := newTestDedupe(t)
	ctx := context.Background()

	fresh, err := dedupe.Begin(ctx, "msg_001")
	require.NoError(t, err)
	assert.True(t, fresh, "first delivery should be fresh")

	fresh, err = dedupe.Begin(ctx, "msg_001")
	require.NoError(t, err)
	assert.False(t, fresh, "redelivery within the TTL should be a duplicate")

	fresh, err = dedupe.Begin(ctx, "msg_002")
	require.NoError(t, err)
	assert.True(t, fresh, "a different message id is independent")
}

func TestEventDedupe_Release(t *testing.T) {
	dedupe, _ := newTestDedupe(t)
	ctx := context.Background()

	fresh, err := dedupe.Begin(ctx, "msg_001")
	require.NoError(t, err)
	require.True(t, fresh)

	require.NoError(t, dedupe.Release(ctx, "msg_001"))

	fresh, err = dedupe.Begin(ctx, "msg_001")
	require.NoError(t, err)
	assert.True(t, fresh, "released claim should accept the redelivery")
}

func TestEventDedupe_ClaimExpires(t *testing.T) {
	dedupe, mr := newTestDedupe(t)
	ctx := context.Background()

	fresh, err := dedupe.Begin(ctx, "msg_001")
	require.NoError(t, err)
	require.True(t, fresh)

	mr.FastForward(2 * time.Hour)

	fresh, err = dedupe.Begin(ctx, "msg_001")
	require.NoError(t, err)
	assert.True(t, fresh, "claim past the TTL window is forgotten")
}

func TestEventDedupe_RedisDown(t *testing.T) {
	dedupe, mr := newTestDedupe(t)
	mr.Close()

	_, err := dedupe.Begin(context.Background(), "msg_001")
	assert.Error(t, err)
}
