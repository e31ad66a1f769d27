package throttling

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestProbeThrottler_Unlimited(t *testing.T) {
	throttler := NewProbeThrottler(0)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		require.NoError(t, throttler.Throttle(ctx))
	}
}

func TestProbeThrottler_BlocksAtLimit(t *testing.T) {
	throttler := NewProbeThrottler(1)

	require.NoError(t, throttler.Throttle(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, throttler.Throttle(ctx))

	throttler.Release(context.Background())
	assert.NoError(t, throttler.Throttle(context.Background()))
}
