package throttling

import (
	"context"
	"github.com/1pkg/gohalt"
	"github.com/rs/zerolog/log"
)

// ProbeThrottler caps the number of probes in flight at the same time.
type ProbeThrottler struct {
	throttler gohalt.Throttler
}

func NewProbeThrottler(maxConcurrent int) *ProbeThrottler {
	var throttler gohalt.Throttler

	if maxConcurrent <= 0 {
		throttler = gohalt.NewThrottlerEcho(nil)
	} else {
		log.Info().Msgf("Creating probe throttler with %d concurrent probes", maxConcurrent)
		throttler = gohalt.NewThrottlerBuffered(uint64(maxConcurrent))
	}

	return &ProbeThrottler{throttler: throttler}
}

// Throttle blocks until a slot is free or ctx is done.
func (t *ProbeThrottler) Throttle(ctx context.Context) error {
	return t.throttler.Acquire(ctx)
}

func (t *ProbeThrottler) Release(ctx context.Context) {
	if err := t.throttler.Release(ctx); err != nil {
		log.Debug().Err(err).Msg("Could not release probe throttler")
	}
}
