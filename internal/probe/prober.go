// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"github.com/rs/zerolog/log"
	"io"
	"net"
	"net/http"
	"time"
	"uptime-warden/internal/check"
	"uptime-warden/internal/throttling"
)

// Prober issues exactly one request per call and always resolves to an outcome.
type Prober struct {
	client    *http.Client
	throttler *throttling.ProbeThrottler
}

func NewProber(client *http.Client, throttler *throttling.ProbeThrottler) *Prober {
	if client == nil {
		client = http.DefaultClient
	}

	probeClient := *client
	probeClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Prober{client: &probeClient, throttler: throttler}
}

// Probe never takes longer than the check's timeout, including time spent waiting
// for a throttler slot.
func (p *Prober) Probe(ctx context.Context, c check.Check) check.Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout())
	defer cancel()

	if p.throttler != nil {
		if err := p.throttler.Throttle(ctx); err != nil {
			if isTimeout(ctx, err) {
				return check.Outcome{Failure: check.FailureTimeout}
			}
			return check.Outcome{Failure: err.Error()}
		}
		defer p.throttler.Release(context.WithoutCancel(ctx))
	}

	request, err := http.NewRequestWithContext(ctx, c.HttpMethod(), c.Target(), nil)
	if err != nil {
		log.Debug().Err(err).Str("checkId", c.Id).Msg("Could not build probe request")
		return check.Outcome{Failure: err.Error()}
	}

	start := time.Now()
	response, err := p.client.Do(request)
	duration := time.Since(start)

	if err != nil {
		if isTimeout(ctx, err) {
			return check.Outcome{Failure: check.FailureTimeout, Duration: duration}
		}
		return check.Outcome{Failure: err.Error(), Duration: duration}
	}

	closeResponseBody(response.Body)
	return check.Outcome{ResponseCode: response.StatusCode, Duration: duration}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func closeResponseBody(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
