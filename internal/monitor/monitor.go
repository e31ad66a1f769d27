// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package monitor

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/telekom/pubsub-horizon-go/tracing"
	"time"
	"uptime-warden/internal/alert"
	"uptime-warden/internal/cache"
	"uptime-warden/internal/check"
	"uptime-warden/internal/events"
	"uptime-warden/internal/metrics"
	"uptime-warden/internal/outcome"
	"uptime-warden/internal/store"
)

type Prober interface {
	Probe(ctx context.Context, c check.Check) check.Outcome
}

type Alerter interface {
	Notify(ctx context.Context, c check.Check) error
}

type Monitor struct {
	records   store.RecordStore
	prober    Prober
	alerter   Alerter
	publisher events.Publisher
	locker    cache.CheckLocker
	metrics   *metrics.Recorder
	debug     bool
	now       func() time.Time
}

type Option func(*Monitor)

func WithPublisher(publisher events.Publisher) Option {
	return func(m *Monitor) { m.publisher = publisher }
}

func WithLocker(locker cache.CheckLocker) Option {
	return func(m *Monitor) { m.locker = locker }
}

func WithMetrics(recorder *metrics.Recorder) Option {
	return func(m *Monitor) { m.metrics = recorder }
}

func WithTracingDebug(debug bool) Option {
	return func(m *Monitor) { m.debug = debug }
}

func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

func NewMonitor(records store.RecordStore, prober Prober, alerter Alerter, opts ...Option) *Monitor {
	m := &Monitor{
		records:   records,
		prober:    prober,
		alerter:   alerter,
		publisher: events.NoopPublisher{},
		locker:    cache.NoopLocker{},
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Evaluate runs one full cycle for the check stored under key. It never panics or
// returns an error; the result is only used for bookkeeping.
func (m *Monitor) Evaluate(ctx context.Context, key string) Result {
	cycleId := uuid.NewString()
	logger := log.With().Str("checkId", key).Str("cycleId", cycleId).Logger()

	traceCtx := tracing.NewTraceContext(ctx, "uptime-warden", m.debug)
	traceCtx.StartSpan("evaluate check")
	traceCtx.SetAttribute("component", "Uptime Warden")
	traceCtx.SetAttribute("checkId", key)
	traceCtx.SetAttribute("cycleId", cycleId)
	defer traceCtx.EndCurrentSpan()

	result := m.evaluate(ctx, key, cycleId, &logger)

	traceCtx.SetAttribute("result", string(result))
	m.metrics.RecordCycle(string(result))
	return result
}

func (m *Monitor) evaluate(ctx context.Context, key string, cycleId string, logger *zerolog.Logger) Result {
	unlock, acquired, err := m.locker.TryLock(ctx, key)
	if err != nil {
		logger.Error().Err(err).Msg("Could not acquire lock, skipping check")
		return ResultLocked
	}
	if !acquired {
		logger.Debug().Msg("Check is evaluated by another cycle, skipping")
		return ResultLocked
	}
	defer unlock()

	raw, err := m.records.Read(ctx, store.NamespaceChecks, key)
	if err != nil {
		if errors.Is(err, store.ErrMalformed) {
			logger.Warn().Err(err).Msg("Stored check is not well-formed, skipping")
			return ResultRejected
		}
		logger.Error().Err(err).Msg("Could not read check")
		return ResultReadFailed
	}

	c, err := check.Validate(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("Check is not monitorable, skipping")
		return ResultRejected
	}

	o := m.prober.Probe(ctx, c)
	m.metrics.RecordProbe(o)

	decision := outcome.Decide(c, o)
	checkedAt := m.now()
	updated := outcome.Apply(c, decision, checkedAt)

	if err := m.records.Update(ctx, store.NamespaceChecks, key, outcome.Patch(raw, decision, checkedAt)); err != nil {
		logger.Error().Err(err).Msg("Could not persist check outcome")
		return ResultPersistFailed
	}

	m.metrics.RecordState(c.Id, decision.Next)
	logger.Debug().Msgf("Check %s is %s (was %s)", c.Target(), decision.Next, decision.Previous)

	m.publish(ctx, cycleId, c, o, decision, checkedAt, logger)

	if !decision.AlertWarranted {
		return ResultPersisted
	}

	if err := m.alerter.Notify(ctx, updated); err != nil {
		m.metrics.RecordAlert(false)
		if errors.Is(err, alert.ErrOwnerNotFound) {
			logger.Warn().Err(err).Msg("Owner of check does not exist, skipping alert")
		} else {
			logger.Error().Err(err).Msg("Could not send alert")
		}
		return ResultAlertFailed
	}

	m.metrics.RecordAlert(true)
	logger.Info().Msgf("Sent alert for state change %s -> %s", decision.Previous, decision.Next)
	return ResultAlerted
}

func (m *Monitor) publish(ctx context.Context, cycleId string, c check.Check, o check.Outcome, decision outcome.Decision, checkedAt time.Time, logger *zerolog.Logger) {
	event := events.OutcomeEvent{
		CycleId:        cycleId,
		CheckId:        c.Id,
		PreviousState:  decision.Previous,
		State:          decision.Next,
		ResponseCode:   o.ResponseCode,
		Failure:        o.Failure,
		CheckedAt:      checkedAt.UTC(),
		AlertWarranted: decision.AlertWarranted,
	}

	if err := m.publisher.Publish(ctx, event); err != nil {
		logger.Warn().Err(err).Msg("Could not publish outcome event")
	}
}
