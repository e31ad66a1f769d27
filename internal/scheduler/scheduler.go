// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
	"sync"
	"time"
	"uptime-warden/internal/metrics"
	"uptime-warden/internal/monitor"
	"uptime-warden/internal/store"
)

type Evaluator interface {
	Evaluate(ctx context.Context, key string) monitor.Result
}

type Scheduler struct {
	records   store.RecordStore
	evaluator Evaluator
	interval  time.Duration
	metrics   *metrics.Recorder
}

func NewScheduler(records store.RecordStore, evaluator Evaluator, interval time.Duration, recorder *metrics.Recorder) *Scheduler {
	return &Scheduler{
		records:   records,
		evaluator: evaluator,
		interval:  interval,
		metrics:   recorder,
	}
}

// Run performs a pass right away and then once per interval until ctx is done.
// Passes never wait for each other. Run returns once every pass still in flight
// at shutdown has finished.
func (s *Scheduler) Run(ctx context.Context) error {
	scheduler := gocron.NewScheduler(time.UTC)
	cycleCtx := context.WithoutCancel(ctx)

	var (
		mutex   sync.Mutex
		stopped bool
		passes  sync.WaitGroup
	)

	if _, err := scheduler.Every(s.interval).StartImmediately().Do(func() {
		mutex.Lock()
		if stopped {
			mutex.Unlock()
			return
		}
		passes.Add(1)
		mutex.Unlock()

		defer passes.Done()
		s.RunPass(cycleCtx)
	}); err != nil {
		return fmt.Errorf("error while scheduling check evaluation: %w", err)
	}

	log.Info().Msgf("Evaluating checks every %s", s.interval)
	scheduler.StartAsync()

	<-ctx.Done()
	scheduler.Stop()

	mutex.Lock()
	stopped = true
	mutex.Unlock()

	log.Info().Msg("Waiting for running passes to finish")
	passes.Wait()

	return nil
}

// RunPass evaluates every stored check in its own goroutine and waits for all of them.
func (s *Scheduler) RunPass(ctx context.Context) map[monitor.Result]int {
	keys, err := s.records.List(ctx, store.NamespaceChecks)
	if err != nil {
		if errors.Is(err, store.ErrCollectionNotFound) {
			log.Info().Msg("There are no checks to evaluate, skipping pass")
		} else {
			log.Error().Err(err).Msg("Could not list checks, skipping pass")
		}
		return nil
	}

	if len(keys) == 0 {
		log.Info().Msg("There are no checks to evaluate, skipping pass")
		return nil
	}

	var (
		wg      sync.WaitGroup
		mutex   sync.Mutex
		results = make(map[monitor.Result]int)
	)

	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()

			result := s.evaluate(ctx, key)

			mutex.Lock()
			results[result]++
			mutex.Unlock()
		}(key)
	}

	wg.Wait()
	log.Debug().Interface("results", results).Msgf("Finished pass over %d checks", len(keys))

	return results
}

func (s *Scheduler) evaluate(ctx context.Context, key string) (result monitor.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("checkId", key).Msgf("Recovered from panic while evaluating check: %v", r)
			result = monitor.ResultPanicked
			s.metrics.RecordCycle(string(result))
		}
	}()

	return s.evaluator.Evaluate(ctx, key)
}
