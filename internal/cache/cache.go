// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"fmt"
	"github.com/hazelcast/hazelcast-go-client"
	"github.com/rs/zerolog/log"
	"time"
	"uptime-warden/internal/config"
)

// LockMap is the subset of a hazelcast map used for per-check locking.
type LockMap interface {
	NewLockContext(ctx context.Context) context.Context
	TryLockWithTimeout(ctx context.Context, key interface{}, timeout time.Duration) (bool, error)
	Unlock(ctx context.Context, key interface{}) error
}

// CheckLocker serializes overlapping cycles of the same check.
type CheckLocker interface {
	TryLock(ctx context.Context, checkId string) (unlock func(), acquired bool, err error)
}

// NewCheckLocker connects to hazelcast when enabled and returns a locker that
// always succeeds otherwise.
func NewCheckLocker(cfg config.Hazelcast) (CheckLocker, error) {
	if !cfg.Enabled {
		return NoopLocker{}, nil
	}

	lockMap, err := newLockMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing hazelcast lock map: %w", err)
	}

	return NewHazelcastLocker(lockMap, cfg.LockTimeout), nil
}

func newLockMap(cfg config.Hazelcast) (*hazelcast.Map, error) {
	hazelcastConfig := hazelcast.NewConfig()
	hazelcastConfig.Cluster.Name = cfg.ClusterName
	hazelcastConfig.Cluster.Network.SetAddresses(cfg.ServiceDNS)

	client, err := hazelcast.StartNewClientWithConfig(context.Background(), hazelcastConfig)
	if err != nil {
		return nil, err
	}

	return client.GetMap(context.Background(), cfg.LockMap)
}

type HazelcastLocker struct {
	locks   LockMap
	timeout time.Duration
}

func NewHazelcastLocker(locks LockMap, timeout time.Duration) *HazelcastLocker {
	return &HazelcastLocker{locks: locks, timeout: timeout}
}

func (l *HazelcastLocker) TryLock(ctx context.Context, checkId string) (func(), bool, error) {
	lockCtx := l.locks.NewLockContext(ctx)

	acquired, err := l.locks.TryLockWithTimeout(lockCtx, checkId, l.timeout)
	if err != nil {
		return nil, false, fmt.Errorf("could not acquire lock for check %s: %w", checkId, err)
	}

	if !acquired {
		return nil, false, nil
	}

	unlock := func() {
		if err := l.locks.Unlock(lockCtx, checkId); err != nil {
			log.Error().Err(err).Str("checkId", checkId).Msg("Could not release lock")
		}
	}

	return unlock, true, nil
}

type NoopLocker struct{}

func (NoopLocker) TryLock(ctx context.Context, checkId string) (func(), bool, error) {
	return func() {}, true, nil
}
