// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"
	"github.com/stretchr/testify/mock"
	"time"
)

type LockMapMock struct {
	mock.Mock
}

func (m *LockMapMock) NewLockContext(ctx context.Context) context.Context {
	args := m.Called(ctx)
	return args.Get(0).(context.Context)
}

func (m *LockMapMock) TryLockWithTimeout(ctx context.Context, key interface{}, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)
	return args.Bool(0), args.Error(1)
}

func (m *LockMapMock) Unlock(ctx context.Context, key interface{}) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type CheckLockerMock struct {
	mock.Mock
}

func (m *CheckLockerMock) TryLock(ctx context.Context, checkId string) (func(), bool, error) {
	args := m.Called(ctx, checkId)

	unlock, _ := args.Get(0).(func())
	return unlock, args.Bool(1), args.Error(2)
}
