// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package test

import (
	"context"
	"github.com/stretchr/testify/mock"
	"uptime-warden/internal/store"
)

type StoreMock struct {
	mock.Mock
}

func (m *StoreMock) List(ctx context.Context, namespace string) ([]string, error) {
	args := m.Called(ctx, namespace)

	keys, _ := args.Get(0).([]string)
	return keys, args.Error(1)
}

func (m *StoreMock) Read(ctx context.Context, namespace string, key string) (store.Record, error) {
	args := m.Called(ctx, namespace, key)

	record, _ := args.Get(0).(store.Record)
	return record, args.Error(1)
}

func (m *StoreMock) Update(ctx context.Context, namespace string, key string, record any) error {
	args := m.Called(ctx, namespace, key, record)
	return args.Error(0)
}

func (m *StoreMock) Create(ctx context.Context, namespace string, key string, record any) error {
	args := m.Called(ctx, namespace, key, record)
	return args.Error(0)
}

func (m *StoreMock) Delete(ctx context.Context, namespace string, key string) error {
	args := m.Called(ctx, namespace, key)
	return args.Error(0)
}

func (m *StoreMock) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
