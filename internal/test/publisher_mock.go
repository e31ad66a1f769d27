package test

import (
	"context"
	"github.com/stretchr/testify/mock"
	"uptime-warden/internal/events"
)

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, event events.OutcomeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *PublisherMock) Close() error {
	args := m.Called()
	return args.Error(0)
}
