package test

import (
	"context"
	"github.com/stretchr/testify/mock"
	"uptime-warden/internal/check"
)

type ProberMock struct {
	mock.Mock
}

func (m *ProberMock) Probe(ctx context.Context, c check.Check) check.Outcome {
	args := m.Called(ctx, c)
	return args.Get(0).(check.Outcome)
}
