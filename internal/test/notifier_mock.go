package test

import (
	"context"
	"github.com/stretchr/testify/mock"
)

type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) Send(ctx context.Context, phone string, body string) error {
	args := m.Called(ctx, phone, body)
	return args.Error(0)
}
