package mocks

import (
	"context"

	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/stretchr/testify/mock"
)

type Publisher struct {
	mock.Mock
}

func (_m *Publisher) Publish(ctx context.Context, exchange string, routingKey string, body []byte) error {
	ret := _m.Called(ctx, exchange, routingKey, body)
	return ret.Error(0)
}

type SendPublisher struct {
	mock.Mock
}

func (_m *SendPublisher) Publish(ctx context.Context, cmd service.SendMessageCommand) error {
	ret := _m.Called(ctx, cmd)
	return ret.Error(0)
}
