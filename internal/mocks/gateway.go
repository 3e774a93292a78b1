package mocks

import (
	"context"

	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (_m *Gateway) SendMessages(ctx context.Context, request ujumbesms.MessageRequest) (ujumbesms.MessagingApiResponse, error) {
	ret := _m.Called(ctx, request)
	return ret.Get(0).(ujumbesms.MessagingApiResponse), ret.Error(1)
}

func (_m *Gateway) Balance(ctx context.Context) (ujumbesms.BalanceApiResponse, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(ujumbesms.BalanceApiResponse), ret.Error(1)
}

func (_m *Gateway) MessagesHistory(ctx context.Context) (ujumbesms.MessageHistoryApiResponse, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(ujumbesms.MessageHistoryApiResponse), ret.Error(1)
}
