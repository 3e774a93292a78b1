package mocks

import (
	"context"

	"github.com/Behyna/ujumbesms/internal/model"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/stretchr/testify/mock"
)

type MessagingService struct {
	mock.Mock
}

func (_m *MessagingService) Send(ctx context.Context, cmd service.SendMessageCommand) (ujumbesms.MessagingApiResponse, error) {
	ret := _m.Called(ctx, cmd)
	return ret.Get(0).(ujumbesms.MessagingApiResponse), ret.Error(1)
}

type AccountService struct {
	mock.Mock
}

func (_m *AccountService) Balance(ctx context.Context) (ujumbesms.BalanceApiResponse, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(ujumbesms.BalanceApiResponse), ret.Error(1)
}

type HistoryService struct {
	mock.Mock
}

func (_m *HistoryService) Fetch(ctx context.Context, query service.HistoryQuery) ([]ujumbesms.MessageSent, error) {
	ret := _m.Called(ctx, query)
	var messages []ujumbesms.MessageSent
	if ret.Get(0) != nil {
		messages = ret.Get(0).([]ujumbesms.MessageSent)
	}
	return messages, ret.Error(1)
}

func (_m *HistoryService) Sync(ctx context.Context) (service.SyncResult, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(service.SyncResult), ret.Error(1)
}

func (_m *HistoryService) Archived(ctx context.Context, query service.ArchiveQuery) ([]model.SentMessage, error) {
	ret := _m.Called(ctx, query)
	var messages []model.SentMessage
	if ret.Get(0) != nil {
		messages = ret.Get(0).([]model.SentMessage)
	}
	return messages, ret.Error(1)
}

func (_m *HistoryService) Stats(ctx context.Context) (service.ArchiveStats, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(service.ArchiveStats), ret.Error(1)
}
