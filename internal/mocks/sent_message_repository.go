package mocks

import (
	"context"

	"github.com/Behyna/ujumbesms/internal/model"
	"github.com/stretchr/testify/mock"
)

type SentMessageRepository struct {
	mock.Mock
}

func (_m *SentMessageRepository) UpsertMany(ctx context.Context, messages []model.SentMessage) (int64, error) {
	ret := _m.Called(ctx, messages)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *SentMessageRepository) GetByNumber(ctx context.Context, number string, limit, offset int) ([]model.SentMessage, error) {
	ret := _m.Called(ctx, number, limit, offset)
	var messages []model.SentMessage
	if ret.Get(0) != nil {
		messages = ret.Get(0).([]model.SentMessage)
	}
	return messages, ret.Error(1)
}

func (_m *SentMessageRepository) CountByStatusClass(ctx context.Context, class model.StatusClass) (int64, error) {
	ret := _m.Called(ctx, class)
	return ret.Get(0).(int64), ret.Error(1)
}
