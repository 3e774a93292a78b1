package main

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Behyna/ujumbesms/internal/mocks"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSyncLoop_StopsOnCancel(t *testing.T) {
	var syncs atomic.Int32
	history := &mocks.HistoryService{}
	history.On("Sync", mock.Anything).Return(service.SyncResult{}, nil).
		Run(func(mock.Arguments) { syncs.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		syncLoop(ctx, history, time.Millisecond, zap.NewNop())
	}()

	assert.Eventually(t, func() bool {
		return syncs.Load() >= 2
	}, time.Second, time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sync loop did not return after cancel")
	}
	calls := syncs.Load()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, calls, syncs.Load())
}

func TestSyncLoop_ContinuesAfterError(t *testing.T) {
	var syncs atomic.Int32
	history := &mocks.HistoryService{}
	history.On("Sync", mock.Anything).Return(service.SyncResult{}, errors.New("db down")).
		Run(func(mock.Arguments) { syncs.Add(1) }).Once()
	history.On("Sync", mock.Anything).Return(service.SyncResult{}, nil).
		Run(func(mock.Arguments) { syncs.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go syncLoop(ctx, history, time.Millisecond, zap.NewNop())

	assert.Eventually(t, func() bool {
		return syncs.Load() >= 2
	}, time.Second, time.Millisecond)
}
