package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/mocks"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Sender: config.Sender{MaxRetry: 3, RetryDelay: time.Millisecond, Timeout: time.Second},
	}
}

func networkErr() error {
	// reproduce the client's error shape through its exported surface
	client, _ := ujumbesms.NewClient(ujumbesms.NewConfig("key", "me@example.com"),
		ujumbesms.WithHTTPClient(failingTransport{}))
	_, err := client.Balance(context.Background())
	return err
}

func apiErr(status int) error {
	client, _ := ujumbesms.NewClient(ujumbesms.NewConfig("key", "me@example.com"),
		ujumbesms.WithHTTPClient(statusTransport{status: status}))
	_, err := client.Balance(context.Background())
	return err
}

func TestMessaging_Send(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.SendMessageCommand{Messages: []service.MessageBag{
		{Numbers: "254712345678", Message: "First", Sender: "UjumbeSMS"},
		{Numbers: "254712345679", Message: "Second", Sender: "UjumbeSMS"},
	}}

	matchRequest := mock.MatchedBy(func(r ujumbesms.MessageRequest) bool {
		bags := r.Bags()
		return len(bags) == 2 && bags[0].Message == "First" && bags[1].Message == "Second"
	})

	success := ujumbesms.MessagingApiResponse{
		Status: ujumbesms.StatusInfo{Code: "1008", Type: "success"},
		Meta:   &ujumbesms.MessagingMeta{Recipients: 2, CreditsDeducted: 2, AvailableCredits: "6606"},
	}

	t.Run("sends on first attempt", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		m := metrics.NewMetrics(prometheus.NewRegistry())
		svc := service.NewMessagingService(gateway, m, logger, testConfig())

		gateway.On("SendMessages", mock.Anything, matchRequest).Return(success, nil).Once()

		response, err := svc.Send(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, response.Meta.Recipients)
		assert.Equal(t, float64(1), testutil.ToFloat64(m.GatewayRequestsTotal.WithLabelValues("messaging", metrics.OutcomeSuccess)))
		gateway.AssertExpectations(t)
	})

	t.Run("retries temporary failures", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		m := metrics.NewMetrics(prometheus.NewRegistry())
		svc := service.NewMessagingService(gateway, m, logger, testConfig())

		gateway.On("SendMessages", mock.Anything, matchRequest).
			Return(ujumbesms.MessagingApiResponse{}, networkErr()).Once()
		gateway.On("SendMessages", mock.Anything, matchRequest).
			Return(ujumbesms.MessagingApiResponse{}, apiErr(503)).Once()
		gateway.On("SendMessages", mock.Anything, matchRequest).Return(success, nil).Once()

		response, err := svc.Send(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "1008", response.Status.Code)
		assert.Equal(t, float64(2), testutil.ToFloat64(m.GatewayRetries.WithLabelValues("messaging")))
		gateway.AssertNumberOfCalls(t, "SendMessages", 3)
	})

	t.Run("does not retry rejected requests", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		svc := service.NewMessagingService(gateway, metrics.NewMetrics(prometheus.NewRegistry()), logger, testConfig())

		gateway.On("SendMessages", mock.Anything, matchRequest).
			Return(ujumbesms.MessagingApiResponse{}, apiErr(400)).Once()

		_, err := svc.Send(context.Background(), cmd)

		require.Error(t, err)
		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeGatewayRejected, serviceErr.Code)
		assert.ErrorIs(t, err, ujumbesms.ErrAPI)
		gateway.AssertNumberOfCalls(t, "SendMessages", 1)
	})

	t.Run("retries rate limited requests", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		svc := service.NewMessagingService(gateway, metrics.NewMetrics(prometheus.NewRegistry()), logger, testConfig())

		gateway.On("SendMessages", mock.Anything, matchRequest).
			Return(ujumbesms.MessagingApiResponse{}, apiErr(http.StatusTooManyRequests)).Once()
		gateway.On("SendMessages", mock.Anything, matchRequest).Return(success, nil).Once()

		response, err := svc.Send(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "1008", response.Status.Code)
		gateway.AssertNumberOfCalls(t, "SendMessages", 2)
	})

	t.Run("zero max retry still makes one attempt", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		cfg := testConfig()
		cfg.Sender.MaxRetry = 0
		svc := service.NewMessagingService(gateway, metrics.NewMetrics(prometheus.NewRegistry()), logger, cfg)

		gateway.On("SendMessages", mock.Anything, matchRequest).
			Return(ujumbesms.MessagingApiResponse{}, networkErr()).Once()

		_, err := svc.Send(context.Background(), cmd)

		require.Error(t, err)
		assert.NotPanics(t, func() { _ = err.Error() })
		assert.ErrorIs(t, err, ujumbesms.ErrNetwork)
		gateway.AssertNumberOfCalls(t, "SendMessages", 1)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		svc := service.NewMessagingService(gateway, metrics.NewMetrics(prometheus.NewRegistry()), logger, testConfig())

		gateway.On("SendMessages", mock.Anything, matchRequest).
			Return(ujumbesms.MessagingApiResponse{}, networkErr())

		_, err := svc.Send(context.Background(), cmd)

		var serviceErr service.Error
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, constants.ErrCodeGatewayUnavailable, serviceErr.Code)
		assert.ErrorIs(t, err, ujumbesms.ErrNetwork)
		gateway.AssertNumberOfCalls(t, "SendMessages", 3)
	})

	t.Run("stops waiting when context is cancelled", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		cfg := testConfig()
		cfg.Sender.RetryDelay = time.Hour
		svc := service.NewMessagingService(gateway, metrics.NewMetrics(prometheus.NewRegistry()), logger, cfg)

		ctx, cancel := context.WithCancel(context.Background())
		gateway.On("SendMessages", mock.Anything, matchRequest).
			Run(func(mock.Arguments) { cancel() }).
			Return(ujumbesms.MessagingApiResponse{}, networkErr()).Once()

		_, err := svc.Send(ctx, cmd)

		assert.ErrorIs(t, err, context.Canceled)
		gateway.AssertNumberOfCalls(t, "SendMessages", 1)
	})

	t.Run("rejects empty command", func(t *testing.T) {
		gateway := &mocks.Gateway{}
		svc := service.NewMessagingService(gateway, metrics.NewMetrics(prometheus.NewRegistry()), logger, testConfig())

		_, err := svc.Send(context.Background(), service.SendMessageCommand{})

		assert.ErrorIs(t, err, service.ErrEmptyCommand)
		var serviceErr service.Error
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInvalidCommand, serviceErr.Code)
		gateway.AssertNotCalled(t, "SendMessages")
	})
}

func TestError_NilCause(t *testing.T) {
	err := service.Error{Code: constants.ErrCodeInternalError}

	assert.NotPanics(t, func() { _ = err.Error() })
	assert.Equal(t, constants.ErrCodeInternalError, err.Error())
	assert.NoError(t, errors.Unwrap(err))
}

func TestSendMessageCommand_ToRequest(t *testing.T) {
	cmd := service.SendMessageCommand{Messages: []service.MessageBag{
		{Numbers: "1", Message: "a", Sender: "S"},
		{Numbers: "2", Message: "b", Sender: "S"},
	}}

	request := cmd.ToRequest()
	assert.Equal(t, []ujumbesms.MessageBag{
		{Numbers: "1", Message: "a", Sender: "S"},
		{Numbers: "2", Message: "b", Sender: "S"},
	}, request.Bags())
}
