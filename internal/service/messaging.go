package service

import (
	"context"
	"time"

	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/constants"
	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"go.uber.org/zap"
)

type MessagingService interface {
	Send(ctx context.Context, cmd SendMessageCommand) (ujumbesms.MessagingApiResponse, error)
}

type Messaging struct {
	gateway Gateway
	metrics *metrics.Metrics
	logger  *zap.Logger
	config  config.Sender
}

func NewMessagingService(gateway Gateway, m *metrics.Metrics, logger *zap.Logger, cfg *config.Config) MessagingService {
	return &Messaging{gateway: gateway, metrics: m, logger: logger, config: cfg.Sender}
}

// Send submits the command's bags in one request, retrying only temporary gateway failures.
func (s *Messaging) Send(ctx context.Context, cmd SendMessageCommand) (ujumbesms.MessagingApiResponse, error) {
	if len(cmd.Messages) == 0 {
		return ujumbesms.MessagingApiResponse{}, NewServiceError(constants.ErrCodeInvalidCommand, ErrEmptyCommand)
	}

	request := cmd.ToRequest()
	endpoint := ujumbesms.EndpointMessaging.String()

	maxAttempts := max(s.config.MaxRetry, 1)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		s.logger.Debug("Attempting to send messages",
			zap.Int("attempt", attempt),
			zap.Int("bags", request.Len()))

		callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		start := time.Now()
		response, err := s.gateway.SendMessages(callCtx, request)
		cancel()
		s.metrics.RecordGatewayCall(endpoint, metrics.Outcome(err), time.Since(start))

		if err == nil {
			fields := []zap.Field{
				zap.String("code", response.Status.Code),
				zap.Int("attempt", attempt),
			}
			if response.Meta != nil {
				fields = append(fields,
					zap.Int("recipients", response.Meta.Recipients),
					zap.Int("creditsDeducted", response.Meta.CreditsDeducted),
					zap.String("availableCredits", response.Meta.AvailableCredits))
			}
			s.logger.Info("Messages queued by gateway", fields...)
			return response, nil
		}

		lastErr = err
		s.logger.Warn("Send attempt failed",
			zap.Error(err),
			zap.Int("attempt", attempt))

		if !ujumbesms.IsTemporary(err) {
			s.logger.Error("Non-retryable gateway error", zap.Error(err))
			return ujumbesms.MessagingApiResponse{}, gatewayError(err)
		}

		if attempt < maxAttempts {
			s.metrics.RecordGatewayRetry(endpoint)
			delay := time.Duration(attempt) * s.config.RetryDelay
			s.logger.Debug("Waiting before retry", zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ujumbesms.MessagingApiResponse{}, NewServiceError(constants.ErrCodeGatewayUnavailable, ctx.Err())
			}
		}
	}

	s.logger.Error("All retry attempts exhausted",
		zap.Error(lastErr),
		zap.Int("maxRetries", maxAttempts))

	return ujumbesms.MessagingApiResponse{}, gatewayError(lastErr)
}
