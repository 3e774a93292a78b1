package consumers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/mq"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"go.uber.org/zap"
)

type SendConsumer interface {
	Consume(ctx context.Context) error
}

type sendConsumer struct {
	service  service.MessagingService
	consumer mq.Consumer
	prefetch int
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewSendConsumer(service service.MessagingService, consumer mq.Consumer, cfg mq.Config,
	m *metrics.Metrics, logger *zap.Logger) SendConsumer {
	return &sendConsumer{
		service:  service,
		consumer: consumer,
		prefetch: cfg.Prefetch,
		metrics:  m,
		logger:   logger,
	}
}

func (s *sendConsumer) Consume(ctx context.Context) error {
	return s.consumer.Consume(ctx, s.prefetch, mq.QueueSend, s.HandleMessage)
}

// HandleMessage sends one queued command. Failures the gateway may recover from are marked for requeue.
func (s *sendConsumer) HandleMessage(ctx context.Context, body []byte) error {
	s.logger.Info("received send command", zap.Int("size", len(body)))

	var cmd service.SendMessageCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		s.logger.Warn("invalid send command", zap.Error(err))
		s.metrics.RecordConsumed("invalid")
		return err
	}

	if _, err := s.service.Send(ctx, cmd); err != nil {
		if ujumbesms.IsTemporary(err) || errors.Is(err, context.Canceled) {
			s.metrics.RecordConsumed("requeued")
			return mq.Temporary(err)
		}
		s.metrics.RecordConsumed("dropped")
		return err
	}

	s.metrics.RecordConsumed("sent")
	return nil
}
