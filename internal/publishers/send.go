package publishers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Behyna/ujumbesms/internal/metrics"
	"github.com/Behyna/ujumbesms/internal/service"
	"github.com/Behyna/ujumbesms/pkg/mq"
	"go.uber.org/zap"
)

type SendPublisher interface {
	Publish(ctx context.Context, cmd service.SendMessageCommand) error
}

type sendPublisher struct {
	publisher mq.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewSendPublisher(publisher mq.Publisher, m *metrics.Metrics, logger *zap.Logger) SendPublisher {
	return &sendPublisher{publisher: publisher, metrics: m, logger: logger}
}

func (s *sendPublisher) Publish(ctx context.Context, cmd service.SendMessageCommand) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	if err := s.publisher.Publish(ctx, "", mq.QueueSend, body); err != nil {
		s.logger.Error("failed to publish send command",
			zap.Error(err),
			zap.Int("bags", len(cmd.Messages)))
		return err
	}

	s.metrics.RecordQueued()
	s.logger.Info("send command queued", zap.Int("bags", len(cmd.Messages)))

	return nil
}
