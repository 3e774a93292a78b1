package mq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

// Acknowledger is the part of amqp.Delivery that Dispatch uses.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type RabbitConsumer struct {
	ch     *amqp.Channel
	logger *zap.Logger
}

func NewRabbitConsumer(ch *amqp.Channel, logger *zap.Logger) Consumer {
	return &RabbitConsumer{ch: ch, logger: logger}
}

func (c *RabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	deliveries, err := c.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Cancel("", false)
			time.Sleep(50 * time.Millisecond)
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			Dispatch(ctx, d, d.Body, handler, c.logger)
		}
	}
}

// Dispatch runs the handler and acks on success. Temporary failures are requeued, others dropped.
func Dispatch(ctx context.Context, ack Acknowledger, body []byte, handler Handle, logger *zap.Logger) {
	err := handler(ctx, body)
	if err == nil {
		if ackErr := ack.Ack(false); ackErr != nil {
			logger.Error("failed to ack delivery", zap.Error(ackErr))
		}
		return
	}

	requeue := IsTemporary(err)
	logger.Warn("handler failed, rejecting delivery",
		zap.Error(err),
		zap.Bool("requeue", requeue))

	if nackErr := ack.Nack(false, requeue); nackErr != nil {
		logger.Error("failed to nack delivery", zap.Error(nackErr))
	}
}
