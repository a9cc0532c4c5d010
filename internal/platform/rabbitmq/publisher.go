// Package rabbitmq implements the task event channel on top of RabbitMQ.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/cmtrswtng/taskflow/internal/config"
	"github.com/cmtrswtng/taskflow/internal/events"
)

// Publisher is the RabbitMQ implementation of events.Publisher. It owns a
// durable direct exchange bound to a durable queue, so published events
// survive a broker restart and await their consumers.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	cfg    config.RabbitMQConfig
	logger *slog.Logger
}

// Compile-time check that Publisher satisfies the contract.
var _ events.Publisher = (*Publisher)(nil)

// Connect dials the broker and declares the exchange, queue and binding.
func Connect(cfg config.RabbitMQConfig, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.QueueBind(cfg.Queue, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &Publisher{
		conn:   conn,
		ch:     ch,
		cfg:    cfg,
		logger: logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// Publish sends the event as a persistent JSON message.
func (p *Publisher) Publish(ctx context.Context, event *events.TaskEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx, p.cfg.Exchange, p.cfg.RoutingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    event.Timestamp,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published task event",
		"event_id", event.ID,
		"task_id", event.TaskID,
		"action", event.Action)
	return nil
}

// Consume delivers queued events to the handler until ctx is canceled or
// the delivery channel closes. Events the handler rejects, and messages
// that fail to decode, are nacked without requeue.
func (p *Publisher) Consume(ctx context.Context, handler events.Handler) error {
	deliveries, err := p.ch.Consume(p.cfg.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			var event events.TaskEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				p.logger.Error("failed to decode task event", "error", err)
				if err := d.Nack(false, false); err != nil {
					p.logger.Warn("failed to nack message", "error", err)
				}
				continue
			}

			if err := handler.HandleEvent(ctx, &event); err != nil {
				p.logger.Error("handler failed to process task event",
					"error", err,
					"event_id", event.ID,
					"action", event.Action)
				if err := d.Nack(false, false); err != nil {
					p.logger.Warn("failed to nack message", "error", err)
				}
				continue
			}

			if err := d.Ack(false); err != nil {
				p.logger.Warn("failed to ack message", "error", err)
			}
		}
	}
}

// IsConnected reports whether the broker connection is still open.
func (p *Publisher) IsConnected() bool {
	return p.conn != nil && !p.conn.IsClosed()
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return fmt.Errorf("failed to close channel: %w", err)
	}
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
