// Package kafka publishes order status change events to a Kafka topic.
// Publishing is best-effort and fire-and-forget: events are emitted after the
// transaction commits, and a delivery failure is logged, never propagated
// back into the business operation.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// statusEventEnvelope is the wire format of one status change event.
// Messages are keyed by order id so all events of one order land on the same
// partition and stay ordered.
type statusEventEnvelope struct {
	OrderID    string    `json:"order_id"`
	Action     string    `json:"action"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher implements ports.EventPublisher on top of a Kafka writer.
type Publisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to the given topic. The writer is
// asynchronous; write errors surface through the completion callback and are
// logged.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) *Publisher {
	publisher := &Publisher{logger: logger}

	publisher.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err == nil {
				return
			}
			for _, message := range messages {
				logger.Error("status event delivery failed",
					"order_id", string(message.Key),
					"error", err,
				)
			}
		},
	}

	return publisher
}

var _ ports.EventPublisher = (*Publisher)(nil)

// PublishStatusChange emits one status change event keyed by order id.
func (p *Publisher) PublishStatusChange(ctx context.Context, event ports.StatusEvent) {
	orderID := event.OrderID.String()

	payload, err := json.Marshal(statusEventEnvelope{
		OrderID:    orderID,
		Action:     event.Action,
		Status:     event.Status,
		ActorID:    event.ActorID.String(),
		ActorRole:  event.ActorRole.String(),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		p.logger.Error("status event marshal failed", "order_id", orderID, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(orderID),
		Value: payload,
		Time:  event.OccurredAt,
	})
	if err != nil {
		p.logger.Error("status event enqueue failed", "order_id", orderID, "error", err)
	}
}

// Close flushes buffered messages and releases the writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
