package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

// HandlerFunc processes one decoded confirmation.
type HandlerFunc func(ctx context.Context, ev SalesOrderConfirmedEvent) error

// Consumer reads sales-order confirmations from a consumer group.
type Consumer struct {
	group  sarama.ConsumerGroup
	topics []string
	handle HandlerFunc
	logger *slog.Logger
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, h HandlerFunc, logger *slog.Logger) *Consumer {
	return &Consumer{
		group:  group,
		topics: topics,
		handle: h,
		logger: logger.With("component", "SalesOrderConsumer"),
	}
}

// Start consumes until ctx is cancelled or the group fails.
func (c *Consumer) Start(ctx context.Context) error {
	handler := &groupHandler{handle: c.handle, logger: c.logger}
	for {
		if err := c.group.Consume(ctx, c.topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return err
		}
		// Consume returns on rebalance or cancellation.
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type groupHandler struct {
	handle HandlerFunc
	logger *slog.Logger
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim stops at the first handler failure and rewinds the partition
// to it. Offsets commit cumulatively, so marking any later message would skip
// the failed one. Returning ends the session and the next one resumes there.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.process(sess.Context(), msg); err != nil {
			sess.ResetOffset(msg.Topic, msg.Partition, msg.Offset, "")
			return fmt.Errorf("partition %d offset %d: %w", msg.Partition, msg.Offset, err)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

// process returns the handler error, if any. Undecodable messages are logged
// and treated as done.
func (h *groupHandler) process(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var ev SalesOrderConfirmedEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		h.logger.WarnContext(ctx, "dropping undecodable sales order message",
			"topic", msg.Topic, "offset", msg.Offset, "error", err)
		return nil
	}

	if err := h.handle(ctx, ev); err != nil {
		h.logger.ErrorContext(ctx, "sales order confirmation failed",
			"sale_order", ev.Name, "offset", msg.Offset, "error", err)
		return err
	}

	return nil
}
