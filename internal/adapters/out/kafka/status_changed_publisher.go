// Package kafka publishes order status changes.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"tailor/internal/core/ports"
)

// NewSyncProducer connects a producer that waits for all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Timeout = 5 * time.Second
	cfg.Net.DialTimeout = 5 * time.Second
	return sarama.NewSyncProducer(brokers, cfg)
}

// StatusChangedPublisher writes status changes to a topic keyed by order id.
type StatusChangedPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewStatusChangedPublisher(producer sarama.SyncProducer, topic string) *StatusChangedPublisher {
	return &StatusChangedPublisher{producer: producer, topic: topic}
}

func (p *StatusChangedPublisher) PublishStatusChanged(ctx context.Context, event ports.StatusChangedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *StatusChangedPublisher) Close() error {
	return p.producer.Close()
}

var _ ports.StatusChangedPublisher = (*StatusChangedPublisher)(nil)
