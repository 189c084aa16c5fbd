// Package kafka consumes sales-order confirmations and turns them into
// tailoring orders.
package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

// NewConsumerGroup joins groupID on the given brokers, starting from the
// newest offset when the group has none committed.
func NewConsumerGroup(brokers []string, groupID string) (sarama.ConsumerGroup, error) {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Net.DialTimeout = 5 * time.Second
	return sarama.NewConsumerGroup(brokers, groupID, cfg)
}
