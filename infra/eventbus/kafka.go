// Package eventbus provides the Kafka-backed event publisher.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finbooks/ledger/pkg/config"
	"github.com/finbooks/ledger/pkg/domain/events"
	"github.com/finbooks/ledger/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes ledger events to a Kafka topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to the configured brokers.
func NewKafkaPublisher(cfg *config.Kafka) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish marshals the event as JSON and writes it. Transaction events are
// keyed by transaction ID so replays of one transaction stay ordered within a
// partition.
func (p *KafkaPublisher) Publish(ctx context.Context, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := kafka.Message{Value: data}
	if tc, ok := event.(events.TransactionCompleted); ok {
		msg.Key = []byte(tc.TransactionID.String())
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

var _ eventbus.Publisher = (*KafkaPublisher)(nil)
