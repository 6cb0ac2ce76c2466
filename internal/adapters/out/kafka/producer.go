// Package kafka publishes stored outbox messages to Kafka.
package kafka

import (
	"context"
	"errors"
	"strings"

	"farmadelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

// messageWriter is the part of *kafka.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedProducer implements ports.EventPublisher. Messages are keyed
// by order id so every change of one order lands in the same partition.
type OrderChangedProducer struct {
	writer messageWriter
}

var _ ports.EventPublisher = (*OrderChangedProducer)(nil)

// NewOrderChangedProducer builds a hash-balanced writer for the topic.
// brokersCSV is a comma separated host:port list.
func NewOrderChangedProducer(brokersCSV, topic string) (*OrderChangedProducer, error) {
	brokers := ParseBrokers(brokersCSV)
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("kafka: topic is required")
	}

	return newOrderChangedProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}), nil
}

func newOrderChangedProducer(w messageWriter) *OrderChangedProducer {
	return &OrderChangedProducer{writer: w}
}

// Publish writes all messages in one batch.
func (p *OrderChangedProducer) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, kafka.Message{
			Key:   []byte(m.AggregateID),
			Value: m.Payload,
			Time:  m.OccurredAt.UTC(),
			Headers: []kafka.Header{
				{Key: "event_id", Value: []byte(m.ID.String())},
				{Key: "event_name", Value: []byte(m.EventName)},
			},
		})
	}

	return p.writer.WriteMessages(ctx, batch...)
}

func (p *OrderChangedProducer) Close() error {
	return p.writer.Close()
}

// ParseBrokers splits and trims a comma separated broker list.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
