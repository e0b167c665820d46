package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/converter"
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

const (
	contentTypeHeader = "content-type"
	eventTypeHeader   = "event-type"
	contentTypeJSON   = "application/json"

	batchTimeout = 50 * time.Millisecond
)

// Publisher emits order lifecycle events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event entity.OrderEvent) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher sends order lifecycle events keyed by order id, so every
// event of one order lands in the same partition.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: batchTimeout,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				zap.L().Error("error while delivering order events", zap.Error(err), zap.Int("count", len(messages)))
			}
		},
	}

	zap.L().Info("order events publishing enabled", zap.Strings("brokers", brokers), zap.String("topic", topic))

	return newKafkaPublisher(writer)
}

func newKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event entity.OrderEvent) error {
	value, err := json.Marshal(converter.ConvertOrderEventToMessage(event))
	if err != nil {
		return fmt.Errorf("error while marshalling order event: %w", err)
	}

	headers := headerCarrier{
		{Key: contentTypeHeader, Value: []byte(contentTypeJSON)},
		{Key: eventTypeHeader, Value: []byte(event.Type)},
	}
	otel.GetTextMapPropagator().Inject(ctx, &headers)

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.Order.OrderID),
		Value:   value,
		Time:    event.OccurredAt,
		Headers: headers,
	})
	if err != nil {
		return fmt.Errorf("error while writing order event to kafka: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event entity.OrderEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
