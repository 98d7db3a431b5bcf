package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/franvila/comic-commerce/pkg/logger"
)

// Publisher wraps a synchronous Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishComicCreated publishes a comic created event with tracing
func (p *Publisher) PublishComicCreated(ctx context.Context, event ComicCreatedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	_, span := tracer.Start(ctx, "kafka.publish.comic_created",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicComicCreated),
			attribute.String("event.type", EventTypeComicCreated),
			attribute.Int64("comic.id", int64(event.ComicID)),
		),
	)
	defer span.End()

	event.EventID = uuid.NewString()
	event.EventType = EventTypeComicCreated
	event.Timestamp = time.Now()

	if err := p.publish(TopicComicCreated, event.EventID, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("event.id", event.EventID))
	return nil
}

// PublishWishlistEntryAdded publishes a wishlist entry added event with tracing
func (p *Publisher) PublishWishlistEntryAdded(ctx context.Context, event WishlistEntryAddedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	_, span := tracer.Start(ctx, "kafka.publish.wishlist_entry_added",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicWishlistEntryAdded),
			attribute.String("event.type", EventTypeWishlistEntryAdded),
			attribute.Int64("wishlist.entry_id", int64(event.EntryID)),
		),
	)
	defer span.End()

	event.EventID = uuid.NewString()
	event.EventType = EventTypeWishlistEntryAdded
	event.Timestamp = time.Now()

	if err := p.publish(TopicWishlistEntryAdded, event.EventID, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("event.id", event.EventID))
	return nil
}

func (p *Publisher) publish(topic, key string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Logger.Debug().
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("event published")

	return nil
}

// Close shuts down the underlying producer
func (p *Publisher) Close() error {
	return p.producer.Close()
}
