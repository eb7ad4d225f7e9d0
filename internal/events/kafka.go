package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"foodhub/internal/config"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// KafkaPublisher writes events to Kafka, one topic per event type.
type KafkaPublisher struct {
	producer    sarama.SyncProducer
	topicPrefix string
	logger      zerolog.Logger
}

// NewKafkaPublisher connects a synchronous producer to the configured brokers.
func NewKafkaPublisher(cfg config.KafkaConfig, logger zerolog.Logger) (*KafkaPublisher, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.ClientID = "foodhub"

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	logger.Info().
		Strs("brokers", cfg.Brokers).
		Str("topic_prefix", cfg.TopicPrefix).
		Msg("kafka producer initialized")

	return NewKafkaPublisherWithProducer(producer, cfg.TopicPrefix, logger), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topicPrefix string, logger zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		producer:    producer,
		topicPrefix: topicPrefix,
		logger:      logger.With().Str("component", "kafka_publisher").Logger(),
	}
}

// Topic returns the topic an event type is written to.
func (p *KafkaPublisher) Topic(eventType string) string {
	return p.topicPrefix + eventType
}

// Publish sends the event and waits for the broker acknowledgement.
// The entity id is used as the message key so changes to one row stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.Topic(event.Type),
		Key:       sarama.StringEncoder(event.Entity + ":" + strconv.FormatInt(event.ID, 10)),
		Value:     sarama.ByteEncoder(data),
		Timestamp: event.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send kafka message: %w", err)
	}

	p.logger.Debug().
		Str("topic", msg.Topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("event published")

	return nil
}

// Close flushes and closes the underlying producer.
func (p *KafkaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}
