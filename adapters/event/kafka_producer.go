package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/config"
	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

// messageWriter is the part of *kafka.Writer the producer needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	AboutEventsWriter messageWriter
	logger            logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	aboutWriter := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Kafka.AboutTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers), zap.String("topic", cfg.Kafka.AboutTopic))

	return &KafkaProducerClient{
		AboutEventsWriter: aboutWriter,
		logger:            log,
	}, nil
}

// PublishProfileEvent keys messages by profile id so events for one revision
// stay ordered within a partition.
func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, e about.Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal about event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(e.ProfileID.String()),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.EventType)},
		},
	}
	if err := c.AboutEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write about event: %w", err)
	}

	c.logger.Debug("Published about event", zap.String("event_type", string(e.EventType)), zap.String("profile_id", e.ProfileID.String()))
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AboutEventsWriter != nil {
		if err := c.AboutEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka writer", err)
		}
	}
	c.logger.Info("Closed Kafka Producers")
}

// DecodeProfileEvent parses a message produced by PublishProfileEvent.
func DecodeProfileEvent(msg kafka.Message) (about.Event, error) {
	var e about.Event
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return e, fmt.Errorf("unmarshal about event: %w", err)
	}
	if e.EventType == "" {
		return e, fmt.Errorf("about event without event_type")
	}
	return e, nil
}
