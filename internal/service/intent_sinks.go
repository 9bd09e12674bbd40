package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/tinta-academy-api/internal/models"
	"github.com/noah-isme/tinta-academy-api/pkg/broker"
)

// LogSink writes each intent as a structured log line.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink constructs a LogSink.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger.Named("intents")}
}

// Name identifies the sink.
func (s *LogSink) Name() string { return "log" }

// Deliver logs the intent.
func (s *LogSink) Deliver(_ context.Context, intent models.Intent) error {
	s.logger.Info("intent",
		zap.String("intent_id", intent.ID),
		zap.String("kind", string(intent.Kind)),
		zap.String("actor_id", intent.ActorID),
		zap.String("request_id", intent.RequestID),
		zap.Time("accepted_at", intent.AcceptedAt),
		zap.ByteString("payload", intent.Payload),
	)
	return nil
}

type messagePublisher interface {
	Publish(ctx context.Context, msg broker.Message) error
}

// BrokerSink forwards intents to the message broker.
type BrokerSink struct {
	publisher messagePublisher
}

// NewBrokerSink constructs a BrokerSink.
func NewBrokerSink(publisher messagePublisher) *BrokerSink {
	return &BrokerSink{publisher: publisher}
}

// Name identifies the sink.
func (s *BrokerSink) Name() string { return "amqp" }

// Deliver publishes the intent as JSON.
func (s *BrokerSink) Deliver(ctx context.Context, intent models.Intent) error {
	body, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("encode intent %s: %w", intent.ID, err)
	}
	return s.publisher.Publish(ctx, broker.Message{
		ID:            intent.ID,
		CorrelationID: intent.RequestID,
		Type:          string(intent.Kind),
		Body:          body,
		AcceptedAt:    intent.AcceptedAt,
	})
}
