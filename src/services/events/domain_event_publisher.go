package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"usernetwork/src/domain"
	"usernetwork/src/infra/kafka"

	"github.com/google/uuid"
)

type DomainEventPublisher struct {
	logger      *slog.Logger
	kafkaClient *kafka.KafkaClient
	topic       string
}

func NewDomainEventPublisher(
	logger *slog.Logger,
	kafkaClient *kafka.KafkaClient,
	topic string,
) *DomainEventPublisher {
	return &DomainEventPublisher{
		logger:      logger,
		kafkaClient: kafkaClient,
		topic:       topic,
	}
}

// PublishConnectionEvent publica um evento de edge no tópico de conexões.
// A chave é o par normalizado, garantindo ordering por par de usuários.
func (p *DomainEventPublisher) PublishConnectionEvent(ctx context.Context, eventType string, data domain.ConnectionEventData) error {
	event := domain.ConnectionEvent{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal connection event: %w", err)
	}

	kafkaMsg := kafka.Message{
		Key:   pairKey(data.FromUserID, data.ToUserID),
		Value: eventBytes,
		Headers: map[string]string{
			"event_type":     eventType,
			"source_service": "user-network-api",
			"schema_version": "v1",
			"event_id":       event.EventID,
			"status":         string(data.Status),
		},
	}

	if err := p.kafkaClient.Producer([]kafka.Message{kafkaMsg}, p.topic); err != nil {
		p.logger.Error("Failed to publish connection event to Kafka",
			"error", err,
			"topic", p.topic,
			"event_type", eventType,
			"request_id", data.RequestID)
		return fmt.Errorf("failed to publish connection event to topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published connection event",
		"topic", p.topic,
		"event_type", eventType,
		"event_id", event.EventID)

	return nil
}

// pairKey normaliza o par não-ordenado para a chave da mensagem.
func pairKey(userA, userB int64) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("%d:%d", userA, userB)
}
