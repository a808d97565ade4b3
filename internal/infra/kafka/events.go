package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	"github.com/arklim/social-platform-blog/internal/core/port"
	"github.com/arklim/social-platform-blog/internal/infra/config"
)

const schemaVersion = "1.0"

// EventPublisher implements port.EventPublisher using Kafka.
type EventPublisher struct {
	producer *Producer
	logger   *zap.Logger
	appCfg   config.AppSettings
}

// NewEventPublisher constructs a Kafka-backed event publisher.
func NewEventPublisher(producer *Producer, appCfg config.AppSettings, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{producer: producer, appCfg: appCfg, logger: logger}
}

type envelopeMetadata map[string]string

type eventEnvelope struct {
	EventID   string           `json:"event_id"`
	EventType string           `json:"event_type"`
	BlogID    int64            `json:"blog_id,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Version   string           `json:"version"`
	Payload   any              `json:"payload"`
	Metadata  envelopeMetadata `json:"metadata,omitempty"`
}

func (p *EventPublisher) publish(ctx context.Context, eventID, eventType string, blogID int64, ts time.Time, payload any) error {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	id := eventID
	if id == "" {
		id = uuid.NewString()
	}

	metadata := envelopeMetadata{
		"service":     p.appCfg.Name,
		"environment": p.appCfg.Env,
	}

	envelope := eventEnvelope{
		EventID:   id,
		EventType: eventType,
		BlogID:    blogID,
		Timestamp: ts.UTC(),
		Version:   schemaVersion,
		Payload:   payload,
		Metadata:  metadata,
	}

	bytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.producer.TopicName(eventType),
		Value: sarama.ByteEncoder(bytes),
	}

	select {
	case p.producer.Producer().Input() <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PublishBlogCreated publishes blog.post.created events.
func (p *EventPublisher) PublishBlogCreated(ctx context.Context, event domain.BlogCreatedEvent) error {
	payload := struct {
		BlogID    int64     `json:"blog_id"`
		UserID    string    `json:"user_id"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"created_at"`
	}{
		BlogID:    event.BlogID,
		UserID:    event.UserID,
		Title:     event.Title,
		CreatedAt: event.CreatedAt.UTC(),
	}

	return p.publish(ctx, event.EventID, "blog.post.created", event.BlogID, event.CreatedAt, payload)
}

// PublishBlogUpdated publishes blog.post.updated events.
func (p *EventPublisher) PublishBlogUpdated(ctx context.Context, event domain.BlogUpdatedEvent) error {
	payload := struct {
		BlogID        int64     `json:"blog_id"`
		ActorID       string    `json:"actor_id"`
		UpdatedFields []string  `json:"updated_fields"`
		UpdatedAt     time.Time `json:"updated_at"`
	}{
		BlogID:        event.BlogID,
		ActorID:       event.ActorID,
		UpdatedFields: event.UpdatedFields,
		UpdatedAt:     event.UpdatedAt.UTC(),
	}

	return p.publish(ctx, event.EventID, "blog.post.updated", event.BlogID, event.UpdatedAt, payload)
}

// PublishBlogDeleted publishes blog.post.deleted events.
func (p *EventPublisher) PublishBlogDeleted(ctx context.Context, event domain.BlogDeletedEvent) error {
	payload := struct {
		BlogID    int64     `json:"blog_id"`
		ActorID   string    `json:"actor_id"`
		DeletedAt time.Time `json:"deleted_at"`
	}{
		BlogID:    event.BlogID,
		ActorID:   event.ActorID,
		DeletedAt: event.DeletedAt.UTC(),
	}

	return p.publish(ctx, event.EventID, "blog.post.deleted", event.BlogID, event.DeletedAt, payload)
}

var _ port.EventPublisher = (*EventPublisher)(nil)
