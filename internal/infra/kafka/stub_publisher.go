package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	"github.com/arklim/social-platform-blog/internal/core/port"
)

// StubPublisher logs events instead of sending them to Kafka. Useful for development environments.
type StubPublisher struct {
	logger *zap.Logger
}

// NewStubPublisher constructs a development-friendly event publisher.
func NewStubPublisher(logger *zap.Logger) *StubPublisher {
	return &StubPublisher{logger: logger}
}

func (p *StubPublisher) logEvent(eventType string, blogID int64, at time.Time, payload any) {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	p.logger.Info("Stub event published",
		zap.String("event_type", eventType),
		zap.Int64("blog_id", blogID),
		zap.Time("timestamp", at.UTC()),
		zap.Any("payload", payload),
	)
}

// PublishBlogCreated logs blog.post.created events.
func (p *StubPublisher) PublishBlogCreated(_ context.Context, event domain.BlogCreatedEvent) error {
	payload := map[string]any{
		"blog_id":    event.BlogID,
		"user_id":    event.UserID,
		"title":      event.Title,
		"created_at": event.CreatedAt,
	}
	p.logEvent("blog.post.created", event.BlogID, event.CreatedAt, payload)
	return nil
}

// PublishBlogUpdated logs blog.post.updated events.
func (p *StubPublisher) PublishBlogUpdated(_ context.Context, event domain.BlogUpdatedEvent) error {
	payload := map[string]any{
		"blog_id":        event.BlogID,
		"actor_id":       event.ActorID,
		"updated_fields": event.UpdatedFields,
		"updated_at":     event.UpdatedAt,
	}
	p.logEvent("blog.post.updated", event.BlogID, event.UpdatedAt, payload)
	return nil
}

// PublishBlogDeleted logs blog.post.deleted events.
func (p *StubPublisher) PublishBlogDeleted(_ context.Context, event domain.BlogDeletedEvent) error {
	payload := map[string]any{
		"blog_id":    event.BlogID,
		"actor_id":   event.ActorID,
		"deleted_at": event.DeletedAt,
	}
	p.logEvent("blog.post.deleted", event.BlogID, event.DeletedAt, payload)
	return nil
}

var _ port.EventPublisher = (*StubPublisher)(nil)
