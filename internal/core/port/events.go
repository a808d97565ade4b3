package port

import (
	"context"

	"github.com/arklim/social-platform-blog/internal/core/domain"
)

// EventPublisher publishes blog lifecycle events to the message bus.
type EventPublisher interface {
	PublishBlogCreated(ctx context.Context, event domain.BlogCreatedEvent) error
	PublishBlogUpdated(ctx context.Context, event domain.BlogUpdatedEvent) error
	PublishBlogDeleted(ctx context.Context, event domain.BlogDeletedEvent) error
}
