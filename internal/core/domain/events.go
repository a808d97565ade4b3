package domain

import "time"

// BlogCreatedEvent is emitted after a blog post is persisted.
type BlogCreatedEvent struct {
	EventID   string
	BlogID    int64
	UserID    string
	Title     string
	CreatedAt time.Time
}

// BlogUpdatedEvent is emitted after a blog post is modified.
type BlogUpdatedEvent struct {
	EventID       string
	BlogID        int64
	ActorID       string
	UpdatedFields []string
	UpdatedAt     time.Time
}

// BlogDeletedEvent is emitted after a blog post is removed.
type BlogDeletedEvent struct {
	EventID   string
	BlogID    int64
	ActorID   string
	DeletedAt time.Time
}
