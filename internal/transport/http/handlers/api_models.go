package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arklim/social-platform-blog/internal/core/domain"
)

// ErrorResponse represents a generic error payload with trace ID for debugging.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

// NewErrorResponse creates an error response with trace ID from context
func NewErrorResponse(c *gin.Context, errorMsg string) ErrorResponse {
	traceID, _ := c.Get("trace_id")
	traceIDStr, _ := traceID.(string)

	return ErrorResponse{
		Error:   errorMsg,
		TraceID: traceIDStr,
	}
}

// MessageResponse represents a simple message payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// BlogCreateRequest defines the payload for creating a blog post. Owner and
// creation timestamp are assigned server-side; values supplied for them in
// the request body are ignored.
type BlogCreateRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// BlogUpdateRequest defines the partial-update payload. Omitted fields keep
// their prior values.
type BlogUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// BlogResponse is the public view of a blog post.
type BlogResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBlogResponse maps a domain blog to its public response shape.
func NewBlogResponse(blog domain.Blog) BlogResponse {
	return BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		User:      blog.UserID,
		CreatedAt: blog.CreatedAt.UTC(),
	}
}

// BlogCreateResponse confirms creation with the assigned identifier.
type BlogCreateResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string    `json:"status"`
	StartedAt time.Time `json:"started_at"`
}

// ReadinessResponse reports per-dependency readiness.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
