package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	uuid "github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	"github.com/arklim/social-platform-blog/internal/core/port"
	"github.com/arklim/social-platform-blog/internal/repository"
)

const (
	defaultListLimit = 100
)

var (
	// ErrBlogNotFound indicates no blog post exists for the requested id.
	ErrBlogNotFound = errors.New("blog not found")
	// ErrInvalidTitle indicates the title is missing or empty.
	ErrInvalidTitle = errors.New("title is required")
	// ErrInvalidContent indicates the content is missing or empty.
	ErrInvalidContent = errors.New("content is required")
)

// CreateBlogInput captures the payload for creating a blog post. Owner and
// creation timestamp are stamped server-side; any client-supplied values for
// those fields never reach this input.
type CreateBlogInput struct {
	Title   string
	Content string
}

// BlogService maps domain operations onto the blog repository. All policy
// decisions live in the transport layer; this service only stamps ownership
// and timestamps and filters partial updates.
type BlogService struct {
	blogs  port.BlogRepository
	events port.EventPublisher
	logger *zap.Logger
	now    func() time.Time
}

// NewBlogService constructs a BlogService.
func NewBlogService(blogs port.BlogRepository, events port.EventPublisher, log *zap.Logger) *BlogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BlogService{
		blogs:  blogs,
		events: events,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the timestamp source. Intended for tests.
func (s *BlogService) WithClock(now func() time.Time) *BlogService {
	if now != nil {
		s.now = now
	}
	return s
}

// ListBlogs returns blog posts with offset/limit pagination in ascending id order.
func (s *BlogService) ListBlogs(ctx context.Context, skip, limit int) ([]domain.Blog, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	blogs, err := s.blogs.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	s.logger.Info("blogs retrieved", zap.Int("count", len(blogs)), zap.Int("skip", skip), zap.Int("limit", limit))

	return blogs, nil
}

// GetBlog retrieves a blog post by id. Absence surfaces as ErrBlogNotFound.
func (s *BlogService) GetBlog(ctx context.Context, id int64) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}

	return blog, nil
}

// CreateBlog persists a new blog post, stamping the owner and the current UTC
// timestamp server-side.
func (s *BlogService) CreateBlog(ctx context.Context, ownerID string, input CreateBlogInput) (*domain.Blog, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("owner id is required")
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrInvalidContent
	}

	blog := domain.Blog{
		Title:     input.Title,
		Content:   input.Content,
		UserID:    ownerID,
		CreatedAt: s.now(),
	}

	created, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	s.logger.Info("blog created", zap.Int64("blog_id", created.ID), zap.String("user", ownerID))

	s.publishCreated(ctx, *created)

	return created, nil
}

// UpdateBlog applies a partial update. Fields absent from the patch keep
// their prior values; an empty patch is a no-op returning the current record.
func (s *BlogService) UpdateBlog(ctx context.Context, actorID string, id int64, patch domain.BlogPatch) (*domain.Blog, error) {
	updated, err := s.blogs.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	s.logger.Info("blog updated", zap.Int64("blog_id", id), zap.Strings("fields", patch.Fields()))

	if !patch.IsEmpty() {
		s.publishUpdated(ctx, actorID, id, patch.Fields())
	}

	return updated, nil
}

// DeleteBlog removes a blog post. Absence surfaces as ErrBlogNotFound.
func (s *BlogService) DeleteBlog(ctx context.Context, actorID string, id int64) error {
	if err := s.blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("delete blog: %w", err)
	}

	s.logger.Info("blog deleted", zap.Int64("blog_id", id), zap.String("actor", actorID))

	s.publishDeleted(ctx, actorID, id)

	return nil
}

// Event publication is best-effort: a broker failure must never fail the
// request that already committed.

func (s *BlogService) publishCreated(ctx context.Context, blog domain.Blog) {
	if s.events == nil {
		return
	}
	event := domain.BlogCreatedEvent{
		EventID:   uuid.NewString(),
		BlogID:    blog.ID,
		UserID:    blog.UserID,
		Title:     blog.Title,
		CreatedAt: blog.CreatedAt,
	}
	if err := s.events.PublishBlogCreated(ctx, event); err != nil {
		s.logger.Warn("publish blog created event failed", zap.Int64("blog_id", blog.ID), zap.Error(err))
	}
}

func (s *BlogService) publishUpdated(ctx context.Context, actorID string, id int64, fields []string) {
	if s.events == nil {
		return
	}
	event := domain.BlogUpdatedEvent{
		EventID:       uuid.NewString(),
		BlogID:        id,
		ActorID:       actorID,
		UpdatedFields: fields,
		UpdatedAt:     s.now(),
	}
	if err := s.events.PublishBlogUpdated(ctx, event); err != nil {
		s.logger.Warn("publish blog updated event failed", zap.Int64("blog_id", id), zap.Error(err))
	}
}

func (s *BlogService) publishDeleted(ctx context.Context, actorID string, id int64) {
	if s.events == nil {
		return
	}
	event := domain.BlogDeletedEvent{
		EventID:   uuid.NewString(),
		BlogID:    id,
		ActorID:   actorID,
		DeletedAt: s.now(),
	}
	if err := s.events.PublishBlogDeleted(ctx, event); err != nil {
		s.logger.Warn("publish blog deleted event failed", zap.Int64("blog_id", id), zap.Error(err))
	}
}
