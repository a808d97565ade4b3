package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	"github.com/arklim/social-platform-blog/internal/repository"
)

// Mock repository for blog testing

type blogRepoMock struct {
	blogs     map[int64]domain.Blog
	nextID    int64
	createErr error
	listErr   error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
}

func newBlogRepoMock() *blogRepoMock {
	return &blogRepoMock{blogs: make(map[int64]domain.Blog), nextID: 1}
}

func (m *blogRepoMock) Create(_ context.Context, blog domain.Blog) (*domain.Blog, error) {
	m.createCalls++
	if m.createErr != nil {
		return nil, m.createErr
	}
	blog.ID = m.nextID
	m.nextID++
	m.blogs[blog.ID] = blog
	return &blog, nil
}

func (m *blogRepoMock) GetByID(_ context.Context, id int64) (*domain.Blog, error) {
	blog, ok := m.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &blog, nil
}

func (m *blogRepoMock) List(_ context.Context, skip, limit int) ([]domain.Blog, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]domain.Blog, 0, len(m.blogs))
	for id := int64(1); id < m.nextID; id++ {
		if blog, ok := m.blogs[id]; ok {
			result = append(result, blog)
		}
	}
	if skip >= len(result) {
		return []domain.Blog{}, nil
	}
	result = result[skip:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (m *blogRepoMock) Update(_ context.Context, id int64, patch domain.BlogPatch) (*domain.Blog, error) {
	m.updateCalls++
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	blog, ok := m.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		blog.Title = *patch.Title
	}
	if patch.Content != nil {
		blog.Content = *patch.Content
	}
	m.blogs[id] = blog
	return &blog, nil
}

func (m *blogRepoMock) Delete(_ context.Context, id int64) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

// Recording event publisher

type eventsMock struct {
	created []domain.BlogCreatedEvent
	updated []domain.BlogUpdatedEvent
	deleted []domain.BlogDeletedEvent
	err     error
}

func (m *eventsMock) PublishBlogCreated(_ context.Context, event domain.BlogCreatedEvent) error {
	m.created = append(m.created, event)
	return m.err
}

func (m *eventsMock) PublishBlogUpdated(_ context.Context, event domain.BlogUpdatedEvent) error {
	m.updated = append(m.updated, event)
	return m.err
}

func (m *eventsMock) PublishBlogDeleted(_ context.Context, event domain.BlogDeletedEvent) error {
	m.deleted = append(m.deleted, event)
	return m.err
}

func TestCreateBlogStampsOwnerAndTimestamp(t *testing.T) {
	repo := newBlogRepoMock()
	events := &eventsMock{}
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewBlogService(repo, events, nil).WithClock(func() time.Time { return fixed })

	blog, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	if blog.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if blog.UserID != "u1" {
		t.Fatalf("expected owner u1, got %q", blog.UserID)
	}
	if !blog.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at %v, got %v", fixed, blog.CreatedAt)
	}
	if len(events.created) != 1 {
		t.Fatalf("expected 1 created event, got %d", len(events.created))
	}
	if events.created[0].UserID != "u1" || events.created[0].BlogID != blog.ID {
		t.Fatalf("unexpected created event: %+v", events.created[0])
	}
}

func TestCreateBlogValidatesInput(t *testing.T) {
	repo := newBlogRepoMock()
	svc := NewBlogService(repo, nil, nil)

	if _, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "", Content: "B"}); !errors.Is(err, ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if _, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "A", Content: " "}); !errors.Is(err, ErrInvalidContent) {
		t.Fatalf("expected ErrInvalidContent, got %v", err)
	}
	if _, err := svc.CreateBlog(context.Background(), "  ", CreateBlogInput{Title: "A", Content: "B"}); err == nil {
		t.Fatal("expected error for empty owner id")
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no repository calls, got %d", repo.createCalls)
	}
}

func TestUpdateBlogPartialPreservesOtherFields(t *testing.T) {
	repo := newBlogRepoMock()
	svc := NewBlogService(repo, nil, nil)

	created, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	title := "A2"
	updated, err := svc.UpdateBlog(context.Background(), "u1", created.ID, domain.BlogPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdateBlog returned error: %v", err)
	}

	if updated.Title != "A2" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Content != "B" {
		t.Fatalf("expected content unchanged, got %q", updated.Content)
	}
	if updated.UserID != "u1" {
		t.Fatalf("expected owner unchanged, got %q", updated.UserID)
	}
}

func TestUpdateBlogEmptyPatchPublishesNoEvent(t *testing.T) {
	repo := newBlogRepoMock()
	events := &eventsMock{}
	svc := NewBlogService(repo, events, nil)

	created, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	updated, err := svc.UpdateBlog(context.Background(), "u1", created.ID, domain.BlogPatch{})
	if err != nil {
		t.Fatalf("UpdateBlog returned error: %v", err)
	}

	if updated.Title != "A" || updated.Content != "B" {
		t.Fatalf("expected record unchanged, got %+v", updated)
	}
	if len(events.updated) != 0 {
		t.Fatalf("expected no updated events, got %d", len(events.updated))
	}
}

func TestUpdateBlogNotFound(t *testing.T) {
	repo := newBlogRepoMock()
	svc := NewBlogService(repo, nil, nil)

	title := "A"
	if _, err := svc.UpdateBlog(context.Background(), "u1", 42, domain.BlogPatch{Title: &title}); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestDeleteBlogNotFound(t *testing.T) {
	repo := newBlogRepoMock()
	svc := NewBlogService(repo, nil, nil)

	if err := svc.DeleteBlog(context.Background(), "u1", 42); !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestDeleteBlogPublishesEvent(t *testing.T) {
	repo := newBlogRepoMock()
	events := &eventsMock{}
	svc := NewBlogService(repo, events, nil)

	created, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	if err := svc.DeleteBlog(context.Background(), "u2", created.ID); err != nil {
		t.Fatalf("DeleteBlog returned error: %v", err)
	}

	if len(events.deleted) != 1 {
		t.Fatalf("expected 1 deleted event, got %d", len(events.deleted))
	}
	if events.deleted[0].ActorID != "u2" {
		t.Fatalf("expected actor u2, got %q", events.deleted[0].ActorID)
	}
}

func TestDeleteBlogEventFailureDoesNotFailRequest(t *testing.T) {
	repo := newBlogRepoMock()
	events := &eventsMock{err: errors.New("broker down")}
	svc := NewBlogService(repo, events, nil)

	created, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "A", Content: "B"})
	if err != nil {
		t.Fatalf("CreateBlog returned error: %v", err)
	}

	if err := svc.DeleteBlog(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("expected delete to succeed despite event failure, got %v", err)
	}
}

func TestListBlogsAppliesDefaults(t *testing.T) {
	repo := newBlogRepoMock()
	svc := NewBlogService(repo, nil, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateBlog(context.Background(), "u1", CreateBlogInput{Title: "T", Content: "C"}); err != nil {
			t.Fatalf("CreateBlog returned error: %v", err)
		}
	}

	blogs, err := svc.ListBlogs(context.Background(), -5, 0)
	if err != nil {
		t.Fatalf("ListBlogs returned error: %v", err)
	}
	if len(blogs) != 3 {
		t.Fatalf("expected 3 blogs, got %d", len(blogs))
	}
}

func TestListBlogsPropagatesStorageError(t *testing.T) {
	repo := newBlogRepoMock()
	repo.listErr = errors.New("connection reset")
	svc := NewBlogService(repo, nil, nil)

	if _, err := svc.ListBlogs(context.Background(), 0, 10); err == nil {
		t.Fatal("expected storage error to propagate")
	}
}
