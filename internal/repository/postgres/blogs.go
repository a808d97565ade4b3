package postgres

import (
	"context"
	"errors"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	"github.com/arklim/social-platform-blog/internal/core/port"
	"github.com/arklim/social-platform-blog/internal/repository"
)

const blogsTable = "blogs"

var blogColumns = []string{"id", "title", "content", "user_id", "created_at"}

// BlogRepository implements port.BlogRepository backed by PostgreSQL.
type BlogRepository struct {
	pool    *pgxpool.Pool
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewBlogRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewBlogRepository(exec pgExecutor) *BlogRepository {
	repo := &BlogRepository{
		exec:    exec,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	if pool, ok := exec.(*pgxpool.Pool); ok {
		repo.pool = pool
	}
	return repo
}

// WithTx returns a repository instance that executes statements within the supplied transaction.
func (r *BlogRepository) WithTx(tx pgx.Tx) *BlogRepository {
	if tx == nil {
		return r
	}
	return &BlogRepository{
		pool:    r.pool,
		exec:    tx,
		builder: r.builder,
	}
}

// Create inserts a new blog post and returns it with the assigned id.
func (r *BlogRepository) Create(ctx context.Context, blog domain.Blog) (*domain.Blog, error) {
	stmt, args, err := r.builder.Insert(blogsTable).
		Columns("title", "content", "user_id", "created_at").
		Values(blog.Title, blog.Content, blog.UserID, blog.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert blog sql: %w", err)
	}

	if err := r.exec.QueryRow(ctx, stmt, args...).Scan(&blog.ID); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	return &blog, nil
}

// GetByID retrieves a blog post by its id.
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*domain.Blog, error) {
	stmt, args, err := r.builder.Select(blogColumns...).
		From(blogsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select blog sql: %w", err)
	}

	var blog domain.Blog
	row := r.exec.QueryRow(ctx, stmt, args...)
	if err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.UserID, &blog.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan blog: %w", err)
	}

	return &blog, nil
}

// List retrieves blog posts in ascending id order with offset/limit pagination.
func (r *BlogRepository) List(ctx context.Context, skip, limit int) ([]domain.Blog, error) {
	stmt, args, err := r.builder.Select(blogColumns...).
		From(blogsTable).
		OrderBy("id ASC").
		Offset(uint64(skip)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blogs sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]domain.Blog, 0)
	for rows.Next() {
		var blog domain.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.UserID, &blog.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}

	return blogs, nil
}

// Update applies only the fields carried by the patch. Title and content are
// the only updatable columns; owner and creation timestamp never change.
func (r *BlogRepository) Update(ctx context.Context, id int64, patch domain.BlogPatch) (*domain.Blog, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query := r.builder.Update(blogsTable)
	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		query = query.Set("content", *patch.Content)
	}

	stmt, args, err := query.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update blog sql: %w", err)
	}

	var blog domain.Blog
	row := r.exec.QueryRow(ctx, stmt, args...)
	if err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.UserID, &blog.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update blog: %w", err)
	}

	return &blog, nil
}

// Delete removes a blog post by id.
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	stmt, args, err := r.builder.Delete(blogsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete blog sql: %w", err)
	}

	res, err := r.exec.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func columnList() string {
	return "id, title, content, user_id, created_at"
}

var _ port.BlogRepository = (*BlogRepository)(nil)
