package database

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/arklim/social-platform-blog/internal/core/domain"
	postgresrepo "github.com/arklim/social-platform-blog/internal/repository/postgres"
)

// Seed loads the declarative initial-data list into the blogs table. It is
// best-effort: any failure is logged and swallowed so startup never aborts.
// Seeding is skipped when the store already holds records.
func Seed(ctx context.Context, pool *pgxpool.Pool, repo *postgresrepo.BlogRepository, path string, log *zap.Logger) {
	if path == "" {
		return
	}

	seeds, err := loadSeedFile(path)
	if err != nil {
		log.Warn("skipping initial data load", zap.String("path", path), zap.Error(err))
		return
	}
	if len(seeds) == 0 {
		return
	}

	existing, err := repo.List(ctx, 0, 1)
	if err != nil {
		log.Warn("initial data load failed", zap.Error(err))
		return
	}
	if len(existing) > 0 {
		log.Info("store already populated, skipping initial data load")
		return
	}

	if err := insertSeeds(ctx, pool, repo, seeds); err != nil {
		log.Warn("initial data load failed", zap.Error(err))
		return
	}

	log.Info("initial blog posts loaded", zap.Int("count", len(seeds)))
}

func loadSeedFile(path string) ([]domain.BlogSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []domain.BlogSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	return seeds, nil
}

func insertSeeds(ctx context.Context, pool *pgxpool.Pool, repo *postgresrepo.BlogRepository, seeds []domain.BlogSeed) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txRepo := repo.WithTx(tx)
	now := time.Now().UTC()
	for _, seed := range seeds {
		blog := domain.Blog{
			Title:     seed.Title,
			Content:   seed.Content,
			UserID:    seed.UserID,
			CreatedAt: now,
		}
		if _, err := txRepo.Create(ctx, blog); err != nil {
			return fmt.Errorf("insert seed blog: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
