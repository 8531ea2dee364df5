package sessionentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kervan-app/kervan-mobile/internal/repository"
	"github.com/kervan-app/kervan-mobile/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *PgxRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := repository.SqBuilder.
		Select("value").
		From("session_entries").
		Where("key = ?", key).
		ToSql()
	if err != nil {
		return "", repository.ErrBadQuery
	}

	var value string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get session entry %s: %w", key, err)
	}

	return value, nil
}

func (r *PgxRepository) Set(ctx context.Context, key string, value string) error {
	query, args, err := repository.SqBuilder.
		Insert("session_entries").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		r.logger.Error("Failed to save session entry", "key", key, "error", err)
		return ErrCannotSave
	}

	return nil
}

func (r *PgxRepository) Delete(ctx context.Context, key string) error {
	query, args, err := repository.SqBuilder.
		Delete("session_entries").
		Where("key = ?", key).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete session entry %s: %w", key, err)
	}

	return nil
}

func (r *PgxRepository) DeleteAllExcept(ctx context.Context, keep []string) error {
	builder := repository.SqBuilder.Delete("session_entries")
	if len(keep) > 0 {
		builder = builder.Where("key != ALL(?)", keep)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear session entries: %w", err)
	}

	return nil
}

var _ Repository = (*PgxRepository)(nil)
