package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context, key string) (*Setting, error)
	ListAll(ctx context.Context) ([]*Setting, error)
	// Upsert writes the value, inserting the key if it does not exist yet.
	Upsert(ctx context.Context, key, value string) (*Setting, error)
	Delete(ctx context.Context, key string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Get(ctx context.Context, key string) (*Setting, error) {
	query, args, err := psql.Select("key", "value", "updated_at").
		From("public.settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get setting query failed: %w", err)
	}

	var s Setting
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get setting failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Setting, error) {
	query, args, err := psql.Select("key", "value", "updated_at").
		From("public.settings").
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list settings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list settings failed: %w", err)
	}
	defer rows.Close()

	var out []*Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting failed: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list settings rows failed: %w", err)
	}

	return out, nil
}

func (r *pgxRepository) Upsert(ctx context.Context, key, value string) (*Setting, error) {
	const query = `
		INSERT INTO public.settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		RETURNING key, value, updated_at
	`

	var s Setting
	if err := r.pool.QueryRow(ctx, query, key, value).Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("upsert setting failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Delete(ctx context.Context, key string) error {
	query, args, err := psql.Delete("public.settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete setting query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete setting failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
