package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	List(ctx context.Context, page, pageSize int) ([]*Photo, int, error)
	UpdateCaption(ctx context.Context, id, caption string) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, p *Photo) error {
	query, args, err := psql.Insert("public.photos").
		Columns("id", "user_id", "caption", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		Values(p.ID, p.UserID, p.Caption, p.Filename, p.StoragePath, p.ThumbnailPath, p.ContentType, p.Size, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create photo query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create photo failed: %w", err)
	}
	return nil
}

const photoSelectColumns = `p.id, p.user_id, COALESCE(u.display_name, u.email), p.caption,
	p.filename, p.storage_path, p.thumbnail_path, p.content_type, p.size, p.created_at`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Photo, error) {
	query, args, err := psql.Select(photoSelectColumns).
		From("public.photos p").
		Join("public.users u ON p.user_id = u.id").
		Where(squirrel.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get photo query failed: %w", err)
	}

	var p Photo
	var thumbnailPath sql.NullString
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.UserID, &p.UserName, &p.Caption,
		&p.Filename, &p.StoragePath, &thumbnailPath, &p.ContentType, &p.Size, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get photo failed: %w", err)
	}
	if thumbnailPath.Valid {
		p.ThumbnailPath = &thumbnailPath.String
	}
	return &p, nil
}

func (r *pgxRepository) List(ctx context.Context, page, pageSize int) ([]*Photo, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	query, args, err := psql.Select(photoSelectColumns + ", count(*) OVER() AS total_count").
		From("public.photos p").
		Join("public.users u ON p.user_id = u.id").
		OrderBy("p.created_at DESC").
		Limit(uint64(pageSize)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list photos query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list photos failed: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	var total int
	for rows.Next() {
		var p Photo
		var thumbnailPath sql.NullString
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.UserName, &p.Caption,
			&p.Filename, &p.StoragePath, &thumbnailPath, &p.ContentType, &p.Size, &p.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan photo row failed: %w", err)
		}
		if thumbnailPath.Valid {
			p.ThumbnailPath = &thumbnailPath.String
		}
		photos = append(photos, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate photo rows failed: %w", err)
	}
	return photos, total, nil
}

func (r *pgxRepository) UpdateCaption(ctx context.Context, id, caption string) error {
	query, args, err := psql.Update("public.photos").
		Set("caption", caption).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update photo query failed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update photo failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete photo query failed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete photo failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
