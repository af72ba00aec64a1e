package todo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, t *Todo) error
	GetByID(ctx context.Context, id string) (*Todo, error)
	List(ctx context.Context, filter Filter) ([]*Todo, int, error)
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, id string) error

	CreateComment(ctx context.Context, c *Comment) error
	GetCommentByID(ctx context.Context, id string) (*Comment, error)
	ListComments(ctx context.Context, todoID string) ([]*Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) Create(ctx context.Context, t *Todo) error {
	query, args, err := psql.Insert("public.todos").
		Columns("user_id", "category_id", "title", "description", "status", "due_date").
		Values(t.UserID, t.CategoryID, t.Title, t.Description, t.Status, t.DueDate).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create todo query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("create todo failed: %w", err)
	}
	return nil
}

const todoSelectColumns = `t.id, t.user_id, COALESCE(u.display_name, u.email), t.category_id, c.name,
	t.title, t.description, t.status, t.due_date,
	(SELECT count(*) FROM public.todo_comments tc WHERE tc.todo_id = t.id),
	t.created_at, t.updated_at`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Todo, error) {
	query, args, err := psql.Select(todoSelectColumns).
		From("public.todos t").
		Join("public.users u ON t.user_id = u.id").
		LeftJoin("public.categories c ON t.category_id = c.id").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get todo query failed: %w", err)
	}

	var t Todo
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&t.ID, &t.UserID, &t.UserName, &t.CategoryID, &t.CategoryName,
		&t.Title, &t.Description, &t.Status, &t.DueDate,
		&t.CommentCount, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get todo failed: %w", err)
	}
	return &t, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Todo, int, error) {
	query := psql.Select(todoSelectColumns + ", count(*) OVER() AS total_count").
		From("public.todos t").
		Join("public.users u ON t.user_id = u.id").
		LeftJoin("public.categories c ON t.category_id = c.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"t.user_id": filter.UserID})
	}
	if filter.CategoryID != "" {
		query = query.Where(squirrel.Eq{"t.category_id": filter.CategoryID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"t.status": filter.Status})
	}

	orderBy := "t.created_at"
	if filter.SortBy != "" {
		orderBy = "t." + filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list todos query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list todos failed: %w", err)
	}
	defer rows.Close()

	var todos []*Todo
	var total int
	for rows.Next() {
		var t Todo
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.UserName, &t.CategoryID, &t.CategoryName,
			&t.Title, &t.Description, &t.Status, &t.DueDate,
			&t.CommentCount, &t.CreatedAt, &t.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan todo failed: %w", err)
		}
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list todos rows failed: %w", err)
	}

	return todos, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, t *Todo) error {
	query, args, err := psql.Update("public.todos").
		Set("category_id", t.CategoryID).
		Set("title", t.Title).
		Set("description", t.Description).
		Set("status", t.Status).
		Set("due_date", t.DueDate).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update todo query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("update todo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.todos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete todo query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete todo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CreateComment(ctx context.Context, c *Comment) error {
	query, args, err := psql.Insert("public.todo_comments").
		Columns("todo_id", "user_id", "content").
		Values(c.TodoID, c.UserID, c.Content).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create comment query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrNotFound
		}
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetCommentByID(ctx context.Context, id string) (*Comment, error) {
	query, args, err := psql.Select(
		"tc.id", "tc.todo_id", "tc.user_id", "COALESCE(u.display_name, u.email)",
		"tc.content", "tc.created_at",
	).
		From("public.todo_comments tc").
		Join("public.users u ON tc.user_id = u.id").
		Where(squirrel.Eq{"tc.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get comment query failed: %w", err)
	}

	var c Comment
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.TodoID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) ListComments(ctx context.Context, todoID string) ([]*Comment, error) {
	query, args, err := psql.Select(
		"tc.id", "tc.todo_id", "tc.user_id", "COALESCE(u.display_name, u.email)",
		"tc.content", "tc.created_at",
	).
		From("public.todo_comments tc").
		Join("public.users u ON tc.user_id = u.id").
		Where(squirrel.Eq{"tc.todo_id": todoID}).
		OrderBy("tc.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(
			&c.ID, &c.TodoID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments rows failed: %w", err)
	}

	return comments, nil
}

func (r *pgxRepository) DeleteComment(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.todo_comments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrCommentNotFound
	}
	return nil
}
