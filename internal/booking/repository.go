package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// bookingsLockKey serializes check-then-insert for the single shared cabin.
// Every conflict-checked write takes this advisory lock for the duration of
// its transaction, closing the race between the overlap check and the insert.
const bookingsLockKey = 815001

type Repository interface {
	// CreateChecked inserts the booking after re-running the conflict check
	// inside a transaction holding the bookings advisory lock. Returns
	// ErrDateConflict when the range is taken.
	CreateChecked(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// UpdateChecked persists the booking after re-running the conflict check
	// against all other blocking bookings, under the same advisory lock.
	UpdateChecked(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error

	// ListBlockingOverlapping returns all blocking bookings whose inclusive
	// date range intersects [from, to]. The status filter lives here and
	// only here so it is applied exactly once on the read path.
	ListBlockingOverlapping(ctx context.Context, from, to time.Time) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) CreateChecked(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockBookings(ctx, tx); err != nil {
		return err
	}

	conflict, err := hasConflictLocked(ctx, tx, b, "")
	if err != nil {
		return err
	}
	if conflict {
		return ErrDateConflict
	}

	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "title", "guest_count", "start_date", "end_date", "arrival_half", "status").
		Values(b.UserID, b.Title, b.GuestCount, b.StartDate, b.EndDate, b.ArrivalHalf, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) UpdateChecked(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := lockBookings(ctx, tx); err != nil {
		return err
	}

	if b.Status.IsBlocking() {
		conflict, err := hasConflictLocked(ctx, tx, b, b.ID)
		if err != nil {
			return err
		}
		if conflict {
			return ErrDateConflict
		}
	}

	query, args, err := psql.Update("public.bookings").
		Set("title", b.Title).
		Set("guest_count", b.GuestCount).
		Set("start_date", b.StartDate).
		Set("end_date", b.EndDate).
		Set("arrival_half", b.ArrivalHalf).
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

// lockBookings takes the transaction-scoped advisory lock for booking writes.
func lockBookings(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", bookingsLockKey); err != nil {
		return fmt.Errorf("acquire bookings lock failed: %w", err)
	}
	return nil
}

// hasConflictLocked re-evaluates the overlap predicate against the stored
// blocking bookings while the advisory lock is held. excludeID skips the
// booking itself during updates.
func hasConflictLocked(ctx context.Context, tx pgx.Tx, b *Booking, excludeID string) (bool, error) {
	builder := psql.Select("id", "start_date", "end_date", "status").
		From("public.bookings").
		Where(squirrel.NotEq{"status": StatusCancelled}).
		Where(squirrel.LtOrEq{"start_date": b.EndDate}).
		Where(squirrel.GtOrEq{"end_date": b.StartDate})

	if excludeID != "" {
		builder = builder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("build conflict check query failed: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("conflict check query failed: %w", err)
	}
	defer rows.Close()

	var candidates []*Booking
	for rows.Next() {
		var c Booking
		if err := rows.Scan(&c.ID, &c.StartDate, &c.EndDate, &c.Status); err != nil {
			return false, fmt.Errorf("scan conflict candidate failed: %w", err)
		}
		candidates = append(candidates, &c)
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("conflict check rows failed: %w", err)
	}

	return HasConflict(candidates, DateRange{Start: b.StartDate, End: b.EndDate}), nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := psql.Select(
		"b.id", "b.user_id", "COALESCE(u.display_name, u.email)",
		"b.title", "b.guest_count", "b.start_date", "b.end_date",
		"b.arrival_half", "b.status", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.UserID, &b.UserName,
		&b.Title, &b.GuestCount, &b.StartDate, &b.EndDate,
		&b.ArrivalHalf, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	query := psql.Select(
		"b.id", "b.user_id", "COALESCE(u.display_name, u.email)",
		"b.title", "b.guest_count", "b.start_date", "b.end_date",
		"b.arrival_half", "b.status", "b.created_at", "b.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// window intersection: keep bookings overlapping [From, To]
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_date": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_date": *filter.To})
	}

	orderBy := "b.start_date"
	if filter.SortBy != "" {
		orderBy = "b." + filter.SortBy
	}
	orderDir := "ASC"
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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName,
			&b.Title, &b.GuestCount, &b.StartDate, &b.EndDate,
			&b.ArrivalHalf, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list bookings rows failed: %w", err)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListBlockingOverlapping(ctx context.Context, from, to time.Time) ([]*Booking, error) {
	query, args, err := psql.Select(
		"b.id", "b.user_id", "COALESCE(u.display_name, u.email)",
		"b.title", "b.guest_count", "b.start_date", "b.end_date",
		"b.arrival_half", "b.status", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Where(squirrel.NotEq{"b.status": StatusCancelled}).
		Where(squirrel.LtOrEq{"b.start_date": to}).
		Where(squirrel.GtOrEq{"b.end_date": from}).
		OrderBy("b.start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlapping bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list overlapping bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName,
			&b.Title, &b.GuestCount, &b.StartDate, &b.EndDate,
			&b.ArrivalHalf, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan overlapping booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("overlapping bookings rows failed: %w", err)
	}

	return bookings, nil
}
