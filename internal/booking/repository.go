package booking

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
	Create(ctx context.Context, b *Booking) error
	GetByIDForUser(ctx context.Context, id, userID string) (*Booking, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*Booking, int, error)
	ListByFacilityOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) error
	Count(ctx context.Context) (int, error)

	// HasOverlap checks for any non-Cancelled booking on the court and date
	// whose [start, end) window overlaps the given one. Touching boundaries
	// do not overlap.
	HasOverlap(ctx context.Context, courtID, date, startTime, endTime string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO public.bookings (
			user_id, facility_id, court_id, date, start_time, end_time,
			amount, status, payment_status
		)
		VALUES ($1, $2, $3, $4::date, $5::time, $6::time, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(
		ctx, query,
		b.UserID, b.FacilityID, b.CourtID, b.Date, b.StartTime, b.EndTime,
		b.Amount, b.Status, b.PaymentStatus,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		// Two requests for the identical window can both pass the overlap
		// check; the partial unique index on (court, date, start, end) for
		// non-Cancelled rows rejects the loser, which must surface as the
		// same conflict error the check produces.
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrTimeConflict
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

const bookingColumns = `
	b.id, b.user_id, b.facility_id, b.court_id,
	b.date::text, to_char(b.start_time, 'HH24:MI'), to_char(b.end_time, 'HH24:MI'),
	b.amount, b.status, b.payment_status, b.created_at, b.updated_at,
	u.full_name, u.email, c.name, c.sport, f.name, f.location
`

func (r *pgxRepository) GetByIDForUser(ctx context.Context, id, userID string) (*Booking, error) {
	// Scoping the lookup to the owning user makes "someone else's booking"
	// indistinguishable from a missing one.
	query := `
		SELECT ` + bookingColumns + `
		FROM public.bookings b
		JOIN public.users u ON b.user_id = u.id
		JOIN public.courts c ON b.court_id = c.id
		JOIN public.facilities f ON b.facility_id = f.id
		WHERE b.id = $1 AND b.user_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, userID)

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]*Booking, int, error) {
	return r.list(ctx, squirrel.Eq{"b.user_id": userID}, page, pageSize)
}

func (r *pgxRepository) ListByFacilityOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Booking, int, error) {
	return r.list(ctx, squirrel.Eq{"f.owner_id": ownerID}, page, pageSize)
}

func (r *pgxRepository) list(ctx context.Context, where squirrel.Sqlizer, page, pageSize int) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "b.facility_id", "b.court_id",
		"b.date::text", "to_char(b.start_time, 'HH24:MI')", "to_char(b.end_time, 'HH24:MI')",
		"b.amount", "b.status", "b.payment_status", "b.created_at", "b.updated_at",
		"u.full_name", "u.email", "c.name", "c.sport", "f.name", "f.location",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.courts c ON b.court_id = c.id").
		Join("public.facilities f ON b.facility_id = f.id").
		Where(where).
		OrderBy("b.created_at DESC")

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	query = query.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize))

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
			&b.ID, &b.UserID, &b.FacilityID, &b.CourtID,
			&b.Date, &b.StartTime, &b.EndTime,
			&b.Amount, &b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
			&b.UserName, &b.UserEmail, &b.CourtName, &b.CourtSport,
			&b.FacilityName, &b.FacilityLocation,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id, status, paymentStatus string) error {
	const query = `
		UPDATE public.bookings
		SET status = $1, payment_status = $2, updated_at = now()
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, status, paymentStatus, id)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT count(*) FROM public.bookings`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count bookings failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
	// Half-open interval overlap: existing.start < new.end AND
	// new.start < existing.end. A booking ending at another's start shares
	// only the boundary instant and is not a conflict.
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM public.bookings
			WHERE court_id = $1
				AND date = $2::date
				AND status <> $3
				AND start_time < $5::time
				AND end_time > $4::time
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, courtID, date, StatusCancelled, startTime, endTime).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.FacilityID, &b.CourtID,
		&b.Date, &b.StartTime, &b.EndTime,
		&b.Amount, &b.Status, &b.PaymentStatus, &b.CreatedAt, &b.UpdatedAt,
		&b.UserName, &b.UserEmail, &b.CourtName, &b.CourtSport,
		&b.FacilityName, &b.FacilityLocation,
	); err != nil {
		return nil, err
	}
	return &b, nil
}
