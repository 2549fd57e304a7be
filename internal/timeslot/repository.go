package timeslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Upsert inserts or updates the override keyed by the unique
	// (court, date, start, end) tuple. Calling it twice with the same key
	// leaves exactly one record.
	Upsert(ctx context.Context, slot *TimeSlot) error
	List(ctx context.Context, filter Filter) ([]*TimeSlot, error)
	GetExact(ctx context.Context, courtID, date, startTime, endTime string) (*TimeSlot, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Upsert(ctx context.Context, slot *TimeSlot) error {
	const query = `
		INSERT INTO public.time_slots (court_id, date, start_time, end_time, is_blocked, is_available)
		VALUES ($1, $2::date, $3::time, $4::time, $5, $6)
		ON CONFLICT (court_id, date, start_time, end_time)
		DO UPDATE SET is_blocked = EXCLUDED.is_blocked,
			is_available = EXCLUDED.is_available,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(
		ctx, query,
		slot.CourtID, slot.Date, slot.StartTime, slot.EndTime,
		slot.IsBlocked, slot.IsAvailable,
	).Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt); err != nil {
		return fmt.Errorf("upsert time slot failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*TimeSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "court_id", "date::text", "to_char(start_time, 'HH24:MI')",
		"to_char(end_time, 'HH24:MI')", "is_blocked", "is_available",
		"created_at", "updated_at",
	).From("public.time_slots")

	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"court_id": filter.CourtID})
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Expr("date = ?::date", filter.Date))
	}

	query = query.OrderBy("date", "start_time")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list time slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list time slots failed: %w", err)
	}
	defer rows.Close()

	var slots []*TimeSlot
	for rows.Next() {
		var s TimeSlot
		if err := rows.Scan(
			&s.ID, &s.CourtID, &s.Date, &s.StartTime, &s.EndTime,
			&s.IsBlocked, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan time slot failed: %w", err)
		}
		slots = append(slots, &s)
	}

	return slots, nil
}

func (r *pgxRepository) GetExact(ctx context.Context, courtID, date, startTime, endTime string) (*TimeSlot, error) {
	const query = `
		SELECT id, court_id, date::text, to_char(start_time, 'HH24:MI'),
			to_char(end_time, 'HH24:MI'), is_blocked, is_available,
			created_at, updated_at
		FROM public.time_slots
		WHERE court_id = $1 AND date = $2::date
			AND start_time = $3::time AND end_time = $4::time
	`
	row := r.pool.QueryRow(ctx, query, courtID, date, startTime, endTime)

	var s TimeSlot
	if err := row.Scan(
		&s.ID, &s.CourtID, &s.Date, &s.StartTime, &s.EndTime,
		&s.IsBlocked, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get time slot failed: %w", err)
	}
	return &s, nil
}
