package court

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Court) error
	GetByID(ctx context.Context, id string) (*Court, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*Court, error)
	Update(ctx context.Context, c *Court) error
	CountActive(ctx context.Context) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Court) error {
	schedule, err := json.Marshal(c.Schedule)
	if err != nil {
		return fmt.Errorf("encode court schedule failed: %w", err)
	}

	const query = `
		INSERT INTO public.courts (
			facility_id, name, sport, price_per_hour, description,
			opening_hours_start, opening_hours_end, schedule, is_active, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(
		ctx, query,
		c.FacilityID, c.Name, c.Sport, c.PricePerHour, c.Description,
		c.OpeningHoursStart, c.OpeningHoursEnd, schedule, c.IsActive, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("create court failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	const query = `
		SELECT
			c.id, c.facility_id, c.name, c.sport, c.price_per_hour, c.description,
			c.opening_hours_start, c.opening_hours_end, c.schedule,
			c.is_active, c.status, c.created_at, c.updated_at,
			f.name, f.owner_id
		FROM public.courts c
		JOIN public.facilities f ON c.facility_id = f.id
		WHERE c.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	c, err := scanCourt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get court failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) ListByFacility(ctx context.Context, facilityID string) ([]*Court, error) {
	const query = `
		SELECT
			c.id, c.facility_id, c.name, c.sport, c.price_per_hour, c.description,
			c.opening_hours_start, c.opening_hours_end, c.schedule,
			c.is_active, c.status, c.created_at, c.updated_at,
			f.name, f.owner_id
		FROM public.courts c
		JOIN public.facilities f ON c.facility_id = f.id
		WHERE c.facility_id = $1
		ORDER BY c.created_at
	`
	rows, err := r.pool.Query(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list courts failed: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan court failed: %w", err)
		}
		courts = append(courts, c)
	}

	return courts, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Court) error {
	schedule, err := json.Marshal(c.Schedule)
	if err != nil {
		return fmt.Errorf("encode court schedule failed: %w", err)
	}

	const query = `
		UPDATE public.courts
		SET name = $1, sport = $2, price_per_hour = $3, description = $4,
			opening_hours_start = $5, opening_hours_end = $6, schedule = $7,
			is_active = $8, status = $9, updated_at = now()
		WHERE id = $10
	`
	ct, err := r.pool.Exec(
		ctx, query,
		c.Name, c.Sport, c.PricePerHour, c.Description,
		c.OpeningHoursStart, c.OpeningHoursEnd, schedule,
		c.IsActive, c.Status, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update court failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CountActive(ctx context.Context) (int, error) {
	const query = `
		SELECT count(*)
		FROM public.courts
		WHERE is_active = true AND status = $1
	`
	var count int
	if err := r.pool.QueryRow(ctx, query, StatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active courts failed: %w", err)
	}
	return count, nil
}

// scanCourt scans a court row including the joined facility columns and
// decodes the jsonb weekly schedule.
func scanCourt(row pgx.Row) (*Court, error) {
	var c Court
	var scheduleJSON []byte

	if err := row.Scan(
		&c.ID, &c.FacilityID, &c.Name, &c.Sport, &c.PricePerHour, &c.Description,
		&c.OpeningHoursStart, &c.OpeningHoursEnd, &scheduleJSON,
		&c.IsActive, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&c.FacilityName, &c.FacilityOwnerID,
	); err != nil {
		return nil, err
	}

	if len(scheduleJSON) > 0 {
		if err := json.Unmarshal(scheduleJSON, &c.Schedule); err != nil {
			return nil, fmt.Errorf("decode court schedule failed: %w", err)
		}
	}
	return &c, nil
}
