package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, f *Facility) error
	UpdateStatus(ctx context.Context, id, status string, rejectionReason *string) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	const query = `
		INSERT INTO public.facilities (
			owner_id, name, location, description, sports, amenities,
			photo_file_ids, opening_hours_start, opening_hours_end, status, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(
		ctx, query,
		f.OwnerID, f.Name, f.Location, f.Description, f.Sports, f.Amenities,
		f.PhotoFileIDs, f.OpeningHoursStart, f.OpeningHoursEnd, f.Status, f.IsActive,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create facility failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Facility, error) {
	const query = `
		SELECT
			f.id, f.owner_id, f.name, f.location, f.description,
			f.sports, f.amenities, f.photo_file_ids,
			f.opening_hours_start, f.opening_hours_end,
			f.status, f.rejection_reason, f.rating, f.review_count, f.is_active,
			f.created_at, f.updated_at,
			u.full_name, u.email
		FROM public.facilities f
		JOIN public.users u ON f.owner_id = u.id
		WHERE f.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var f Facility
	if err := row.Scan(
		&f.ID, &f.OwnerID, &f.Name, &f.Location, &f.Description,
		&f.Sports, &f.Amenities, &f.PhotoFileIDs,
		&f.OpeningHoursStart, &f.OpeningHoursEnd,
		&f.Status, &f.RejectionReason, &f.Rating, &f.ReviewCount, &f.IsActive,
		&f.CreatedAt, &f.UpdatedAt,
		&f.OwnerName, &f.OwnerEmail,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"f.id", "f.owner_id", "f.name", "f.location", "f.description",
		"f.sports", "f.amenities", "f.photo_file_ids",
		"f.opening_hours_start", "f.opening_hours_end",
		"f.status", "f.rejection_reason", "f.rating", "f.review_count", "f.is_active",
		"f.created_at", "f.updated_at",
		"u.full_name", "u.email",
		"count(*) OVER() as total_count",
	).
		From("public.facilities f").
		Join("public.users u ON f.owner_id = u.id")

	if filter.OwnerID != "" {
		query = query.Where(squirrel.Eq{"f.owner_id": filter.OwnerID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"f.status": filter.Status})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"f.is_active": *filter.IsActive})
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"f.name": like},
			squirrel.ILike{"f.location": like},
		})
	}

	query = query.OrderBy("f.created_at DESC")

	// Pagination
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
		return nil, 0, fmt.Errorf("build list facilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var facilities []*Facility
	var total int

	for rows.Next() {
		var f Facility
		if err := rows.Scan(
			&f.ID, &f.OwnerID, &f.Name, &f.Location, &f.Description,
			&f.Sports, &f.Amenities, &f.PhotoFileIDs,
			&f.OpeningHoursStart, &f.OpeningHoursEnd,
			&f.Status, &f.RejectionReason, &f.Rating, &f.ReviewCount, &f.IsActive,
			&f.CreatedAt, &f.UpdatedAt,
			&f.OwnerName, &f.OwnerEmail,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan facility failed: %w", err)
		}
		facilities = append(facilities, &f)
	}

	return facilities, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	const query = `
		UPDATE public.facilities
		SET name = $1, location = $2, description = $3, sports = $4,
			amenities = $5, photo_file_ids = $6,
			opening_hours_start = $7, opening_hours_end = $8,
			is_active = $9, updated_at = now()
		WHERE id = $10
	`
	ct, err := r.pool.Exec(
		ctx, query,
		f.Name, f.Location, f.Description, f.Sports,
		f.Amenities, f.PhotoFileIDs,
		f.OpeningHoursStart, f.OpeningHoursEnd,
		f.IsActive, f.ID,
	)
	if err != nil {
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id, status string, rejectionReason *string) error {
	const query = `
		UPDATE public.facilities
		SET status = $1, rejection_reason = $2, updated_at = now()
		WHERE id = $3
	`
	ct, err := r.pool.Exec(ctx, query, status, rejectionReason, id)
	if err != nil {
		return fmt.Errorf("update facility status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	const query = `SELECT count(*) FROM public.facilities WHERE status = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("count facilities by status failed: %w", err)
	}
	return count, nil
}
