package apartment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists apartment listings.
type Repository interface {
	Create(ctx context.Context, apt Apartment) error
	All(ctx context.Context) ([]Apartment, error)
	Search(ctx context.Context, filter Filter) ([]Apartment, int64, error)
}

// PostgresRepository stores apartments in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a listing.
func (r *PostgresRepository) Create(ctx context.Context, apt Apartment) error {
	aptID, err := uuid.Parse(apt.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO apartments (id, apartment_no, block_name, floor_no, rent, image, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		aptID, apt.ApartmentNo, apt.BlockName, apt.FloorNo, apt.Rent, apt.Image, apt.CreatedAt.UTC())
	return err
}

// All returns every listing.
func (r *PostgresRepository) All(ctx context.Context) ([]Apartment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, apartment_no, block_name, floor_no, rent, image, created_at
        FROM apartments ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

// Search applies the rent-range filter and page window, and counts all matches.
func (r *PostgresRepository) Search(ctx context.Context, filter Filter) ([]Apartment, int64, error) {
	offset := (filter.Page - 1) * filter.Limit

	rows, err := r.db.Query(ctx, `SELECT id, apartment_no, block_name, floor_no, rent, image, created_at
        FROM apartments WHERE rent BETWEEN $1 AND $2
        ORDER BY created_at LIMIT $3 OFFSET $4`,
		filter.MinRent, filter.MaxRent, filter.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	apartments, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM apartments WHERE rent BETWEEN $1 AND $2`,
		filter.MinRent, filter.MaxRent).Scan(&total); err != nil {
		return nil, 0, err
	}

	return apartments, total, nil
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collect(rows pgRows) ([]Apartment, error) {
	apartments := []Apartment{}
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			apt       Apartment
		)
		if err := rows.Scan(&id, &apt.ApartmentNo, &apt.BlockName, &apt.FloorNo, &apt.Rent, &apt.Image, &createdAt); err != nil {
			return nil, err
		}
		apt.ID = id.String()
		apt.CreatedAt = createdAt.UTC()
		apartments = append(apartments, apt)
	}
	return apartments, rows.Err()
}
