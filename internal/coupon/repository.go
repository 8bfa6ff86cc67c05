package coupon

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository failure sentinels.
var (
	ErrNotFound = errors.New("coupon not found")
	ErrExists   = errors.New("coupon code exists")
)

const uniqueViolationCode = "23505"

// Repository persists coupons.
type Repository interface {
	Create(ctx context.Context, cp Coupon) error
	FindByCode(ctx context.Context, code string) (Coupon, error)
	List(ctx context.Context) ([]Coupon, error)
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}

// PostgresRepository stores coupons in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed coupon repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a coupon, surfacing ErrExists on a duplicate code.
func (r *PostgresRepository) Create(ctx context.Context, cp Coupon) error {
	cpID, err := uuid.Parse(cp.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO coupons (id, code, discount_percent, description, available, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		cpID, cp.Code, cp.DiscountPercent, cp.Description, cp.Available, cp.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrExists
	}
	return err
}

// FindByCode fetches a coupon by its code.
func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (Coupon, error) {
	row := r.db.QueryRow(ctx, `SELECT id, code, discount_percent, description, available, created_at
        FROM coupons WHERE code = $1`, code)
	return scanCoupon(row)
}

// List returns every coupon.
func (r *PostgresRepository) List(ctx context.Context) ([]Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, discount_percent, description, available, created_at
        FROM coupons ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := []Coupon{}
	for rows.Next() {
		cp, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, cp)
	}
	return coupons, rows.Err()
}

// SetAvailability toggles whether the coupon can be applied.
func (r *PostgresRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	cpID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE coupons SET available = $1 WHERE id = $2`, available, cpID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a coupon.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	cpID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, cpID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (Coupon, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		cp        Coupon
	)
	if err := row.Scan(&id, &cp.Code, &cp.DiscountPercent, &cp.Description, &cp.Available, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Coupon{}, ErrNotFound
		}
		return Coupon{}, err
	}
	cp.ID = id.String()
	cp.CreatedAt = createdAt.UTC()
	return cp, nil
}
