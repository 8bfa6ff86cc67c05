package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists payment records.
type Repository interface {
	Create(ctx context.Context, p Payment) error
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
}

// PostgresRepository stores payments in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed payment repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a payment record.
func (r *PostgresRepository) Create(ctx context.Context, p Payment) error {
	payID, err := uuid.Parse(p.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO payments (id, user_email, apartment_no, month, rent, coupon_code, amount_paid, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		payID, p.UserEmail, p.ApartmentNo, p.Month, p.Rent, p.CouponCode, p.AmountPaid, p.PaidAt.UTC())
	return err
}

// ListByEmail returns the payment history for one resident, newest first.
func (r *PostgresRepository) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_email, apartment_no, month, rent, coupon_code, amount_paid, paid_at
        FROM payments WHERE user_email = $1 ORDER BY paid_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []Payment{}
	for rows.Next() {
		var (
			id     uuid.UUID
			paidAt time.Time
			p      Payment
		)
		if err := rows.Scan(&id, &p.UserEmail, &p.ApartmentNo, &p.Month, &p.Rent, &p.CouponCode, &p.AmountPaid, &paidAt); err != nil {
			return nil, err
		}
		p.ID = id.String()
		p.PaidAt = paidAt.UTC()
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
