package agreement

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
	ErrNotFound  = errors.New("agreement not found")
	ErrDuplicate = errors.New("agreement exists for email")
)

const uniqueViolationCode = "23505"

// Repository persists rental agreements. Implementations must reject a
// second agreement for the same email at the store, not via a pre-check.
type Repository interface {
	Create(ctx context.Context, agr Agreement) error
	FindByEmail(ctx context.Context, email string) (Agreement, error)
	List(ctx context.Context) ([]Agreement, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// PostgresRepository stores agreements in PostgreSQL. The unique index on
// user_email carries the one-agreement-per-user invariant: of two concurrent
// inserts for one email, exactly one commits.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed agreement repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an agreement, surfacing ErrDuplicate on a unique violation.
func (r *PostgresRepository) Create(ctx context.Context, agr Agreement) error {
	agrID, err := uuid.Parse(agr.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO agreements (id, user_name, user_email, apartment_no, block_name, floor_no, rent, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		agrID, agr.UserName, agr.UserEmail, agr.ApartmentNo, agr.BlockName, agr.FloorNo, agr.Rent, agr.Status, agr.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}

// FindByEmail fetches the agreement for an applicant email.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (Agreement, error) {
	row := r.db.QueryRow(ctx, `SELECT id, user_name, user_email, apartment_no, block_name, floor_no, rent, status, created_at
        FROM agreements WHERE user_email = $1`, email)
	return scanAgreement(row)
}

// List returns every agreement, oldest application first.
func (r *PostgresRepository) List(ctx context.Context) ([]Agreement, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_name, user_email, apartment_no, block_name, floor_no, rent, status, created_at
        FROM agreements ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agreements := []Agreement{}
	for rows.Next() {
		agr, err := scanAgreement(rows)
		if err != nil {
			return nil, err
		}
		agreements = append(agreements, agr)
	}
	return agreements, rows.Err()
}

// UpdateStatus sets the review status for an agreement.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	agrID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	cmd, err := r.db.Exec(ctx, `UPDATE agreements SET status = $1 WHERE id = $2`, status, agrID)
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

func scanAgreement(row rowScanner) (Agreement, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		agr       Agreement
	)
	if err := row.Scan(&id, &agr.UserName, &agr.UserEmail, &agr.ApartmentNo, &agr.BlockName, &agr.FloorNo, &agr.Rent, &agr.Status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Agreement{}, ErrNotFound
		}
		return Agreement{}, err
	}
	agr.ID = id.String()
	agr.CreatedAt = createdAt.UTC()
	return agr, nil
}
