package announcement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists announcements.
type Repository interface {
	Create(ctx context.Context, ann Announcement) error
	List(ctx context.Context) ([]Announcement, error)
}

// PostgresRepository stores announcements in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed announcement repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an announcement.
func (r *PostgresRepository) Create(ctx context.Context, ann Announcement) error {
	annID, err := uuid.Parse(ann.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO announcements (id, title, description, created_at)
        VALUES ($1, $2, $3, $4)`, annID, ann.Title, ann.Description, ann.CreatedAt.UTC())
	return err
}

// List returns announcements, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]Announcement, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, description, created_at
        FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []Announcement{}
	for rows.Next() {
		var (
			id        uuid.UUID
			createdAt time.Time
			ann       Announcement
		)
		if err := rows.Scan(&id, &ann.Title, &ann.Description, &createdAt); err != nil {
			return nil, err
		}
		ann.ID = id.String()
		ann.CreatedAt = createdAt.UTC()
		announcements = append(announcements, ann)
	}
	return announcements, rows.Err()
}
