package agreement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyApplied reports a second application for an email that already
// holds an agreement.
var ErrAlreadyApplied = errors.New("agreement already exists for user")

// ErrInvalidStatus reports a status outside the review vocabulary.
var ErrInvalidStatus = errors.New("invalid agreement status")

// Service manages rental applications.
type Service struct {
	repo Repository
}

// NewService creates an agreement service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ApplyInput captures a rental application.
type ApplyInput struct {
	UserName    string
	UserEmail   string
	ApartmentNo string
	BlockName   string
	FloorNo     int
	Rent        int64
}

// Apply records a pending agreement. Uniqueness is delegated to the store:
// there is no check-then-act window, the losing concurrent insert simply
// comes back as ErrAlreadyApplied.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (Agreement, error) {
	agr := Agreement{
		ID:          uuid.New().String(),
		UserName:    input.UserName,
		UserEmail:   input.UserEmail,
		ApartmentNo: input.ApartmentNo,
		BlockName:   input.BlockName,
		FloorNo:     input.FloorNo,
		Rent:        input.Rent,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, agr); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return Agreement{}, ErrAlreadyApplied
		}
		return Agreement{}, err
	}
	return agr, nil
}

// ByEmail returns the applicant's agreement.
func (s *Service) ByEmail(ctx context.Context, email string) (Agreement, error) {
	return s.repo.FindByEmail(ctx, email)
}

// All returns every agreement for admin review.
func (s *Service) All(ctx context.Context) ([]Agreement, error) {
	return s.repo.List(ctx)
}

// SetStatus records the admin's review decision.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	switch status {
	case StatusAccepted, StatusRejected, StatusPending:
	default:
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
