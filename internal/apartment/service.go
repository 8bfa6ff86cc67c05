package apartment

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	defaultPage  = 1
	defaultLimit = 8
)

// Service exposes apartment listing operations.
type Service struct {
	repo Repository
}

// NewService builds an apartment service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures data required to add a listing.
type CreateInput struct {
	ApartmentNo string
	BlockName   string
	FloorNo     int
	Rent        int64
	Image       string
}

// Create adds a listing.
func (s *Service) Create(ctx context.Context, input CreateInput) (Apartment, error) {
	apt := Apartment{
		ID:          uuid.New().String(),
		ApartmentNo: input.ApartmentNo,
		BlockName:   input.BlockName,
		FloorNo:     input.FloorNo,
		Rent:        input.Rent,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return Apartment{}, err
	}
	return apt, nil
}

// All returns every listing.
func (s *Service) All(ctx context.Context) ([]Apartment, error) {
	return s.repo.All(ctx)
}

// Search normalizes the filter (absent bounds are unbounded, page defaults
// to 1, limit to 8) and returns the page plus the total match count.
func (s *Service) Search(ctx context.Context, filter Filter) ([]Apartment, int64, error) {
	if filter.MaxRent <= 0 {
		filter.MaxRent = math.MaxInt64
	}
	if filter.MinRent < 0 {
		filter.MinRent = 0
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	return s.repo.Search(ctx, filter)
}
