package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edifica/edifica/internal/coupon"
)

// ErrCouponUnavailable reports a coupon code that exists but is switched off.
var ErrCouponUnavailable = errors.New("coupon not available")

// Service records rent payments, applying coupon discounts server-side so
// residents never need access to the coupon collection.
type Service struct {
	repo    Repository
	coupons coupon.Repository
}

// NewService builds a payment service. The coupon repository may be nil when
// the deployment has no coupon feature enabled.
func NewService(repo Repository, coupons coupon.Repository) *Service {
	return &Service{repo: repo, coupons: coupons}
}

// RecordInput captures a rent payment submission.
type RecordInput struct {
	UserEmail   string
	ApartmentNo string
	Month       string
	Rent        int64
	CouponCode  string
}

// Record stores the payment. An available coupon reduces the amount paid by
// its percentage; an unknown or disabled code rejects the payment rather
// than silently charging full rent.
func (s *Service) Record(ctx context.Context, input RecordInput) (Payment, error) {
	if input.Rent <= 0 {
		return Payment{}, fmt.Errorf("rent must be positive")
	}

	amount := input.Rent
	if input.CouponCode != "" {
		if s.coupons == nil {
			return Payment{}, coupon.ErrNotFound
		}
		cp, err := s.coupons.FindByCode(ctx, input.CouponCode)
		if err != nil {
			return Payment{}, err
		}
		if !cp.Available {
			return Payment{}, ErrCouponUnavailable
		}
		amount -= amount * int64(cp.DiscountPercent) / 100
	}

	p := Payment{
		ID:          uuid.New().String(),
		UserEmail:   input.UserEmail,
		ApartmentNo: input.ApartmentNo,
		Month:       input.Month,
		Rent:        input.Rent,
		CouponCode:  input.CouponCode,
		AmountPaid:  amount,
		PaidAt:      time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Payment{}, err
	}
	return p, nil
}

// History returns the resident's payments, newest first.
func (s *Service) History(ctx context.Context, email string) ([]Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}
