package payment

import "time"

// Payment is a recorded rent payment. AmountPaid is the rent after any
// coupon discount applied at record time.
type Payment struct {
	ID          string    `json:"_id"`
	UserEmail   string    `json:"userEmail"`
	ApartmentNo string    `json:"apartmentNo"`
	Month       string    `json:"month"`
	Rent        int64     `json:"rent"`
	CouponCode  string    `json:"couponCode,omitempty"`
	AmountPaid  int64     `json:"amountPaid"`
	PaidAt      time.Time `json:"paidAt"`
}
