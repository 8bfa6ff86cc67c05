package coupon

import "time"

// Coupon is an admin-managed rent discount code. The payment service looks
// codes up server-side when a resident pays.
type Coupon struct {
	ID              string    `json:"_id"`
	Code            string    `json:"code"`
	DiscountPercent int       `json:"discountPercent"`
	Description     string    `json:"description"`
	Available       bool      `json:"available"`
	CreatedAt       time.Time `json:"createdAt"`
}
