package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/coupon"
)

// RegisterCouponRoutes wires coupon management. Every coupon route is
// admin-gated (the most protective of the observed variants); residents use
// coupons only indirectly through the payment service.
func RegisterCouponRoutes(admin fiber.Router, h *coupon.Handler) {
	admin.Get("/coupons", h.List)
	admin.Post("/coupons", h.Create)
	admin.Patch("/coupons/:id", h.SetAvailability)
	admin.Delete("/coupons/:id", h.Delete)
}
