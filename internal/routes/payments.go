package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/payment"
)

// RegisterPaymentRoutes wires rent payment endpoints. Both are authenticated
// and self-scoped inside the handler.
func RegisterPaymentRoutes(authed fiber.Router, h *payment.Handler) {
	authed.Post("/payments", h.Record)
	authed.Get("/payments/:email", h.History)
}
