package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/agreement"
)

// RegisterAgreementRoutes wires application endpoints. Applying and reading
// one's own agreement require authentication; the review queue is admin-only.
func RegisterAgreementRoutes(authed, admin fiber.Router, h *agreement.Handler) {
	authed.Post("/agreement", h.Apply)
	authed.Get("/agreement/:email", h.ByEmail)

	admin.Get("/agreements", h.List)
	admin.Patch("/agreements/:id", h.UpdateStatus)
}
