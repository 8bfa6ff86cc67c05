package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/user"
)

// RegisterUserRoutes wires directory endpoints across all three guard tiers.
func RegisterUserRoutes(public, authed, admin fiber.Router, h *user.Handler) {
	// Registration is public so first sign-in can create the record.
	public.Post("/users", h.Register)

	// Self-scoped admin flag check needs only authentication.
	authed.Get("/users/admin/:email", h.AdminCheck)

	admin.Get("/users", h.List)
	admin.Patch("/users/role/:id", h.ChangeRole)
	admin.Delete("/users/:id", h.Delete)
}
