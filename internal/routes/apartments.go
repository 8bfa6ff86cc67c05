package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/apartment"
)

// RegisterApartmentRoutes wires listing endpoints. Browsing stays public in
// every revision; only adding listings is admin work.
func RegisterApartmentRoutes(public, admin fiber.Router, h *apartment.Handler) {
	public.Get("/all-apartments", h.All)
	public.Get("/apartments", h.Search)

	admin.Post("/apartments", h.Create)
}
