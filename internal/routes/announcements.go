package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/announcement"
)

// RegisterAnnouncementRoutes wires the notice board: residents read, admins post.
func RegisterAnnouncementRoutes(authed, admin fiber.Router, h *announcement.Handler) {
	authed.Get("/announcements", h.List)

	admin.Post("/announcements", h.Create)
}
