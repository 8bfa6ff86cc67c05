package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/token"
)

// RegisterTokenRoutes wires credential issuance. Issuance is public and
// unconditional: the issuer trusts the claim it is handed.
func RegisterTokenRoutes(public fiber.Router, h *token.Handler) {
	public.Post("/jwt", h.Issue)
}
