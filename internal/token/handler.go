package token

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the credential issuance endpoint.
type Handler struct {
	svc *Service
}

// NewHandler builds a token HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Issue signs the request body as an identity claim and returns the credential.
func (h *Handler) Issue(c *fiber.Ctx) error {
	claim := map[string]any{}
	if err := c.BodyParser(&claim); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	signed, err := h.svc.Issue(claim)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"token": signed})
}
