package announcement

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes announcement HTTP endpoints.
type Handler struct {
	repo Repository
}

// NewHandler builds an announcement HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create posts a notice.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Title == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Title is required"})
	}

	ann := Announcement{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.repo.Create(c.UserContext(), ann); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"insertedId": ann.ID})
}

// List returns notices, newest first.
func (h *Handler) List(c *fiber.Ctx) error {
	announcements, err := h.repo.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(announcements)
}
