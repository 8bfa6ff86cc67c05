package user

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes user directory HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds a user HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register stores a user on first sign-in. Existing emails are reported, not
// rejected, so clients can call this on every login.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}

	u, err := h.svc.Register(c.UserContext(), req.Name, req.Email)
	if errors.Is(err, ErrAlreadyRegistered) {
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": "User already exists", "insertedId": nil})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"insertedId": u.ID})
}

// List returns every directory record.
func (h *Handler) List(c *fiber.Ctx) error {
	users, err := h.svc.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(users)
}

// AdminCheck reports whether the caller is an admin. The route is
// self-scoped: the path email must match the authenticated identity.
func (h *Handler) AdminCheck(c *fiber.Ctx) error {
	email := c.Params("email")
	requester, _ := c.Locals("user_email").(string)
	if email != requester {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "Forbidden access"})
	}

	admin, err := h.svc.IsAdmin(c.UserContext(), email)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"admin": admin})
}

type roleRequest struct {
	Role string `json:"role"`
}

// ChangeRole updates a user's role.
func (h *Handler) ChangeRole(c *fiber.Ctx) error {
	var req roleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Role == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Role is required"})
	}

	err := h.svc.ChangeRole(c.UserContext(), c.Params("id"), req.Role)
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "User not found or no changes made"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update user role"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "User role updated successfully"})
}

// Delete removes a user record.
func (h *Handler) Delete(c *fiber.Ctx) error {
	err := h.svc.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"deletedCount": 1})
}
