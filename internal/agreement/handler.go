package agreement

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes agreement HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an agreement HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type applyRequest struct {
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	ApartmentNo string `json:"apartmentNo"`
	BlockName   string `json:"blockName"`
	FloorNo     int    `json:"floorNo"`
	Rent        int64  `json:"rent"`
}

// Apply records a rental application. Duplicate applications answer 400 with
// the duplicate message and perform no insert.
func (h *Handler) Apply(c *fiber.Ctx) error {
	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.UserEmail == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "User email is required"})
	}

	agr, err := h.svc.Apply(c.UserContext(), ApplyInput{
		UserName:    req.UserName,
		UserEmail:   req.UserEmail,
		ApartmentNo: req.ApartmentNo,
		BlockName:   req.BlockName,
		FloorNo:     req.FloorNo,
		Rent:        req.Rent,
	})
	if errors.Is(err, ErrAlreadyApplied) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "You have already applied for an apartment"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"insertedId": agr.ID})
}

// ByEmail returns the caller's agreement. Self-scoped: the path email must
// match the authenticated identity.
func (h *Handler) ByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	requester, _ := c.Locals("user_email").(string)
	if email != requester {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "Forbidden access"})
	}

	agr, err := h.svc.ByEmail(c.UserContext(), email)
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "No agreement found for this user"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(agr)
}

// List returns every agreement for the admin review queue.
func (h *Handler) List(c *fiber.Ctx) error {
	agreements, err := h.svc.All(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(agreements)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus records the review decision for an agreement.
func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.svc.SetStatus(c.UserContext(), c.Params("id"), req.Status)
	if errors.Is(err, ErrInvalidStatus) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Status must be pending, accepted or rejected"})
	}
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Agreement not found"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Agreement status updated successfully"})
}
