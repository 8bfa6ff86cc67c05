package coupon

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes coupon HTTP endpoints.
type Handler struct {
	repo Repository
}

// NewHandler builds a coupon HTTP handler.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type createRequest struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	Description     string `json:"description"`
}

// Create adds a discount code.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Code == "" || req.DiscountPercent <= 0 || req.DiscountPercent > 100 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Code and a discount percent between 1 and 100 are required"})
	}

	cp := Coupon{
		ID:              uuid.New().String(),
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		Description:     req.Description,
		Available:       true,
		CreatedAt:       time.Now().UTC(),
	}
	err := h.repo.Create(c.UserContext(), cp)
	if errors.Is(err, ErrExists) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Coupon code already exists"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"insertedId": cp.ID})
}

// List returns every coupon.
func (h *Handler) List(c *fiber.Ctx) error {
	coupons, err := h.repo.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(coupons)
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability toggles a coupon on or off.
func (h *Handler) SetAvailability(c *fiber.Ctx) error {
	var req availabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.repo.SetAvailability(c.UserContext(), c.Params("id"), req.Available)
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Coupon not found"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Coupon updated successfully"})
}

// Delete removes a coupon.
func (h *Handler) Delete(c *fiber.Ctx) error {
	err := h.repo.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Coupon not found"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"deletedCount": 1})
}
