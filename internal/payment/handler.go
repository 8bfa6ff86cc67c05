package payment

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/coupon"
)

// Handler exposes payment HTTP endpoints. Both routes are self-scoped: the
// email in the body or path must match the authenticated identity.
type Handler struct {
	svc *Service
}

// NewHandler builds a payment HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type recordRequest struct {
	UserEmail   string `json:"userEmail"`
	ApartmentNo string `json:"apartmentNo"`
	Month       string `json:"month"`
	Rent        int64  `json:"rent"`
	CouponCode  string `json:"couponCode"`
}

// Record stores a rent payment for the authenticated resident.
func (h *Handler) Record(c *fiber.Ctx) error {
	var req recordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	requester, _ := c.Locals("user_email").(string)
	if req.UserEmail == "" || req.UserEmail != requester {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "Forbidden access"})
	}

	p, err := h.svc.Record(c.UserContext(), RecordInput{
		UserEmail:   req.UserEmail,
		ApartmentNo: req.ApartmentNo,
		Month:       req.Month,
		Rent:        req.Rent,
		CouponCode:  req.CouponCode,
	})
	if errors.Is(err, coupon.ErrNotFound) || errors.Is(err, ErrCouponUnavailable) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Coupon is not valid"})
	}
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(p)
}

// History returns the authenticated resident's payment records.
func (h *Handler) History(c *fiber.Ctx) error {
	email := c.Params("email")
	requester, _ := c.Locals("user_email").(string)
	if email != requester {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": "Forbidden access"})
	}

	payments, err := h.svc.History(c.UserContext(), email)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(payments)
}
