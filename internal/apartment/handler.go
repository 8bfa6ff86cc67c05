package apartment

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes apartment HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler builds an apartment HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// All returns every listing.
func (h *Handler) All(c *fiber.Ctx) error {
	apartments, err := h.svc.All(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(apartments)
}

// Search returns a rent-filtered page of listings with the total match count.
func (h *Handler) Search(c *fiber.Ctx) error {
	filter := Filter{
		MinRent: queryInt64(c, "minRent", 0),
		MaxRent: queryInt64(c, "maxRent", 0),
		Page:    c.QueryInt("page", 1),
		Limit:   c.QueryInt("limit", 8),
	}

	apartments, total, err := h.svc.Search(c.UserContext(), filter)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"apartments": apartments, "total": total})
}

type createRequest struct {
	ApartmentNo string `json:"apartmentNo"`
	BlockName   string `json:"blockName"`
	FloorNo     int    `json:"floorNo"`
	Rent        int64  `json:"rent"`
	Image       string `json:"image"`
}

// Create adds a listing.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.ApartmentNo == "" || req.Rent <= 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Apartment number and positive rent are required"})
	}

	apt, err := h.svc.Create(c.UserContext(), CreateInput{
		ApartmentNo: req.ApartmentNo,
		BlockName:   req.BlockName,
		FloorNo:     req.FloorNo,
		Rent:        req.Rent,
		Image:       req.Image,
	})
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"insertedId": apt.ID})
}

func queryInt64(c *fiber.Ctx, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
