// Package routes wires every endpoint to its handler and its guard.
//
// The route-to-guard mapping is deliberate and reviewed, not inferred per
// handler. Three tiers exist:
//
//	public — no guard: credential issuance, registration, apartment browsing,
//	         health.
//	authed — authentication stage only: self-scoped checks, agreements,
//	         announcements feed, payments.
//	admin  — authentication then authorization: directory management,
//	         agreement review, listing management, announcements posting,
//	         coupon management.
//
// Each Register* function below places its routes on the tier group it is
// handed, so the full table is readable in this package alone.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/edifica/edifica/internal/agreement"
	"github.com/edifica/edifica/internal/announcement"
	"github.com/edifica/edifica/internal/apartment"
	"github.com/edifica/edifica/internal/config"
	"github.com/edifica/edifica/internal/coupon"
	"github.com/edifica/edifica/internal/middleware"
	"github.com/edifica/edifica/internal/payment"
	"github.com/edifica/edifica/internal/token"
	"github.com/edifica/edifica/internal/user"
)

// Repositories bundles the storage backends. Leave nil to derive them from
// the database pool (or in-memory stores when the pool is absent in dev).
type Repositories struct {
	Users         user.Repository
	Apartments    apartment.Repository
	Agreements    agreement.Repository
	Announcements announcement.Repository
	Coupons       coupon.Repository
	Payments      payment.Repository
}

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
	Repos  *Repositories
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() && d.DB == nil && d.Repos == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	repos := d.Repos
	if repos == nil {
		repos = defaultRepositories(d.DB)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Services and handlers
	tokenSvc := token.NewService(d.Cfg.TokenSecret, d.Cfg.TokenTTL)
	roleCache := user.NewRoleCache(d.Cache, d.Cfg.RoleCacheTTL)
	userSvc := user.NewService(repos.Users, roleCache)
	apartmentSvc := apartment.NewService(repos.Apartments)
	agreementSvc := agreement.NewService(repos.Agreements)
	paymentSvc := payment.NewService(repos.Payments, repos.Coupons)

	tokenHandler := token.NewHandler(tokenSvc)
	userHandler := user.NewHandler(userSvc)
	apartmentHandler := apartment.NewHandler(apartmentSvc)
	agreementHandler := agreement.NewHandler(agreementSvc)
	announcementHandler := announcement.NewHandler(repos.Announcements)
	couponHandler := coupon.NewHandler(repos.Coupons)
	paymentHandler := payment.NewHandler(paymentSvc)

	// Guard tiers
	public := app.Group("")
	authed := app.Group("", middleware.RequireAuth(tokenSvc))
	admin := authed.Group("", middleware.RequireAdmin(userSvc))

	public.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).SendString("Server is Running")
	})
	public.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterHealthRoutes(app, d)
	RegisterTokenRoutes(public, tokenHandler)
	RegisterUserRoutes(public, authed, admin, userHandler)
	RegisterApartmentRoutes(public, admin, apartmentHandler)
	RegisterAgreementRoutes(authed, admin, agreementHandler)
	RegisterAnnouncementRoutes(authed, admin, announcementHandler)
	RegisterCouponRoutes(admin, couponHandler)
	RegisterPaymentRoutes(authed, paymentHandler)

	return nil
}

func defaultRepositories(db *pgxpool.Pool) *Repositories {
	if db != nil {
		return &Repositories{
			Users:         user.NewPostgresRepository(db),
			Apartments:    apartment.NewPostgresRepository(db),
			Agreements:    agreement.NewPostgresRepository(db),
			Announcements: announcement.NewPostgresRepository(db),
			Coupons:       coupon.NewPostgresRepository(db),
			Payments:      payment.NewPostgresRepository(db),
		}
	}
	return &Repositories{
		Users:         user.NewMemoryRepository(),
		Apartments:    apartment.NewMemoryRepository(),
		Agreements:    agreement.NewMemoryRepository(),
		Announcements: announcement.NewMemoryRepository(),
		Coupons:       coupon.NewMemoryRepository(),
		Payments:      payment.NewMemoryRepository(),
	}
}
