package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/user"
)

const forbiddenMessage = "Forbidden access"

// RequireAdmin is the authorization stage of the access guard. It runs after
// RequireAuth on admin-gated routes only and resolves the authenticated
// email's role against the user directory (through the service's short-TTL
// cache, which role mutations invalidate synchronously). Unknown users and
// non-admin roles answer a uniform 403 without invoking the handler.
func RequireAdmin(users *user.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals(IdentityKey).(string)
		if email == "" {
			return forbidden(c)
		}

		admin, err := users.IsAdmin(c.UserContext(), email)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
		if !admin {
			return forbidden(c)
		}
		return c.Next()
	}
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(fiber.Map{"message": forbiddenMessage})
}
