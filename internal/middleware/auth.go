package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/token"
)

// IdentityKey is the fiber.Ctx local under which the authenticated email is
// stored for downstream handlers.
const IdentityKey = "user_email"

const unauthorizedMessage = "Unauthorized access"

// RequireAuth is the authentication stage of the access guard. It is a pure
// gate: the credential is verified cryptographically and the decoded identity
// attached to the request, but the user directory is never consulted. All
// failure modes (absent header, malformed, expired, forged) answer the same
// uniform 401 before any handler logic runs.
func RequireAuth(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearerCredential(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return unauthorized(c)
		}

		id, err := tokens.Verify(raw)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(IdentityKey, id.Email)
		return c.Next()
	}
}

func bearerCredential(header string) (string, error) {
	if header == "" {
		return "", token.ErrMissingCredential
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", token.ErrMalformedCredential
	}
	return strings.TrimSpace(header[len("Bearer "):]), nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": unauthorizedMessage})
}
