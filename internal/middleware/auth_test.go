package middleware

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edifica/edifica/internal/token"
	"github.com/edifica/edifica/internal/user"
)

func setupGuardedApp(t *testing.T) (*fiber.App, *token.Service, *user.Service) {
	t.Helper()

	tokens := token.NewService("test-secret", time.Hour)
	users := user.NewService(user.NewMemoryRepository(), nil)

	app := fiber.New()
	authed := app.Group("", RequireAuth(tokens))
	authed.Get("/profile", func(c *fiber.Ctx) error {
		email, _ := c.Locals(IdentityKey).(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{"email": email})
	})

	admin := authed.Group("", RequireAdmin(users))
	admin.Get("/admin-only", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"ok": true})
	})

	return app, tokens, users
}

func bearer(t *testing.T, tokens *token.Service, email string) string {
	t.Helper()
	signed, err := tokens.Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return "Bearer " + signed
}

func doRequest(t *testing.T, app *fiber.App, path, authz string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		t.Fatalf("decode body %q: %v", payload, err)
	}
	return body.Message
}

func TestMissingHeaderIsUnauthorized(t *testing.T) {
	app, _, _ := setupGuardedApp(t)

	resp := doRequest(t, app, "/profile", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if msg := decodeMessage(t, resp); msg != "Unauthorized access" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestForeignSecretIsUnauthorized(t *testing.T) {
	app, _, _ := setupGuardedApp(t)
	foreign := token.NewService("other-secret", time.Hour)

	resp := doRequest(t, app, "/profile", bearer(t, foreign, "resident@edifica.test"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestExpiredCredentialIsUnauthorized(t *testing.T) {
	app, _, _ := setupGuardedApp(t)
	expired := token.NewService("test-secret", -time.Minute)

	resp := doRequest(t, app, "/profile", bearer(t, expired, "resident@edifica.test"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMalformedBearerIsUnauthorized(t *testing.T) {
	app, _, _ := setupGuardedApp(t)

	for _, authz := range []string{"Bearer", "Bearer not-a-token", "Token abc"} {
		resp := doRequest(t, app, "/profile", authz)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("authz %q: expected 401, got %d", authz, resp.StatusCode)
		}
	}
}

func TestValidCredentialPassesAuthentication(t *testing.T) {
	app, tokens, _ := setupGuardedApp(t)

	resp := doRequest(t, app, "/profile", bearer(t, tokens, "resident@edifica.test"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestNonAdminIsForbidden(t *testing.T) {
	app, tokens, users := setupGuardedApp(t)
	if _, err := users.Register(context.Background(), "Resident", "resident@edifica.test"); err != nil {
		t.Fatalf("register: %v", err)
	}

	resp := doRequest(t, app, "/admin-only", bearer(t, tokens, "resident@edifica.test"))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	if msg := decodeMessage(t, resp); msg != "Forbidden access" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestUnknownIdentityIsForbidden(t *testing.T) {
	app, tokens, _ := setupGuardedApp(t)

	// The token verifies, but no directory record exists for the email.
	resp := doRequest(t, app, "/admin-only", bearer(t, tokens, "ghost@edifica.test"))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestAdminPassesAuthorization(t *testing.T) {
	app, tokens, users := setupGuardedApp(t)
	ctx := context.Background()

	u, err := users.Register(ctx, "Manager", "manager@edifica.test")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := users.ChangeRole(ctx, u.ID, user.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}

	resp := doRequest(t, app, "/admin-only", bearer(t, tokens, "manager@edifica.test"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected handler to run, got %d", resp.StatusCode)
	}
}

func TestRevokedRoleTakesEffectNextRequest(t *testing.T) {
	app, tokens, users := setupGuardedApp(t)
	ctx := context.Background()

	u, err := users.Register(ctx, "Manager", "manager@edifica.test")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := users.ChangeRole(ctx, u.ID, user.RoleAdmin); err != nil {
		t.Fatalf("promote: %v", err)
	}

	authz := bearer(t, tokens, "manager@edifica.test")
	if resp := doRequest(t, app, "/admin-only", authz); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 before revocation, got %d", resp.StatusCode)
	}

	if err := users.ChangeRole(ctx, u.ID, user.RoleUser); err != nil {
		t.Fatalf("demote: %v", err)
	}

	if resp := doRequest(t, app, "/admin-only", authz); resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 right after revocation, got %d", resp.StatusCode)
	}
}
