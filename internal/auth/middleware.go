package auth

import (
	"strings"

	"till-backend/internal/config"
	"till-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const CtxIdentityKey = "identity"

// SessionMiddleware resolves the session cookie (or a bearer token) into
// an identity. Requests without a valid session pass through with no
// identity attached; handlers decide what that means.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(cfg.SessionCookieName)
		if tokenStr == "" {
			parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			}
		}
		if tokenStr == "" {
			return c.Next()
		}

		claims, err := ParseToken(cfg.SessionSecret, tokenStr)
		if err == nil {
			c.Locals(CtxIdentityKey, claims.Identity())
		}
		return c.Next()
	}
}

// CurrentUser returns the session identity, or nil when the request is
// not authenticated.
func CurrentUser(c *fiber.Ctx) *models.Identity {
	id, _ := c.Locals(CtxIdentityKey).(*models.Identity)
	return id
}

func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if !user.HasRole(allowedRoles...) {
			return fiber.NewError(fiber.StatusForbidden, "You are not allowed to do this")
		}
		return c.Next()
	}
}
