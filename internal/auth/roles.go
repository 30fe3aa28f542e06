package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

// RequireAuthenticated ensures a member is logged in.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the principal holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil || !principal.User.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
