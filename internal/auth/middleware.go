package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/skillswap-service/internal/domain"
	"github.com/spec-kit/skillswap-service/internal/repository"
	apperrors "github.com/spec-kit/skillswap-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User           *domain.User
	TokenID        string
	TokenExpiresAt time.Time
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	users    repository.UserRepository
	denylist TokenDenylist
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, denylist TokenDenylist) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, denylist: denylist}
}

// Handle enforces authentication for protected routes. A failed lookup or a
// revoked token yields 401, which clients treat as a cleared session; banned
// and deactivated accounts yield 403.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.IsRevoked(c.Context(), claims.ID)
		if err == nil && revoked {
			return apperrors.NewUnauthorized("token revoked")
		}
	}

	user, err := m.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}
	if !user.Active {
		return apperrors.NewForbidden("account deactivated")
	}
	if user.Banned {
		return apperrors.NewForbidden("account banned")
	}

	principal := &Principal{User: user, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		principal.TokenExpiresAt = claims.ExpiresAt.Time
	}
	StorePrincipal(c, principal)
	return c.Next()
}

// StorePrincipal attaches the authenticated caller to the request. Handlers
// read it back through PrincipalFromContext.
func StorePrincipal(c *fiber.Ctx, principal *Principal) {
	c.Locals(principalKey, principal)
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
