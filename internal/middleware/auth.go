package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/auth"
	"github.com/jovannablesslyn/CAR-RENTAL-PLATFORM/internal/models"
)

const userContextKey = "user"

// TokenVerifier is the part of auth.TokenIssuer the guard needs.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireAuth gates a route group on a valid bearer token. On success the
// resolved claims are stashed in the request context for downstream handlers;
// on failure the request is rejected before any handler runs.
func RequireAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the claims stashed by RequireAuth, or nil on
// unauthenticated routes.
func CurrentUser(c echo.Context) *auth.Claims {
	claims, _ := c.Get(userContextKey).(*auth.Claims)
	return claims
}

// RequireRole restricts a route to one role. No current route mounts it; the
// hook exists for endpoints that need admin-only access later.
func RequireRole(role models.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := CurrentUser(c)
			if claims == nil || claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
