package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/itemvault/inventory-api/internal/api/metrics"
	"github.com/itemvault/inventory-api/internal/core/domain"
	"github.com/itemvault/inventory-api/internal/core/ports"
)

// Context keys under which the verified claims are bound.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// Auth verifies the bearer token and injects the verified claims into the
// request context. A missing header is 401 before any verification; any
// verification failure is 403. The middleware is a pure gate: no store
// lookup, the claims are trusted for the token's lifetime.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claims, err := tokens.Verify(extractToken(authHeader))
			if err != nil {
				metrics.TokensVerifiedTotal.WithLabelValues(verifyResult(err)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}
			metrics.TokensVerifiedTotal.WithLabelValues("ok").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}

// extractToken accepts either "Bearer <token>" (scheme case-insensitive) or a
// raw token value.
func extractToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return header
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "invalid"
	default:
		return "malformed"
	}
}
