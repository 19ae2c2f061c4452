package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/core/token"
)

// Context keys under which the Auth middleware stores the verified claims.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// TokenVerifier is the slice of the token service the gate needs.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Auth extracts the Bearer token, verifies it, and attaches the decoded
// identity to the request context. The claims are trusted as-is (signature +
// expiry); no repository lookup happens here. Invalid and expired tokens
// produce the same response so the client cannot tell which occurred.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
