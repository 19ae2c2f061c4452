package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

// RBAC enforces role-based access control against the role the Auth
// middleware attached. Pure in-memory check, no repository call.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RBACScoped enforces role-based access additionally scoped to the
// institution named by the :institutionID route param. Unlike RBAC this
// delegates to the permission workflow, which re-reads the user and checks
// institution membership.
func RBACScoped(perm ports.PermissionService, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			institutionID := c.Param("institutionID")
			ok, err := perm.Check(c.Request().Context(), userID, institutionID, allowedRoles)
			if err != nil {
				// The token subject no longer exists: the session is dead,
				// not merely forbidden.
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown identity")
				}
				return err
			}
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
