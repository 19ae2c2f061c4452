package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a non-empty user id and role prove the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
