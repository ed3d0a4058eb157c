package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/shopwise/shopping-assistant/internal/api/middleware"
	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a populated user_id proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (userID, username, role string, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", "", fmt.Errorf("%w: missing authentication claims", domain.ErrUnauthenticated)
	}
	username, _ = c.Get(middleware.CtxUsername).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	return userID, username, role, nil
}
