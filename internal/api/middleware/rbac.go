package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

// RBAC is the authorize stage: a pure role check over the context populated by
// Auth. Registered after Auth, it never sees an unauthenticated request, so a
// failure here is always domain.ErrForbidden (403), never 401.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
