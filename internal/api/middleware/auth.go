package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

// Context keys set by Auth on success.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth is the authenticate stage: it validates the bearer JWT (signature and
// expiry) and resolves the subject against the credential store, rejecting
// tokens whose user no longer exists. On success it injects user_id, username
// and role into the context; role comes from the store record so an admin
// demotion takes effect on the next request, not at token expiry. Every
// failure wraps domain.ErrUnauthenticated for the central error handler.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return fmt.Errorf("%w: missing authorization header", domain.ErrUnauthenticated)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return fmt.Errorf("%w: invalid authorization header", domain.ErrUnauthenticated)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
			}

			userID, _ := claims["user_id"].(string)
			if userID == "" {
				return fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
			}

			// One store lookup per request: a valid token for a deleted
			// user must not pass the gate.
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return fmt.Errorf("%w: invalid token", domain.ErrUnauthenticated)
			}

			c.Set(CtxUserID, user.ID)
			c.Set(CtxUsername, user.Username)
			c.Set(CtxRole, user.Role)

			return next(c)
		}
	}
}
