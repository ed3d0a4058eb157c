package ports

import (
	"context"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

// AuthService handles registration and login. Both return a signed session
// token alongside the sanitized user record.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
