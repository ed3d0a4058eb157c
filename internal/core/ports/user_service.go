package ports

import (
	"context"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

// StatsResult bundles the aggregate counts with the five newest users.
type StatsResult struct {
	Stats       domain.UserStats
	LatestUsers []domain.User
}

// UserService exposes the admin user directory. Callers are expected to have
// passed the admin gate already; the service itself performs no role checks.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, update domain.UserUpdate, actorID string) (*domain.User, error)
	DeleteUser(ctx context.Context, id, actingAdminID string) error
	GetStats(ctx context.Context) (*StatsResult, error)
}
