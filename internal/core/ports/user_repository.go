package ports

import (
	"context"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

// UserRepository is the persistence contract for user records. Implementations
// return domain.ErrInvalidID for malformed identifiers, domain.ErrUserNotFound
// when an id does not resolve, and domain.ErrUserExists on unique-key clashes.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	FindLatest(ctx context.Context, limit int) ([]domain.User, error)
}
