package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/api/metrics"
	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

const latestUsersLimit = 5

// StatsCache is an optional read-through cache for the stats aggregate.
// Implementations must treat failures as misses.
type StatsCache interface {
	Get(ctx context.Context) (*ports.StatsResult, bool)
	Set(ctx context.Context, result *ports.StatsResult)
}

// UserService implements the admin user directory. It performs no role checks;
// the RBAC middleware has already gated access.
type UserService struct {
	repo   ports.UserRepository
	cache  StatsCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache StatsCache, audit ports.AuditSink, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// ListUsers returns every user in the store's natural order, sanitized.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return sanitizeAll(users), nil
}

// GetUser returns a single user by id, sanitized.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdateUser applies a partial update. Absent fields are left untouched.
// Field rules: username at least 3 characters, email a valid shape, role one
// of the recognised tiers.
func (s *UserService) UpdateUser(ctx context.Context, id string, update domain.UserUpdate, actorID string) (*domain.User, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	metrics.AdminActionsTotal.WithLabelValues("update").Inc()
	s.emitAudit(domain.AuditUserUpdated, actorID, id, updateDetail(update))
	s.logger.Info().Str("user_id", id).Str("actor_id", actorID).Msg("user updated")

	sanitized := updated.Sanitized()
	return &sanitized, nil
}

// DeleteUser permanently removes a user. Admins cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, id, actingAdminID string) error {
	// The self check holds regardless of store state, so it runs before the
	// lookup.
	if id == actingAdminID {
		return domain.ErrSelfDeletion
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("delete").Inc()
	s.emitAudit(domain.AuditUserDeleted, actingAdminID, id, "")
	s.logger.Info().Str("user_id", id).Str("actor_id", actingAdminID).Msg("user deleted")
	return nil
}

// GetStats returns aggregate counts plus the five newest users, newest first.
// Results are served from the cache when fresh; cache failures degrade to the
// store silently.
func (s *UserService) GetStats(ctx context.Context) (*ports.StatsResult, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	cores, err := s.repo.CountByRole(ctx, domain.RoleCore)
	if err != nil {
		return nil, err
	}
	latest, err := s.repo.FindLatest(ctx, latestUsersLimit)
	if err != nil {
		return nil, err
	}

	result := &ports.StatsResult{
		Stats: domain.UserStats{
			TotalUsers: total,
			AdminUsers: admins,
			CoreUsers:  cores,
		},
		LatestUsers: sanitizeAll(latest),
	}

	if s.cache != nil {
		s.cache.Set(ctx, result)
	}
	return result, nil
}

func (s *UserService) emitAudit(action, actorID, targetID, detail string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Action:    action,
		ActorID:   actorID,
		TargetID:  targetID,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func validateUpdate(update domain.UserUpdate) error {
	if update.Username != nil && len(*update.Username) < minUsernameLen {
		return fmt.Errorf("%w: username must be at least %d characters", domain.ErrValidation, minUsernameLen)
	}
	if update.Email != nil {
		if err := validate.Var(*update.Email, "required,email"); err != nil {
			return fmt.Errorf("%w: email must be a valid email", domain.ErrValidation)
		}
	}
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return fmt.Errorf("%w: role must be one of: %s, %s", domain.ErrValidation, domain.RoleCore, domain.RoleAdmin)
	}
	return nil
}

func updateDetail(update domain.UserUpdate) string {
	var fields []string
	if update.Username != nil {
		fields = append(fields, "username")
	}
	if update.Email != nil {
		fields = append(fields, "email")
	}
	if update.Role != nil {
		fields = append(fields, "role")
	}
	return strings.Join(fields, ",")
}

func sanitizeAll(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	return out
}
