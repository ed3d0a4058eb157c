package ports

import (
	"context"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes a single audit event end-to-end.
type AuditService interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink accepts events for asynchronous recording. Enqueue must not block
// the caller beyond channel buffering and must never return an error path to
// the request that produced the event.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
