package domain

import "time"

// Audit actions recorded for admin mutations.
const (
	AuditUserUpdated = "user.updated"
	AuditUserDeleted = "user.deleted"
)

// AuditEvent records one admin-issued mutation. Best-effort: audit persistence
// never blocks or fails the request that produced it.
type AuditEvent struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Action    string    `json:"action" bson:"action"`
	ActorID   string    `json:"actor_id" bson:"actor_id"`
	TargetID  string    `json:"target_id" bson:"target_id"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
