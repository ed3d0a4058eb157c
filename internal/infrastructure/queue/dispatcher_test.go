package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
	done   chan struct{}
}

func newRecordingAuditService(expected int) *recordingAuditService {
	return &recordingAuditService{done: make(chan struct{}, expected)}
}

func (s *recordingAuditService) Record(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.done <- struct{}{}
	return s.err
}

func (s *recordingAuditService) wait(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
}

func (s *recordingAuditService) recorded() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_RecordsEvents(t *testing.T) {
	svc := newRecordingAuditService(2)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuditEvent{Action: domain.AuditUserUpdated, ActorID: "admin-1", TargetID: "u2"})
	d.Enqueue(domain.AuditEvent{Action: domain.AuditUserDeleted, ActorID: "admin-1", TargetID: "u3"})
	svc.wait(t, 2)

	events := svc.recorded()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Same actor lands on the same worker, so order is preserved.
	if events[0].Action != domain.AuditUserUpdated || events[1].Action != domain.AuditUserDeleted {
		t.Errorf("events out of order: %v then %v", events[0].Action, events[1].Action)
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingAuditService(0), zerolog.Nop())

	for _, actor := range []string{"admin-1", "admin-2", ""} {
		first := d.shardIndex(actor)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(actor); got != first {
				t.Fatalf("shard for %q moved from %d to %d", actor, first, got)
			}
		}
	}
}

func TestDispatcher_RecordFailureIsSwallowed(t *testing.T) {
	svc := newRecordingAuditService(1)
	svc.err = errors.New("storage down")
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuditEvent{Action: domain.AuditUserDeleted, ActorID: "admin-1"})
	svc.wait(t, 1)
	// No panic and no error surfaced; the failure is only logged.
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingAuditService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
