package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub backend
// ---------------------------------------------------------------------------

type stubBackend struct {
	name     string
	response string
	err      error
	calls    int
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) GenerateContent(_ context.Context, _ string) (string, error) {
	b.calls++
	if b.err != nil {
		return "", b.err
	}
	return b.response, nil
}

func toClients(backends ...*stubBackend) []ports.ModelClient {
	clients := make([]ports.ModelClient, len(backends))
	for i, b := range backends {
		clients[i] = b
	}
	return clients
}

func TestAssistantService_FirstBackendSucceeds(t *testing.T) {
	a := &stubBackend{name: "model-a", response: "answer from A"}
	b := &stubBackend{name: "model-b", response: "answer from B"}
	svc := NewAssistantService(toClients(a, b), discardLogger)

	got, err := svc.GenerateResponse(context.Background(), "find me a laptop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "answer from A" {
		t.Errorf("expected A's answer, got %q", got)
	}
	if b.calls != 0 {
		t.Errorf("B must not be attempted after A succeeds, got %d calls", b.calls)
	}
}

func TestAssistantService_FallsBackInOrder(t *testing.T) {
	a := &stubBackend{name: "model-a", err: errors.New("quota exceeded")}
	b := &stubBackend{name: "model-b", response: "answer from B"}
	c := &stubBackend{name: "model-c", response: "answer from C"}
	svc := NewAssistantService(toClients(a, b, c), discardLogger)

	got, err := svc.GenerateResponse(context.Background(), "find me a laptop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "answer from B" {
		t.Errorf("expected B's answer, got %q", got)
	}
	if a.calls != 1 {
		t.Errorf("A must be attempted exactly once, got %d", a.calls)
	}
	if c.calls != 0 {
		t.Errorf("C must never be attempted when B succeeds, got %d calls", c.calls)
	}
}

func TestAssistantService_AllBackendsFail(t *testing.T) {
	errA := errors.New("quota exceeded on A")
	errC := errors.New("network error on C")
	a := &stubBackend{name: "model-a", err: errA}
	b := &stubBackend{name: "model-b", err: errors.New("quota exceeded on B")}
	c := &stubBackend{name: "model-c", err: errC}
	svc := NewAssistantService(toClients(a, b, c), discardLogger)

	_, err := svc.GenerateResponse(context.Background(), "anything")
	if err == nil {
		t.Fatal("expected error when every backend fails")
	}
	if !errors.Is(err, domain.ErrAllBackendsFailed) {
		t.Errorf("error must wrap ErrAllBackendsFailed, got %v", err)
	}
	if !errors.Is(err, errC) {
		t.Errorf("error must carry the LAST backend's failure, got %v", err)
	}
	if errors.Is(err, errA) {
		t.Errorf("error must not carry an earlier backend's failure")
	}
	if a.calls != 1 || b.calls != 1 || c.calls != 1 {
		t.Errorf("each backend must be attempted exactly once, got %d/%d/%d", a.calls, b.calls, c.calls)
	}
}

func TestAssistantService_NoCrossCallState(t *testing.T) {
	a := &stubBackend{name: "model-a", err: errors.New("down")}
	b := &stubBackend{name: "model-b", response: "ok"}
	svc := NewAssistantService(toClients(a, b), discardLogger)

	for i := 0; i < 3; i++ {
		if _, err := svc.GenerateResponse(context.Background(), "q"); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	// Every call restarts from the top of the chain.
	if a.calls != 3 {
		t.Errorf("A must be attempted on every call, got %d", a.calls)
	}
}

func TestAssistantService_NoBackends(t *testing.T) {
	svc := NewAssistantService(nil, discardLogger)

	_, err := svc.GenerateResponse(context.Background(), "q")
	if !errors.Is(err, domain.ErrAllBackendsFailed) {
		t.Fatalf("expected ErrAllBackendsFailed, got %v", err)
	}
}
