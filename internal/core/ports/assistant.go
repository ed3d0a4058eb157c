package ports

import "context"

// ModelClient is a handle to one named inference backend.
type ModelClient interface {
	// Name identifies the backend candidate (e.g. "gemini-1.5-flash").
	Name() string
	// GenerateContent submits a prompt and returns the generated text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssistantService answers free-text shopping queries.
type AssistantService interface {
	// GenerateResponse tries each configured backend in priority order and
	// returns the first successful answer. When every backend fails it
	// returns domain.ErrAllBackendsFailed wrapping the last failure.
	GenerateResponse(ctx context.Context, query string) (string, error)
}
