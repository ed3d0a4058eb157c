package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/api/metrics"
	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

// AssistantService answers shopping queries through an ordered fallback chain
// of inference backends. The chain is fixed at construction: most-preferred
// first. Every call walks the chain from the top; no cross-call state, no
// circuit breaking.
type AssistantService struct {
	backends []ports.ModelClient
	logger   zerolog.Logger
}

func NewAssistantService(backends []ports.ModelClient, logger zerolog.Logger) *AssistantService {
	return &AssistantService{backends: backends, logger: logger}
}

// GenerateResponse tries each backend in order, once each, strictly
// sequentially, returning the first successful answer. When every backend
// fails the returned error wraps domain.ErrAllBackendsFailed and the last
// attempt's failure.
func (s *AssistantService) GenerateResponse(ctx context.Context, query string) (string, error) {
	start := time.Now()

	var lastErr error
	for _, backend := range s.backends {
		text, err := backend.GenerateContent(ctx, query)
		if err != nil {
			metrics.BackendAttemptsTotal.WithLabelValues(backend.Name(), "error").Inc()
			s.logger.Warn().Err(err).Str("model", backend.Name()).Msg("backend attempt failed")
			lastErr = err
			continue
		}

		metrics.BackendAttemptsTotal.WithLabelValues(backend.Name(), "success").Inc()
		metrics.QueryDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
		s.logger.Info().Str("model", backend.Name()).Msg("backend attempt succeeded")
		return text, nil
	}

	metrics.FallbackExhaustedTotal.Inc()
	metrics.QueryDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())

	if lastErr == nil {
		// No backends configured at all.
		return "", domain.ErrAllBackendsFailed
	}
	return "", fmt.Errorf("%w: %w", domain.ErrAllBackendsFailed, lastErr)
}
