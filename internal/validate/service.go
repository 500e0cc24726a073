// Package validate wraps the pure nhi core with the observability the
// service needs: per-outcome metrics and structured logging.
package validate

import (
	"context"
	"log/slog"

	"nhicheck/internal/platform/metrics"
	"nhicheck/pkg/nhi"
)

// Result is the outcome of validating one candidate string.
type Result struct {
	// NHI is the normalized uppercase form, present only when valid.
	NHI    string `json:"nhi,omitempty"`
	Valid  bool   `json:"valid"`
	Format string `json:"format,omitempty"`
	// Test marks values reserved for testing (Z prefix).
	Test bool `json:"test,omitempty"`
}

// Service validates candidate NHI strings.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates the validation service.
func New(logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{logger: logger, metrics: m}
}

// Validate checks one candidate. Candidate values are treated as
// PHI-adjacent: log lines carry outcome and shape, never the value
// itself.
func (s *Service) Validate(ctx context.Context, raw string) Result {
	parsed, err := nhi.Parse(raw)
	if err != nil {
		s.metrics.IncrementValidation("invalid", "none")
		s.logger.DebugContext(ctx, "nhi rejected", "input_length", len(raw))
		return Result{Valid: false}
	}

	format := string(parsed.Format())
	s.metrics.IncrementValidation("valid", format)
	s.logger.DebugContext(ctx, "nhi validated", "format", format, "test", parsed.IsTest())

	return Result{
		NHI:    parsed.String(),
		Valid:  true,
		Format: format,
		Test:   parsed.IsTest(),
	}
}

// ValidateBatch checks candidates in order, one result per input.
func (s *Service) ValidateBatch(ctx context.Context, raws []string) []Result {
	results := make([]Result, len(raws))
	for i, raw := range raws {
		results[i] = s.Validate(ctx, raw)
	}
	return results
}
