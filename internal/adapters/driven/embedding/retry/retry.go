// Package retry decorates an embedding service with proactive throttling
// and bounded retries. Providers impose per-minute request quotas; the
// decorator smooths request bursts with a token bucket and retries
// transient provider failures with exponential backoff.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/repolens-labs/repolens-cli/internal/core/domain"
	"github.com/repolens-labs/repolens-cli/internal/core/ports/driven"
	"github.com/repolens-labs/repolens-cli/internal/logger"
)

// Ensure Service implements the interface.
var _ driven.EmbeddingService = (*Service)(nil)

// Default configuration values.
const (
	// DefaultRate is the proactive throttle rate in requests per second.
	DefaultRate = 5.0

	// DefaultBurst is the token bucket burst size.
	DefaultBurst = 1

	// DefaultMaxAttempts is the total number of attempts per call.
	DefaultMaxAttempts = 3

	// DefaultBaseDelay is the backoff delay after the first failure.
	// Subsequent failures double it up to DefaultMaxDelay.
	DefaultBaseDelay = 500 * time.Millisecond

	// DefaultMaxDelay caps the backoff delay.
	DefaultMaxDelay = 8 * time.Second
)

// Config holds configuration for the retry decorator.
type Config struct {
	// Rate is the throttle rate in requests per second (default: 5).
	Rate float64

	// Burst is the token bucket burst size (default: 1).
	Burst int

	// MaxAttempts is the total number of attempts per call (default: 3).
	MaxAttempts int

	// BaseDelay is the initial backoff delay (default: 500ms).
	BaseDelay time.Duration

	// MaxDelay caps the backoff delay (default: 8s).
	MaxDelay time.Duration
}

// Service wraps an embedding service with throttling and retries.
type Service struct {
	inner       driven.EmbeddingService
	bucket      *rate.Limiter
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

// Wrap decorates the given embedding service.
func Wrap(inner driven.EmbeddingService, cfg Config) *Service {
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}

	return &Service{
		inner:       inner,
		bucket:      rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		maxDelay:    cfg.MaxDelay,
	}
}

// Embed generates a vector embedding, retrying transient provider failures.
// Only errors wrapping domain.ErrProvider are retried; validation errors
// and context cancellation fail immediately.
func (s *Service) Embed(ctx context.Context, text string) ([]float32, error) {
	var lastErr error

	delay := s.baseDelay
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := s.bucket.Wait(ctx); err != nil {
			return nil, err
		}

		embedding, err := s.inner.Embed(ctx, text)
		if err == nil {
			return embedding, nil
		}
		lastErr = err

		if !errors.Is(err, domain.ErrProvider) {
			return nil, err
		}
		if attempt == s.maxAttempts {
			break
		}

		logger.Warn("Embedding attempt %d/%d failed, retrying in %s: %v",
			attempt, s.maxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > s.maxDelay {
			delay = s.maxDelay
		}
	}

	return nil, fmt.Errorf("embedding failed after %d attempts: %w", s.maxAttempts, lastErr)
}

// Dimensions returns the embedding vector size of the wrapped service.
func (s *Service) Dimensions() int {
	return s.inner.Dimensions()
}

// ModelName returns the model name of the wrapped service.
func (s *Service) ModelName() string {
	return s.inner.ModelName()
}

// Ping forwards to the wrapped service without retries.
func (s *Service) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// Close closes the wrapped service.
func (s *Service) Close() error {
	return s.inner.Close()
}
