package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

const (
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

// BreakerModel stops calling a backend after consecutive failures. While
// the breaker is open every call fails immediately with
// gobreaker.ErrOpenState. Calls are never retried.
type BreakerModel struct {
	model   Model
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerModel wraps model. The breaker opens after failures
// consecutive errors and tries the backend again after timeout.
func NewBreakerModel(model Model, failures uint32, timeout time.Duration) *BreakerModel {
	if failures == 0 {
		failures = defaultBreakerFailures
	}
	if timeout <= 0 {
		timeout = defaultBreakerTimeout
	}

	settings := gobreaker.Settings{
		Name:    model.Name(),
		Timeout: timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// Cancellation and empty answers say nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrEmptyResponse)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("model circuit breaker changed state",
				"backend", name, "from", from.String(), "to", to.String())
		},
	}

	return &BreakerModel{
		model:   model,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Generate forwards to the wrapped model unless the breaker is open
func (b *BreakerModel) Generate(ctx context.Context, model, prompt string) (string, error) {
	out, err := b.breaker.Execute(func() (interface{}, error) {
		return b.model.Generate(ctx, model, prompt)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%s backend unavailable: %w", b.model.Name(), err)
		}
		return "", err
	}
	return out.(string), nil
}

// Name returns the wrapped backend name
func (b *BreakerModel) Name() string {
	return b.model.Name()
}

// State returns the current breaker state
func (b *BreakerModel) State() gobreaker.State {
	return b.breaker.State()
}
