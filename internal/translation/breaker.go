package translation

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerProvider wraps another provider with a circuit breaker so a dead
// translation service is not hammered once per remaining document in a
// long batch. After enough consecutive failures the breaker opens and
// calls fail immediately until the cool-down elapses. Failures stay
// per-item: the batch keeps going either way, and nothing is retried.
type BreakerProvider struct {
	inner   Provider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps inner with a circuit breaker that opens after
// five consecutive failures and probes again after one minute.
func NewBreakerProvider(inner Provider) Provider {
	settings := gobreaker.Settings{
		Name:    inner.Name(),
		Timeout: time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &BreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate delegates to the wrapped provider through the breaker
func (p *BreakerProvider) Translate(ctx context.Context, text string) (string, error) {
	translated, err := p.breaker.Execute(func() (interface{}, error) {
		return p.inner.Translate(ctx, text)
	})
	if err != nil {
		return "", err
	}
	return translated.(string), nil
}

// Name returns the wrapped provider's name
func (p *BreakerProvider) Name() string {
	return p.inner.Name()
}

// IsAvailable checks the wrapped provider's availability
func (p *BreakerProvider) IsAvailable() error {
	return p.inner.IsAvailable()
}
