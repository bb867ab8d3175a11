package classifier

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/justestif/go-movie-mood-recommender/internal/emotion"
	"github.com/justestif/go-movie-mood-recommender/internal/logging"
)

// BreakerConfig tunes the circuit breaker around a classifier.
type BreakerConfig struct {
	Name             string
	FailureThreshold uint32        // consecutive failures before opening (default: 5)
	Timeout          time.Duration // time spent open before a trial call (default: 30s)
	MaxRequests      uint32        // trial calls allowed while half-open (default: 1)
}

// Breaker stops calling a failing classifier for a while. While open, calls
// fail fast with gobreaker.ErrOpenState, which the synthesizer treats like any
// other classification failure.
type Breaker struct {
	next emotion.EmotionClassifier
	cb   *gobreaker.CircuitBreaker[map[string]float64]
}

// NewBreaker wraps next.
func NewBreaker(next emotion.EmotionClassifier, cfg BreakerConfig) *Breaker {
	if cfg.Name == "" {
		cfg.Name = "classifier"
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = 1
	}

	cb := gobreaker.NewCircuitBreaker[map[string]float64](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("classifier breaker state change")
		},
		// Caller cancellation says nothing about backend health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &Breaker{next: next, cb: cb}
}

// Classify forwards to the wrapped classifier unless the breaker is open.
func (b *Breaker) Classify(ctx context.Context, text string) (map[string]float64, error) {
	return b.cb.Execute(func() (map[string]float64, error) {
		return b.next.Classify(ctx, text)
	})
}

// State reports the breaker state: "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}
