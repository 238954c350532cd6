package youtube

import (
	"log/slog"
	"time"

	"github.com/jongwoo01/comment-analyze/internal/metrics"
	"github.com/sony/gobreaker"
)

const (
	breakerInterval = 60 * time.Second
	breakerTimeout  = 30 * time.Second
	breakerMinTrips = 5
)

// newBreaker creates a circuit breaker for one external component.
// It opens after breakerMinTrips consecutive failures and allows a single
// probe request once the timeout elapses.
func newBreaker(component string) *gobreaker.CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        component,
		MaxRequests: 1,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerMinTrips
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				"component", name,
				"from", from.String(),
				"to", to.String(),
			)
			metrics.CircuitBreakerStateChanges.WithLabelValues(name, to.String()).Inc()
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	}
	return gobreaker.NewCircuitBreaker(settings)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
