package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

type BreakerConfig struct {
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenProbes   int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenProbes:   2,
	}
}

// Breaker trips after FailureThreshold consecutive failures and rejects calls
// until OpenTimeout has passed. It then lets HalfOpenProbes calls through and
// closes again once all of them succeed.
type Breaker struct {
	mu  sync.Mutex
	cfg BreakerConfig

	// isFailure decides which errors count against the dependency.
	isFailure func(error) bool

	state     State
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int
	now       func() time.Time
}

// NewBreaker builds a closed breaker. A nil isFailure counts every non-nil
// error.
func NewBreaker(cfg BreakerConfig, isFailure func(error) bool) *Breaker {
	defaults := DefaultBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenProbes < 1 {
		cfg.HalfOpenProbes = defaults.HalfOpenProbes
	}
	if isFailure == nil {
		isFailure = func(err error) bool { return err != nil }
	}

	return &Breaker{
		cfg:       cfg,
		isFailure: isFailure,
		state:     StateClosed,
		now:       time.Now,
	}
}

// Execute runs fn unless the breaker is open, and records its outcome.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.admit(); err != nil {
		return err
	}

	err := fn()
	if err != nil && b.isFailure(err) {
		b.recordFailure()
	} else {
		b.recordSuccess()
	}
	return err
}

func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return StateHalfOpen
	}
	return b.state
}

func (b *Breaker) admit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.state = StateHalfOpen
		b.inFlight = 0
		b.successes = 0
	}

	if b.state == StateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenProbes {
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *Breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
		b.successes++
		if b.successes >= b.cfg.HalfOpenProbes && b.inFlight == 0 {
			b.state = StateClosed
			b.failures = 0
			b.successes = 0
		}
	}
}

func (b *Breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures < b.cfg.FailureThreshold {
			return
		}
	case StateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
	}

	b.state = StateOpen
	b.openedAt = b.now()
	b.successes = 0
}
