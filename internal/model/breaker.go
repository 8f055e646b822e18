package model

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCircuitOpen is returned while the breaker is blocking calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// BreakerState is the circuit breaker state.
type BreakerState int

const (
	// StateClosed allows all calls.
	StateClosed BreakerState = iota
	// StateOpen blocks calls until the cooldown passes.
	StateOpen
	// StateHalfOpen allows probe calls to test recovery.
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures the circuit breaker around the model sidecar.
type BreakerConfig struct {
	// FailureThreshold is consecutive failures before opening.
	FailureThreshold int
	// SuccessThreshold is consecutive half-open successes before closing.
	SuccessThreshold int
	// Cooldown is how long the circuit stays open before a probe.
	Cooldown time.Duration
	// OnStateChange is called on every transition.
	OnStateChange func(from, to BreakerState)
}

const (
	defaultFailureThreshold = 5
	defaultSuccessThreshold = 2
	defaultCooldown         = 30 * time.Second
)

// Breaker shields the model sidecar from repeated calls while it is down.
type Breaker struct {
	mu              sync.Mutex
	state           BreakerState
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	config          BreakerConfig
}

// NewBreaker creates a closed circuit breaker.
func NewBreaker(config BreakerConfig) *Breaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = defaultFailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = defaultSuccessThreshold
	}
	if config.Cooldown <= 0 {
		config.Cooldown = defaultCooldown
	}

	return &Breaker{
		state:  StateClosed,
		config: config,
	}
}

// Execute runs fn under breaker protection and records the outcome.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.beforeCall(); err != nil {
		return err
	}

	err := fn()
	b.afterCall(err)
	return err
}

func (b *Breaker) beforeCall() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if time.Since(b.lastFailureTime) >= b.config.Cooldown {
			b.transitionTo(StateHalfOpen)
			return nil
		}
		remaining := b.config.Cooldown - time.Since(b.lastFailureTime)
		return fmt.Errorf("%w: retry in %v", ErrCircuitOpen, remaining)
	}

	return nil
}

func (b *Breaker) afterCall(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failureCount++
		b.lastFailureTime = time.Now()

		// Any failure in half-open state reopens immediately.
		if b.state == StateHalfOpen || b.failureCount >= b.config.FailureThreshold {
			b.transitionTo(StateOpen)
		}
		return
	}

	switch b.state {
	case StateHalfOpen:
		b.successCount++
		if b.successCount >= b.config.SuccessThreshold {
			b.transitionTo(StateClosed)
		}
	default:
		b.failureCount = 0
	}
}

func (b *Breaker) transitionTo(newState BreakerState) {
	if b.state == newState {
		return
	}

	oldState := b.state
	b.state = newState
	b.failureCount = 0
	b.successCount = 0

	if b.config.OnStateChange != nil {
		b.config.OnStateChange(oldState, newState)
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
