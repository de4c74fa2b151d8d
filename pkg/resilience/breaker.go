// Package resilience guards outbound provider calls with a circuit breaker
// and a token-bucket rate limiter.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/WessleyAI/wessley-vin/pkg/fn"
)

// State is a circuit breaker state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
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

var ErrCircuitOpen = errors.New("circuit breaker is open")

// BreakerOpts configures a Breaker.
type BreakerOpts struct {
	// FailThreshold is how many consecutive failures trip the breaker.
	FailThreshold int
	// Timeout is how long the breaker stays open before a probe.
	Timeout time.Duration
	// HalfOpenMax is the number of concurrent probes allowed half-open.
	HalfOpenMax int
	// IsFailure decides whether an error counts against the breaker. Nil
	// counts every error except context cancellation.
	IsFailure func(error) bool
	// OnStateChange is called outside the lock after each transition.
	OnStateChange func(name string, from, to State)
}

var DefaultBreakerOpts = BreakerOpts{
	FailThreshold: 5,
	Timeout:       30 * time.Second,
	HalfOpenMax:   1,
}

// Breaker is a named closed/open/half-open circuit breaker.
type Breaker struct {
	name string
	opts BreakerOpts

	mu            sync.Mutex
	state         State
	failures      int
	openedAt      time.Time
	halfOpenCount int
	now           func() time.Time
}

// NewBreaker creates a breaker. Zero option fields take their defaults.
func NewBreaker(name string, opts BreakerOpts) *Breaker {
	if opts.FailThreshold <= 0 {
		opts.FailThreshold = DefaultBreakerOpts.FailThreshold
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultBreakerOpts.Timeout
	}
	if opts.HalfOpenMax <= 0 {
		opts.HalfOpenMax = DefaultBreakerOpts.HalfOpenMax
	}
	if opts.IsFailure == nil {
		opts.IsFailure = func(err error) bool { return !errors.Is(err, context.Canceled) }
	}
	return &Breaker{name: name, opts: opts, now: time.Now}
}

func (b *Breaker) Name() string { return b.name }

// State returns the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	st, tr := b.currentState()
	b.mu.Unlock()
	b.notify(tr)
	return st
}

type transition struct {
	from, to State
	changed  bool
}

// currentState moves open to half-open once the timeout has elapsed. Must
// hold mu.
func (b *Breaker) currentState() (State, transition) {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.opts.Timeout {
		return StateHalfOpen, b.setState(StateHalfOpen)
	}
	return b.state, transition{}
}

// setState must hold mu.
func (b *Breaker) setState(to State) transition {
	tr := transition{from: b.state, to: to, changed: b.state != to}
	b.state = to
	switch to {
	case StateOpen:
		b.openedAt = b.now()
		b.failures = 0
		b.halfOpenCount = 0
	case StateHalfOpen:
		b.halfOpenCount = 0
	case StateClosed:
		b.failures = 0
	}
	return tr
}

func (b *Breaker) notify(tr transition) {
	if tr.changed && b.opts.OnStateChange != nil {
		b.opts.OnStateChange(b.name, tr.from, tr.to)
	}
}

func (b *Breaker) before() error {
	b.mu.Lock()
	st, tr := b.currentState()
	var err error
	switch st {
	case StateOpen:
		err = ErrCircuitOpen
	case StateHalfOpen:
		if b.halfOpenCount >= b.opts.HalfOpenMax {
			err = ErrCircuitOpen
		} else {
			b.halfOpenCount++
		}
	}
	b.mu.Unlock()
	b.notify(tr)
	return err
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	var tr transition
	switch {
	case err != nil && b.opts.IsFailure(err):
		b.failures++
		if b.state == StateHalfOpen || b.failures >= b.opts.FailThreshold {
			tr = b.setState(StateOpen)
		}
	case err != nil:
		if b.state == StateHalfOpen {
			b.halfOpenCount--
		}
	default:
		tr = b.setState(StateClosed)
	}
	b.mu.Unlock()
	b.notify(tr)
}

// Call runs f through the breaker.
func (b *Breaker) Call(ctx context.Context, f func(context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}
	err := f(ctx)
	b.after(err)
	return err
}

// CallResult is Call for functions returning fn.Result.
func CallResult[T any](ctx context.Context, b *Breaker, f func(context.Context) fn.Result[T]) fn.Result[T] {
	if err := b.before(); err != nil {
		return fn.Err[T](err)
	}
	r := f(ctx)
	_, err := r.Unwrap()
	b.after(err)
	return r
}
