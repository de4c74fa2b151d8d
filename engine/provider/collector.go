package provider

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
	"github.com/WessleyAI/wessley-vin/pkg/fn"
	"github.com/WessleyAI/wessley-vin/pkg/metrics"
	"github.com/WessleyAI/wessley-vin/pkg/resilience"
)

// Call outcomes reported to metrics.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
	OutcomeOpen  = "open"
)

// DefaultTimeout bounds one provider, retries included.
const DefaultTimeout = 5 * time.Second

type guarded struct {
	p       Provider
	breaker *resilience.Breaker
	limiter *resilience.Limiter
}

// Collector queries every provider in parallel and merges what they return.
type Collector struct {
	guarded []guarded
	timeout time.Duration
	retry   fn.RetryOpts
	breaker resilience.BreakerOpts
	limit   resilience.LimiterOpts
	log     *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Collector.
type Option func(*Collector)

func WithTimeout(d time.Duration) Option { return func(c *Collector) { c.timeout = d } }

func WithRetry(r fn.RetryOpts) Option { return func(c *Collector) { c.retry = r } }

func WithBreaker(b resilience.BreakerOpts) Option { return func(c *Collector) { c.breaker = b } }

// WithLimit rate limits each provider separately.
func WithLimit(l resilience.LimiterOpts) Option { return func(c *Collector) { c.limit = l } }

func WithLogger(l *zap.Logger) Option { return func(c *Collector) { c.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(c *Collector) { c.metrics = m } }

// NewCollector guards each provider with its own breaker and limiter.
// Providers are listed in priority order.
func NewCollector(providers []Provider, opts ...Option) *Collector {
	c := &Collector{
		timeout: DefaultTimeout,
		retry:   fn.DefaultRetry,
		breaker: resilience.DefaultBreakerOpts,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.retry.Retryable == nil {
		c.retry.Retryable = Retryable
	}

	bopts := c.breaker
	user := bopts.OnStateChange
	bopts.OnStateChange = func(name string, from, to resilience.State) {
		c.log.Warn("provider breaker state change",
			zap.String("provider", name), zap.Stringer("from", from), zap.Stringer("to", to))
		if c.metrics != nil {
			c.metrics.SetBreakerState(name, int(to))
		}
		if user != nil {
			user(name, from, to)
		}
	}
	for _, p := range providers {
		c.guarded = append(c.guarded, guarded{
			p:       p,
			breaker: resilience.NewBreaker(p.Name(), bopts),
			limiter: resilience.NewLimiter(c.limit),
		})
	}
	return c
}

// Providers returns the provider names in priority order.
func (c *Collector) Providers() []string {
	names := make([]string, len(c.guarded))
	for i, g := range c.guarded {
		names[i] = g.p.Name()
	}
	return names
}

// Collect returns the merged external data for v, or nil when no provider
// answered with anything. Provider failures are logged, never returned.
func (c *Collector) Collect(ctx context.Context, v vin.VIN) *domain.ExternalVehicle {
	if c == nil || len(c.guarded) == 0 {
		return nil
	}
	calls := make([]func(context.Context) *domain.ExternalVehicle, len(c.guarded))
	for i, g := range c.guarded {
		calls[i] = func(ctx context.Context) *domain.ExternalVehicle { return c.fetch(ctx, g, v) }
	}

	var merged *domain.ExternalVehicle
	for _, ext := range fn.FanOut(ctx, calls...) {
		if ext == nil {
			continue
		}
		if merged == nil {
			cp := *ext
			merged = &cp
			continue
		}
		merged.Merge(ext)
	}
	return merged
}

func (c *Collector) fetch(ctx context.Context, g guarded, v vin.VIN) *domain.ExternalVehicle {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	res := resilience.CallResult(ctx, g.breaker, func(ctx context.Context) fn.Result[*domain.ExternalVehicle] {
		return fn.Retry(ctx, c.retry, func(ctx context.Context) fn.Result[*domain.ExternalVehicle] {
			if err := g.limiter.Wait(ctx); err != nil {
				return fn.Err[*domain.ExternalVehicle](err)
			}
			return fn.FromPair(g.p.Fetch(ctx, v))
		})
	})
	ext, err := res.Unwrap()

	outcome := OutcomeOK
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		outcome = OutcomeOpen
	case err != nil:
		outcome = OutcomeError
	case ext.IsEmpty():
		outcome = OutcomeEmpty
		ext = nil
	}
	if c.metrics != nil {
		c.metrics.ObserveProvider(g.p.Name(), outcome, time.Since(start))
	}
	if err != nil {
		c.log.Warn("provider fetch failed",
			zap.String("provider", g.p.Name()), zap.String("wmi", v.WMI()),
			zap.String("outcome", outcome), zap.Error(err))
		return nil
	}
	return ext
}
