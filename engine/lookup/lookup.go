// Package lookup is the calling layer around the decoder: it consults the
// cache and upstream providers, decodes, then records the result in the
// configured sinks. Only a structurally invalid VIN fails a lookup.
package lookup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/WessleyAI/wessley-vin/engine/decoder"
	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/store"
	"github.com/WessleyAI/wessley-vin/engine/vin"
	"github.com/WessleyAI/wessley-vin/pkg/fn"
	"github.com/WessleyAI/wessley-vin/pkg/metrics"
)

// CallerProvider tags external data supplied with the request.
const CallerProvider = "caller"

// Outcome is the answer to one lookup.
type Outcome struct {
	decoder.Identity
	RecordID string `json:"recordId,omitempty"`
	Provider string `json:"provider,omitempty"`
	Cached   bool   `json:"cached"`
}

// Options tune one lookup.
type Options struct {
	// External is caller-supplied provider data. It takes priority over
	// collected data and bypasses the shared cache.
	External *domain.ExternalVehicle
	// SkipProviders decodes without contacting upstream providers. The
	// result bypasses the shared cache.
	SkipProviders bool
	// Refresh ignores any cached outcome.
	Refresh bool
}

// Collector gathers external data for a VIN; nil means none.
type Collector interface {
	Collect(ctx context.Context, v vin.VIN) *domain.ExternalVehicle
}

// Cache holds outcomes by VIN.
type Cache interface {
	Get(ctx context.Context, vin string) (Outcome, bool, error)
	Set(ctx context.Context, vin string, o Outcome) error
}

// RecordStore persists check records.
type RecordStore interface {
	Save(ctx context.Context, rec store.Record) (store.Record, error)
}

// GraphWriter records the vehicle hierarchy.
type GraphWriter interface {
	SaveIdentity(ctx context.Context, id decoder.Identity, at time.Time) error
}

// Publisher announces completed lookups.
type Publisher interface {
	PublishDecoded(ctx context.Context, ev Decoded) error
}

// Decoded is the event published after every uncached lookup.
type Decoded struct {
	ID       string           `json:"id"`
	Identity decoder.Identity `json:"identity"`
	Provider string           `json:"provider,omitempty"`
	At       time.Time        `json:"at"`
}

// Service performs lookups. Every collaborator is optional.
type Service struct {
	decoder   *decoder.Decoder
	collector Collector
	cache     Cache
	store     RecordStore
	graph     GraphWriter
	publisher Publisher
	metrics   *metrics.Metrics
	log       *zap.Logger
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

func WithCollector(c Collector) Option      { return func(s *Service) { s.collector = c } }
func WithCache(c Cache) Option              { return func(s *Service) { s.cache = c } }
func WithStore(r RecordStore) Option        { return func(s *Service) { s.store = r } }
func WithGraph(g GraphWriter) Option        { return func(s *Service) { s.graph = g } }
func WithPublisher(p Publisher) Option      { return func(s *Service) { s.publisher = p } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }
func WithLogger(l *zap.Logger) Option       { return func(s *Service) { s.log = l } }
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// New creates a Service around d.
func New(d *decoder.Decoder, opts ...Option) *Service {
	s := &Service{decoder: d, log: zap.NewNop(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// shared reports whether the outcome of opts may be read from and written to
// the cache. Caller data and offline decodes are private to the request.
func (o Options) shared() bool {
	return o.External.IsEmpty() && !o.SkipProviders
}

// Lookup decodes raw. It fails only with a *domain.ValidationError.
func (s *Service) Lookup(ctx context.Context, raw string, opts Options) (Outcome, error) {
	start := s.now()
	v, err := vin.Parse(vin.Normalize(raw))
	if err != nil {
		if s.metrics != nil {
			s.metrics.Rejected.Inc()
		}
		return Outcome{}, err
	}

	if !opts.Refresh && opts.shared() {
		if o, ok := s.cached(ctx, v); ok {
			s.observe(o, start)
			return o, nil
		}
	}

	ext := s.external(ctx, v, opts)
	id, err := s.decoder.Decode(ctx, v.String(), ext)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Identity: id}
	if ext != nil {
		out.Provider = ext.Provider
	}

	s.record(ctx, &out, opts.shared())
	s.observe(out, start)
	return out, nil
}

func (s *Service) cached(ctx context.Context, v vin.VIN) (Outcome, bool) {
	if s.cache == nil {
		return Outcome{}, false
	}
	o, ok, err := s.cache.Get(ctx, v.String())
	result := "miss"
	switch {
	case err != nil:
		result = "error"
		s.log.Warn("cache read failed", zap.String("wmi", v.WMI()), zap.Error(err))
	case ok:
		result = "hit"
		o.Cached = true
	}
	if s.metrics != nil {
		s.metrics.ObserveCache(result)
	}
	return o, ok && err == nil
}

func (s *Service) external(ctx context.Context, v vin.VIN, opts Options) *domain.ExternalVehicle {
	var ext *domain.ExternalVehicle
	if !opts.External.IsEmpty() {
		cp := *opts.External
		if cp.Provider == "" {
			cp.Provider = CallerProvider
		}
		ext = &cp
	}
	if opts.SkipProviders || s.collector == nil {
		return ext
	}
	collected := s.collector.Collect(ctx, v)
	if ext == nil {
		return collected
	}
	ext.Merge(collected)
	return ext
}

// record writes out to the store first, so the event and cache carry the
// record id, then fans out to the remaining sinks. The cache is written only
// when cacheable.
func (s *Service) record(ctx context.Context, out *Outcome, cacheable bool) {
	at := s.now().UTC()
	if s.store != nil {
		rec, err := s.store.Save(ctx, store.Record{Identity: out.Identity, Providers: providers(out.Provider), CheckedAt: at})
		if err != nil {
			s.sinkFailed("store", out.VIN, err)
		} else {
			out.RecordID = rec.ID.String()
		}
	}
	if out.RecordID == "" {
		out.RecordID = uuid.NewString()
	}

	var sinks []func(context.Context) error
	if s.cache != nil && cacheable {
		sinks = append(sinks, func(ctx context.Context) error {
			return s.sink("cache", out.VIN, s.cache.Set(ctx, out.VIN, *out))
		})
	}
	if s.graph != nil {
		sinks = append(sinks, func(ctx context.Context) error {
			return s.sink("graph", out.VIN, s.graph.SaveIdentity(ctx, out.Identity, at))
		})
	}
	if s.publisher != nil {
		ev := Decoded{ID: out.RecordID, Identity: out.Identity, Provider: out.Provider, At: at}
		sinks = append(sinks, func(ctx context.Context) error {
			return s.sink("bus", out.VIN, s.publisher.PublishDecoded(ctx, ev))
		})
	}
	fn.FanOut(ctx, sinks...)
}

func (s *Service) sink(name, v string, err error) error {
	if err != nil {
		s.sinkFailed(name, v, err)
	}
	return err
}

func (s *Service) sinkFailed(name, v string, err error) {
	s.log.Error("sink write failed", zap.String("sink", name), zap.String("vin", MaskVIN(v)), zap.Error(err))
	if s.metrics != nil {
		s.metrics.ObserveSinkError(name)
	}
}

func (s *Service) observe(o Outcome, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveDecode(string(o.Confidence), string(o.Source), s.now().Sub(start))
	}
	s.log.Info("vin lookup",
		zap.String("vin", MaskVIN(o.VIN)),
		zap.String("make", o.Make),
		zap.String("model", o.Model),
		zap.String("confidence", string(o.Confidence)),
		zap.String("provider", o.Provider),
		zap.Bool("cached", o.Cached),
	)
}

func providers(p string) []string {
	if p == "" {
		return nil
	}
	return []string{p}
}
