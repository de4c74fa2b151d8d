// Package decoder turns a raw VIN and optional provider data into a
// confidence-rated vehicle identity. Decoding is deterministic for a given
// clock: the same VIN and payload always produce the same Identity.
package decoder

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/patterns"
	"github.com/WessleyAI/wessley-vin/engine/specs"
	"github.com/WessleyAI/wessley-vin/engine/trim"
	"github.com/WessleyAI/wessley-vin/engine/vin"
	"github.com/WessleyAI/wessley-vin/pkg/fn"
)

// Decoder runs validate, reconcile and enrich as traced stages.
type Decoder struct {
	patterns *patterns.Set
	trims    *trim.Matcher
	specs    *specs.Engine
	now      func() time.Time
	logger   *zap.Logger

	rec      *Reconciler
	pipeline fn.Stage[request, Identity]
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithClock fixes "now" for year disambiguation.
func WithClock(now func() time.Time) Option { return func(d *Decoder) { d.now = now } }

// WithPatterns replaces the built-in pattern tables.
func WithPatterns(s *patterns.Set) Option { return func(d *Decoder) { d.patterns = s } }

// WithTrims replaces the built-in trim table.
func WithTrims(m *trim.Matcher) Option { return func(d *Decoder) { d.trims = m } }

// WithSpecs replaces the built-in drivetrain and body rules.
func WithSpecs(e *specs.Engine) Option { return func(d *Decoder) { d.specs = e } }

// WithLogger enables debug logging of each decode.
func WithLogger(l *zap.Logger) Option { return func(d *Decoder) { d.logger = l } }

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		patterns: patterns.Default(),
		trims:    trim.Default(),
		specs:    specs.Default(),
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(d)
	}
	d.rec = NewReconciler(d.patterns, d.trims, d.now)
	d.pipeline = fn.Then(
		fn.TracedStage[request, parsed]("vin.parse", d.parse),
		fn.Then(
			fn.TracedStage[parsed, reconciled]("vin.reconcile", d.reconcile),
			fn.TracedStage[reconciled, Identity]("vin.enrich", d.enrich),
		),
	)
	return d
}

type request struct {
	raw string
	ext *domain.ExternalVehicle
}

type parsed struct {
	vin vin.VIN
	ext *domain.ExternalVehicle
}

// Decode validates raw and decodes it. The only error is a
// *domain.ValidationError for a structurally invalid VIN; surrounding
// whitespace is ignored. ext may be nil.
func (d *Decoder) Decode(ctx context.Context, raw string, ext *domain.ExternalVehicle) (Identity, error) {
	id, err := d.pipeline(ctx, request{raw: raw, ext: ext}).Unwrap()
	if err != nil {
		return Identity{}, err
	}
	d.logger.Debug("vin decoded",
		zap.String("wmi", id.WMI),
		zap.String("make", id.Make),
		zap.String("model", id.Model),
		zap.String("confidence", string(id.Confidence)),
		zap.String("source", string(id.Source)),
		zap.Bool("external", !ext.IsEmpty()),
	)
	return id, nil
}

// Reconcile exposes the reconciler for callers that already hold a parsed
// VIN.
func (d *Decoder) Reconcile(v vin.VIN, ext *domain.ExternalVehicle) Result {
	return d.rec.Reconcile(v, ext)
}

func (d *Decoder) parse(_ context.Context, req request) fn.Result[parsed] {
	v, err := vin.Parse(strings.TrimSpace(req.raw))
	if err != nil {
		return fn.Err[parsed](err)
	}
	return fn.Ok(parsed{vin: v, ext: req.ext})
}

type reconciled struct {
	parsed
	result Result
}

func (d *Decoder) reconcile(_ context.Context, p parsed) fn.Result[reconciled] {
	return fn.Ok(reconciled{parsed: p, result: d.rec.Reconcile(p.vin, p.ext)})
}

func (d *Decoder) enrich(_ context.Context, r reconciled) fn.Result[Identity] {
	year := 0
	if r.result.Year != nil {
		year = *r.result.Year
	}
	return fn.Ok(Identity{
		VIN:             r.vin.String(),
		Result:          r.result,
		Specs:           d.specs.Infer(r.result.Make, r.result.Model, year, vehicleTypeOf(r.ext)),
		CheckDigitValid: r.vin.CheckDigitValid(),
	})
}

// vehicleTypeOf joins the provider's vehicle type and body class so either
// can carry a body-style keyword.
func vehicleTypeOf(ext *domain.ExternalVehicle) string {
	if ext == nil {
		return ""
	}
	return strings.TrimSpace(ext.VehicleType + " " + ext.BodyClass)
}
