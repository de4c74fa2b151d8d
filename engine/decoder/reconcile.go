package decoder

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/patterns"
	"github.com/WessleyAI/wessley-vin/engine/trim"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// placeholders are provider values that mean "no data".
var placeholders = map[string]bool{
	"":               true,
	"unknown":        true,
	"not applicable": true,
	"n/a":            true,
	"na":             true,
	"none":           true,
	"null":           true,
	"other":          true,
	"-":              true,
	"0":              true,
}

func isPlaceholder(s string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(s))]
}

// isSpecific reports whether a provider value names one concrete thing.
// Slash-separated alternatives such as "Mustang/Focus" do not.
func isSpecific(s string) bool {
	return !isPlaceholder(s) && !strings.Contains(s, "/")
}

var titleCase = cases.Title(language.English)

// canonicalMake maps a provider make to its reported spelling. Unrecognized
// makes are title-cased.
func canonicalMake(s string) string {
	s = strings.TrimSpace(s)
	if m, ok := domain.CanonicalMake(s); ok {
		return m
	}
	return titleCase.String(strings.ToLower(s))
}

// Reconciler merges pattern resolution with provider data. It is immutable
// and safe for concurrent use.
type Reconciler struct {
	patterns *patterns.Set
	trims    *trim.Matcher
	years    vin.YearDecoder
	now      func() time.Time
}

// NewReconciler builds a reconciler. Nil arguments select the built-in
// tables and the wall clock.
func NewReconciler(p *patterns.Set, t *trim.Matcher, now func() time.Time) *Reconciler {
	if p == nil {
		p = patterns.Default()
	}
	if t == nil {
		t = trim.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Reconciler{patterns: p, trims: t, years: vin.NewYearDecoder(now), now: now}
}

// Reconcile never fails: every miss degrades to Unknown or nil fields and a
// lower confidence. ext may be nil.
func (r *Reconciler) Reconcile(v vin.VIN, ext *domain.ExternalVehicle) Result {
	res := Result{
		WMI:              v.WMI(),
		YearPositionChar: string(v.YearChar()),
	}

	apiMake := r.apiMake(ext)
	mk := apiMake
	if mk == "" {
		mk, _ = r.patterns.Manufacturer(v.WMI())
	}

	// A WMI table belongs to one make; its hit is discarded when the
	// provider says the vehicle is another make.
	match := r.patterns.Resolve(mk, v)
	if match.Found() && apiMake != "" && !strings.EqualFold(match.Family, apiMake) {
		match = patterns.Match{}
	}

	model, apiModel := "", false
	switch {
	case match.Found():
		model = match.Model
	case ext != nil && isSpecific(ext.Model):
		model, apiModel = strings.TrimSpace(ext.Model), true
	}

	year, ok := r.years.Decode(v.YearChar())
	if !ok && ext != nil && r.plausibleYear(ext.Year) {
		year, ok = ext.Year, true
	}
	if ok {
		res.Year = &year
	}

	res.Confidence, res.Source = grade(apiMake != "", mk != "", match.Kind, apiModel)

	if ext != nil && !isPlaceholder(ext.Trim) {
		t := strings.TrimSpace(ext.Trim)
		res.Trim = &t
	} else if model != "" {
		if t, ok := r.trims.Match(v, mk, model, year); ok {
			res.Trim = &t
		}
	}

	res.Make, res.Model = orUnknown(mk), orUnknown(model)
	return res
}

// apiMake returns the provider make, falling back to a make named inside the
// manufacturer string.
func (r *Reconciler) apiMake(ext *domain.ExternalVehicle) string {
	if ext == nil {
		return ""
	}
	if isSpecific(ext.Make) {
		return canonicalMake(ext.Make)
	}
	if !isPlaceholder(ext.Manufacturer) {
		if m, ok := domain.MakeFromManufacturer(ext.Manufacturer); ok {
			return m
		}
	}
	return ""
}

func (r *Reconciler) plausibleYear(y int) bool {
	return y >= domain.MinModelYear && y <= r.now().Year()+1
}

// grade assigns confidence and provenance. Year and trim never affect it.
func grade(apiMake, anyMake bool, kind patterns.MatchKind, apiModel bool) (Confidence, Source) {
	tableHit := kind == patterns.MatchExact || kind == patterns.MatchPrefix || kind == patterns.MatchShortPrefix

	switch {
	case apiMake && kind != patterns.MatchNone:
		return ConfidenceHigh, SourceHybrid
	case apiMake:
		return ConfidenceHigh, SourceAPI
	case anyMake && tableHit:
		return ConfidenceHigh, SourcePattern
	case anyMake && kind == patterns.MatchGlobal:
		return ConfidenceMedium, SourcePattern
	case anyMake && apiModel:
		return ConfidenceMedium, SourceHybrid
	case apiModel:
		return ConfidenceLow, SourceAPI
	default:
		return ConfidenceLow, SourcePattern
	}
}

func orUnknown(s string) string {
	if s == "" {
		return domain.Unknown
	}
	return s
}

var defaultReconciler = NewReconciler(nil, nil, nil)

// Reconcile uses the built-in tables and the wall clock.
func Reconcile(v vin.VIN, ext *domain.ExternalVehicle) Result {
	return defaultReconciler.Reconcile(v, ext)
}
