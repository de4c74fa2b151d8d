// Package patterns holds the per-manufacturer VIN pattern tables and resolves
// a model name from a VIN's WMI and model-code fragment.
//
// Resolution is scoped to the WMI first because manufacturers reuse model
// codes inconsistently across plants and export markets:
//
//  1. exact match of positions 4-8, 4-7 or 4-6 in the WMI's table
//  2. two-character match of positions 4-5 (a two-character key, or the
//     first three-character key sharing those characters)
//  3. one-character match of position 4
//  4. the make family's global two-character heuristics
//
// A miss never produces a model. Tables are immutable once built and safe
// for concurrent use.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// MatchKind is the precedence step that produced a model.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchPrefix
	MatchShortPrefix
	MatchGlobal
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchShortPrefix:
		return "short_prefix"
	case MatchGlobal:
		return "global"
	default:
		return "none"
	}
}

// Match is the outcome of a resolution.
type Match struct {
	Model  string
	Kind   MatchKind
	Key    string
	Family string
}

// Found reports whether a model was resolved.
func (m Match) Found() bool { return m.Kind != MatchNone && m.Model != "" }

// Family is the definition of one manufacturer family: its per-WMI tables
// and its cross-WMI heuristics.
type Family struct {
	Make   string                       `yaml:"make"`
	WMI    map[string]map[string]string `yaml:"wmi"`
	Global map[string]string            `yaml:"global"`
}

// table is a compiled model-code lookup with its keys sorted for
// deterministic prefix scans.
type table struct {
	family  string
	entries map[string]string
	keys    []string
}

func newTable(family string, entries map[string]string) *table {
	t := &table{family: family, entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" || strings.TrimSpace(v) == "" {
			continue
		}
		t.entries[k] = v
		t.keys = append(t.keys, k)
	}
	sort.Strings(t.keys)
	return t
}

// Set is an immutable collection of families plus the flat WMI to
// manufacturer table.
type Set struct {
	byWMI         map[string]*table
	globals       map[string]*table // lowercase make -> heuristics
	manufacturers map[string]string
}

// NewSet compiles families and manufacturers. A WMI claimed by two families
// is rejected, and every table WMI is registered as a manufacturer of its
// family if the flat table does not already name it.
func NewSet(families []Family, manufacturers map[string]string) (*Set, error) {
	s := &Set{
		byWMI:         make(map[string]*table),
		globals:       make(map[string]*table),
		manufacturers: make(map[string]string, len(manufacturers)),
	}
	for wmi, name := range manufacturers {
		s.manufacturers[strings.ToUpper(wmi)] = name
	}
	for _, f := range families {
		if strings.TrimSpace(f.Make) == "" {
			return nil, fmt.Errorf("patterns: family without make")
		}
		for wmi, entries := range f.WMI {
			wmi = strings.ToUpper(wmi)
			if len(wmi) != 3 {
				return nil, fmt.Errorf("patterns: %s: WMI %q is not 3 characters", f.Make, wmi)
			}
			if prev, ok := s.byWMI[wmi]; ok {
				return nil, fmt.Errorf("patterns: WMI %s claimed by %s and %s", wmi, prev.family, f.Make)
			}
			s.byWMI[wmi] = newTable(f.Make, entries)
			if _, ok := s.manufacturers[wmi]; !ok {
				s.manufacturers[wmi] = f.Make
			}
		}
		if len(f.Global) > 0 {
			s.globals[strings.ToLower(f.Make)] = newTable(f.Make, f.Global)
		}
	}
	return s, nil
}

// Manufacturer returns the make registered for a WMI.
func (s *Set) Manufacturer(wmi string) (string, bool) {
	m, ok := s.manufacturers[strings.ToUpper(wmi)]
	return m, ok
}

// Resolve finds the model for v. makeName selects the family whose global
// heuristics apply; when empty the WMI's own family is used.
func (s *Set) Resolve(makeName string, v vin.VIN) Match {
	code := v.ModelCode()
	if t, ok := s.byWMI[v.WMI()]; ok {
		for _, key := range []string{v.WideModelCode(), string(v[3:7]), code} {
			if model, ok := t.entries[key]; ok {
				return Match{Model: model, Kind: MatchExact, Key: key, Family: t.family}
			}
		}
		if model, key, ok := t.twoChar(code[:2]); ok {
			return Match{Model: model, Kind: MatchPrefix, Key: key, Family: t.family}
		}
		if model, ok := t.entries[code[:1]]; ok {
			return Match{Model: model, Kind: MatchShortPrefix, Key: code[:1], Family: t.family}
		}
	}

	if g := s.globalFor(makeName, v.WMI()); g != nil {
		if model, ok := g.entries[code[:2]]; ok {
			return Match{Model: model, Kind: MatchGlobal, Key: code[:2], Family: g.family}
		}
	}
	return Match{}
}

// ResolveModel returns the resolved model name, or domain.Unknown.
func (s *Set) ResolveModel(makeName string, v vin.VIN) string {
	if m := s.Resolve(makeName, v); m.Found() {
		return m.Model
	}
	return domain.Unknown
}

func (t *table) twoChar(prefix string) (string, string, bool) {
	if model, ok := t.entries[prefix]; ok {
		return model, prefix, true
	}
	i := sort.SearchStrings(t.keys, prefix)
	for ; i < len(t.keys) && strings.HasPrefix(t.keys[i], prefix); i++ {
		if len(t.keys[i]) == 3 {
			return t.entries[t.keys[i]], t.keys[i], true
		}
	}
	return "", "", false
}

func (s *Set) globalFor(makeName, wmi string) *table {
	if canon, ok := domain.CanonicalMake(makeName); ok {
		makeName = canon
	}
	if makeName != "" && makeName != domain.Unknown {
		return s.globals[strings.ToLower(makeName)]
	}
	if t, ok := s.byWMI[wmi]; ok {
		return s.globals[strings.ToLower(t.family)]
	}
	if m, ok := s.manufacturers[wmi]; ok {
		return s.globals[strings.ToLower(m)]
	}
	return nil
}
