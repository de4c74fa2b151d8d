// Package trim resolves a trim level from a single VIN position for the
// make and model pairs it knows. It is the last resort after provider data.
package trim

import (
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// Code is a trim reachable from one character. Since, when set, is the first
// model year the code means this trim.
type Code struct {
	Name  string
	Since int
}

// Pattern is the trim table for one make and model.
type Pattern struct {
	// Position is the 1-based VIN position to read. Zero means 8.
	Position int
	Codes    map[byte]Code
	Default  string
}

func (p Pattern) position() int {
	if p.Position == 0 {
		return 8
	}
	return p.Position
}

// Matcher looks up trims by make then model, both case-insensitive.
type Matcher struct {
	patterns map[string]map[string]Pattern
}

// New builds a matcher from patterns keyed make then model.
func New(patterns map[string]map[string]Pattern) *Matcher {
	m := &Matcher{patterns: make(map[string]map[string]Pattern, len(patterns))}
	for mk, models := range patterns {
		inner := make(map[string]Pattern, len(models))
		for model, p := range models {
			inner[strings.ToLower(model)] = p
		}
		m.patterns[strings.ToLower(mk)] = inner
	}
	return m
}

// Default returns the built-in matcher.
func Default() *Matcher { return defaultMatcher }

var defaultMatcher = New(builtinPatterns)

// Match returns the trim for v. year is 0 when unknown, in which case codes
// with a Since bound are skipped. ok is false only when the make and model
// pair is not in the table.
func (m *Matcher) Match(v vin.VIN, makeName, model string, year int) (string, bool) {
	models, ok := m.patterns[strings.ToLower(makeName)]
	if !ok {
		return "", false
	}
	p, ok := models[strings.ToLower(model)]
	if !ok {
		return "", false
	}
	if c, ok := p.Codes[v.At(p.position())]; ok && c.Name != "" {
		if c.Since == 0 || (year != 0 && year >= c.Since) {
			return c.Name, true
		}
	}
	return p.Default, p.Default != ""
}

// Match uses the built-in table.
func Match(v vin.VIN, makeName, model string, year int) (string, bool) {
	return defaultMatcher.Match(v, makeName, model, year)
}
