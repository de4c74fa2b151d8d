// Package vin validates Vehicle Identification Numbers and slices them into
// their fixed-position fields. Everything here is a pure function of the
// input; nothing logs, allocates shared state or fails after validation.
package vin

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/WessleyAI/wessley-vin/engine/domain"
)

// Length is the number of characters in a VIN.
const Length = 17

// I, O and Q are never used so they cannot be mistaken for 1 and 0.
var vinRegex = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// VIN is an uppercased, validated 17-character identifier. Only Parse and
// MustParse produce values that are safe to slice.
type VIN string

// IsValid reports whether raw is a structurally valid VIN, ignoring case.
func IsValid(raw string) bool {
	return vinRegex.MatchString(upper(raw))
}

// Normalize trims surrounding whitespace and uppercases raw. It does not
// validate.
func Normalize(raw string) string {
	return upper(strings.TrimSpace(raw))
}

// upper folds only ASCII letters. Unicode case mapping would turn runes such
// as U+017F into valid VIN letters.
func upper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Parse uppercases raw and validates it. The returned error is a
// *domain.ValidationError matching domain.ErrInvalidVIN and either
// domain.ErrInvalidLength or domain.ErrInvalidCharacter.
func Parse(raw string) (VIN, error) {
	up := upper(raw)
	if utf8.RuneCountInString(up) != Length {
		return "", domain.NewValidationError("vin", raw, "must be 17 characters", domain.ErrInvalidLength)
	}
	if !vinRegex.MatchString(up) {
		return "", domain.NewValidationError("vin", raw, "contains characters outside [0-9A-HJ-NPR-Z]", domain.ErrInvalidCharacter)
	}
	return VIN(up), nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(raw string) VIN {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v VIN) String() string { return string(v) }

// WMI is the World Manufacturer Identifier, positions 1-3.
func (v VIN) WMI() string { return string(v[0:3]) }

// VDS is the Vehicle Descriptor Section, positions 4-9.
func (v VIN) VDS() string { return string(v[3:9]) }

// VIS is the Vehicle Identifier Section, positions 10-17.
func (v VIN) VIS() string { return string(v[9:17]) }

// ModelCode is the three-character model fragment at positions 4-6.
func (v VIN) ModelCode() string { return string(v[3:6]) }

// WideModelCode is positions 4-8, for manufacturers that encode the model
// across more of the descriptor section.
func (v VIN) WideModelCode() string { return string(v[3:8]) }

// CheckDigit is position 9.
func (v VIN) CheckDigit() byte { return v[8] }

// YearChar is the model-year code at position 10.
func (v VIN) YearChar() byte { return v[9] }

// PlantCode is position 11.
func (v VIN) PlantCode() byte { return v[10] }

// Serial is the production sequence number, positions 12-17.
func (v VIN) Serial() string { return string(v[11:17]) }

// At returns the character at a 1-based VIN position, or 0 when pos is out
// of range.
func (v VIN) At(pos int) byte {
	if pos < 1 || pos > len(v) {
		return 0
	}
	return v[pos-1]
}
