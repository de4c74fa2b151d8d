package domain

import "strings"

// MinModelYear is the first year of the 17-character VIN standard.
const MinModelYear = 1980

// KnownMakes are the canonical make names the engine reports.
var KnownMakes = []string{
	"Acura", "Alfa Romeo", "Audi", "BMW", "Buick", "Cadillac", "Chevrolet", "Chrysler", "Dodge",
	"Fiat", "Ford", "Genesis", "GMC", "Honda", "Hyundai", "Infiniti", "Jaguar",
	"Jeep", "Kia", "Land Rover", "Lexus", "Lincoln", "Mazda", "Mercedes-Benz",
	"Mini", "Mitsubishi", "Nissan", "Porsche", "Ram", "Subaru", "Tesla",
	"Toyota", "Volkswagen", "Volvo",
}

// makeAliases maps lowercase spellings and nicknames to canonical make names.
var makeAliases = map[string]string{
	"chevy":     "Chevrolet",
	"merc":      "Mercedes-Benz",
	"mercedes":  "Mercedes-Benz",
	"benz":      "Mercedes-Benz",
	"vw":        "Volkswagen",
	"landrover": "Land Rover",
}

var canonicalMakes map[string]string

func init() {
	canonicalMakes = make(map[string]string, len(KnownMakes)+len(makeAliases))
	for _, m := range KnownMakes {
		canonicalMakes[strings.ToLower(m)] = m
	}
	for alias, m := range makeAliases {
		canonicalMakes[alias] = m
	}
}

// CanonicalMake maps a make spelling ("HONDA", "chevy") to its canonical name.
func CanonicalMake(s string) (string, bool) {
	m, ok := canonicalMakes[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}

// MakeFromManufacturer finds a known make inside a manufacturer string such
// as "AMERICAN HONDA MOTOR CO., INC.". The longest matching name wins so that
// "Land Rover" beats "Rover"-like substrings.
func MakeFromManufacturer(manufacturer string) (string, bool) {
	words := strings.FieldsFunc(strings.ToLower(manufacturer), func(r rune) bool {
		return r == ' ' || r == ',' || r == '.' || r == '/' || r == '(' || r == ')'
	})
	best := ""
	for i := range words {
		for j := i + 1; j <= len(words) && j <= i+2; j++ {
			phrase := strings.Join(words[i:j], " ")
			if _, ok := canonicalMakes[phrase]; ok && len(phrase) > len(best) {
				best = phrase
			}
		}
	}
	if best == "" {
		return "", false
	}
	return canonicalMakes[best], true
}

// Unknown is the presentation-boundary placeholder for a make or model that
// no source could resolve. Callers must treat it as a sentinel.
const Unknown = "Unknown"
