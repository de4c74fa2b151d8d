// Package specs infers advisory engine, transmission, fuel and body-style
// values from a resolved make, model and year. The rules are approximate
// display defaults, not factory data, and must never be stored as
// authoritative.
package specs

import (
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/domain"
)

// Specs is the inferred attribute set. Every field is always populated.
type Specs struct {
	Engine       string `json:"engine"`
	Transmission string `json:"transmission"`
	FuelType     string `json:"fuelType"`
	BodyStyle    string `json:"bodyStyle"`
}

// Generic is used for any field no rule supplies.
var Generic = Specs{
	Engine:       "4-Cylinder Engine",
	Transmission: "Automatic",
	FuelType:     "Gasoline",
	BodyStyle:    "Sedan",
}

// Rule refines a make's defaults for models whose lowercase name contains
// Model. MinYear and MaxYear bound the model year inclusively; zero means
// unbounded. A bounded rule never matches an unknown year.
type Rule struct {
	Model   string
	MinYear int
	MaxYear int
	Specs   Specs
}

func (r Rule) matches(model string, year int) bool {
	if r.Model != "" && !strings.Contains(model, r.Model) {
		return false
	}
	if (r.MinYear != 0 || r.MaxYear != 0) && year == 0 {
		return false
	}
	if r.MinYear != 0 && year < r.MinYear {
		return false
	}
	if r.MaxYear != 0 && year > r.MaxYear {
		return false
	}
	return true
}

// Profile is one make's rule set. Rules are tried in order; the first match
// wins.
type Profile struct {
	Default Specs
	Rules   []Rule
}

// Engine holds profiles keyed by lowercase make.
type Engine struct {
	profiles map[string]Profile
}

// New builds an engine from profiles keyed by make name.
func New(profiles map[string]Profile) *Engine {
	e := &Engine{profiles: make(map[string]Profile, len(profiles))}
	for k, p := range profiles {
		e.profiles[strings.ToLower(k)] = p
	}
	return e
}

// Default returns an engine over the built-in profiles.
func Default() *Engine { return defaultEngine }

var defaultEngine = New(builtinProfiles)

// Infer returns specs for the vehicle. year is 0 when unknown. vehicleType
// is the provider's free-form vehicle type or body class; keywords in it
// override the body style.
func (e *Engine) Infer(makeName, model string, year int, vehicleType string) Specs {
	model = strings.ToLower(model)
	if model == strings.ToLower(domain.Unknown) {
		model = ""
	}

	out := Specs{}
	if p, ok := e.profiles[strings.ToLower(makeName)]; ok {
		for _, r := range p.Rules {
			if r.matches(model, year) {
				out = r.Specs
				break
			}
		}
		out = fill(out, p.Default)
	}
	out = fill(out, Generic)

	if strings.Contains(model, "hybrid") && out.FuelType == Generic.FuelType {
		out.FuelType = "Hybrid"
	}
	if body, ok := bodyFromType(vehicleType); ok {
		out.BodyStyle = body
	}
	return out
}

// Infer uses the built-in profiles.
func Infer(makeName, model string, year int, vehicleType string) Specs {
	return defaultEngine.Infer(makeName, model, year, vehicleType)
}

func fill(s, d Specs) Specs {
	if s.Engine == "" {
		s.Engine = d.Engine
	}
	if s.Transmission == "" {
		s.Transmission = d.Transmission
	}
	if s.FuelType == "" {
		s.FuelType = d.FuelType
	}
	if s.BodyStyle == "" {
		s.BodyStyle = d.BodyStyle
	}
	return s
}

// Keyword order matters: "sport utility truck" is an SUV, "truck tractor"
// is a truck.
var typeKeywords = []struct {
	keyword string
	body    string
}{
	{"motorcycle", "Motorcycle"},
	{"trailer", "Trailer"},
	{"bus", "Bus"},
	{"multipurpose", "SUV"},
	{"sport utility", "SUV"},
	{"suv", "SUV"},
	{"mpv", "SUV"},
	{"truck", "Pickup Truck"},
	{"pickup", "Pickup Truck"},
	{"van", "Van"},
	{"convertible", "Convertible"},
	{"coupe", "Coupe"},
	{"hatchback", "Hatchback"},
	{"wagon", "Wagon"},
}

func bodyFromType(vehicleType string) (string, bool) {
	t := strings.ToLower(vehicleType)
	if t == "" {
		return "", false
	}
	for _, k := range typeKeywords {
		if strings.Contains(t, k.keyword) {
			return k.body, true
		}
	}
	return "", false
}
