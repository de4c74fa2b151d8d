package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name        string
		make, model string
		year        int
		vehicleType string
		want        Specs
	}{
		{
			name: "civic turbo era", make: "Honda", model: "Civic", year: 2018,
			want: Specs{"1.5L Turbo I4", "CVT", "Gasoline", "Sedan"},
		},
		{
			name: "civic before turbo", make: "Honda", model: "Civic", year: 2010,
			want: Specs{"1.8L I4", "5-Speed Automatic", "Gasoline", "Sedan"},
		},
		{
			name: "year threshold is inclusive", make: "Honda", model: "Civic", year: 2016,
			want: Specs{"1.5L Turbo I4", "CVT", "Gasoline", "Sedan"},
		},
		{
			name: "unknown year skips bounded rules", make: "Honda", model: "Civic", year: 0,
			want: Specs{"1.7L I4", "4-Speed Automatic", "Gasoline", "Sedan"},
		},
		{
			name: "make default", make: "Honda", model: "Unknown", year: 2020,
			want: Specs{"2.4L I4", "Automatic", "Gasoline", "Sedan"},
		},
		{
			name: "make is case-insensitive", make: "TESLA", model: "Model Y", year: 2022,
			want: Specs{"Dual Motor", "Single-Speed", "Electric", "SUV"},
		},
		{
			name: "electric nissan", make: "Nissan", model: "Leaf", year: 2013,
			want: Specs{"Electric Motor", "Single-Speed", "Electric", "Hatchback"},
		},
		{
			name: "f-150 ecoboost", make: "Ford", model: "F-150", year: 2021,
			want: Specs{"3.5L EcoBoost V6", "10-Speed Automatic", "Gasoline", "Pickup Truck"},
		},
		{
			name: "unknown make is generic", make: "Acme", model: "Roadster", year: 2020,
			want: Generic,
		},
		{
			name: "empty input is generic", want: Generic,
		},
		{
			name: "hybrid keyword", make: "Toyota", model: "Highlander Hybrid", year: 2021,
			want: Specs{"3.5L V6", "8-Speed Automatic", "Hybrid", "SUV"},
		},
		{
			name: "explicit fuel beats hybrid keyword", make: "Toyota", model: "Camry Hybrid", year: 2021,
			want: Specs{"2.5L I4 Hybrid", "eCVT", "Hybrid", "Sedan"},
		},
		{
			name: "truck type overrides body", make: "Honda", model: "Accord", year: 2019, vehicleType: "TRUCK",
			want: Specs{"1.5L Turbo I4", "CVT", "Gasoline", "Pickup Truck"},
		},
		{
			name: "mpv type is suv", make: "Acme", vehicleType: "MULTIPURPOSE PASSENGER VEHICLE (MPV)",
			want: Specs{"4-Cylinder Engine", "Automatic", "Gasoline", "SUV"},
		},
		{
			name: "unrecognized type keeps body", make: "Honda", model: "Accord", year: 2019, vehicleType: "PASSENGER CAR",
			want: Specs{"1.5L Turbo I4", "CVT", "Gasoline", "Sedan"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.make, tt.model, tt.year, tt.vehicleType))
		})
	}
}

func TestInferAlwaysComplete(t *testing.T) {
	for mk, p := range builtinProfiles {
		models := []string{"", "Unknown"}
		for _, r := range p.Rules {
			models = append(models, r.Model)
		}
		for _, model := range models {
			for _, year := range []int{0, 1985, 2005, 2016, 2026} {
				s := Infer(mk, model, year, "")
				assert.NotEmpty(t, s.Engine, "%s %s %d", mk, model, year)
				assert.NotEmpty(t, s.Transmission, "%s %s %d", mk, model, year)
				assert.NotEmpty(t, s.FuelType, "%s %s %d", mk, model, year)
				assert.NotEmpty(t, s.BodyStyle, "%s %s %d", mk, model, year)
			}
		}
	}
}

func TestRuleBounds(t *testing.T) {
	r := Rule{Model: "x", MinYear: 2000, MaxYear: 2005}
	assert.True(t, r.matches("x", 2000))
	assert.True(t, r.matches("x", 2005))
	assert.False(t, r.matches("x", 1999))
	assert.False(t, r.matches("x", 2006))
	assert.False(t, r.matches("x", 0))
	assert.False(t, r.matches("y", 2003))
	assert.True(t, Rule{}.matches("anything", 0))
}

func TestCustomEngine(t *testing.T) {
	e := New(map[string]Profile{
		"acme": {
			Default: Specs{Engine: "Steam"},
			Rules:   []Rule{{Model: "rocket", Specs: Specs{FuelType: "Kerosene"}}},
		},
	})
	assert.Equal(t, Specs{"Steam", "Automatic", "Kerosene", "Sedan"}, e.Infer("Acme", "Rocket Skates", 1950, ""))
	assert.Equal(t, Generic, e.Infer("Honda", "Civic", 2018, ""))
}
