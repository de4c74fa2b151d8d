// Package domain defines the types and sentinel errors shared by the VIN
// decoding engine and the layers that feed it or consume its output.
package domain

import "strings"

// ExternalVehicle is the canonical shape of attributes supplied by an upstream
// VIN provider. Empty strings and a zero Year mean "not supplied". Provider
// payloads are normalized into this shape before they reach the decoder.
type ExternalVehicle struct {
	Make         string `json:"make,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Trim         string `json:"trim,omitempty"`
	VehicleType  string `json:"vehicle_type,omitempty"`
	BodyClass    string `json:"body_class,omitempty"`
	Provider     string `json:"provider,omitempty"`
}

// IsEmpty reports whether no attribute was supplied.
func (e *ExternalVehicle) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.Make == "" && e.Model == "" && e.Year == 0 && e.Manufacturer == "" &&
		e.Trim == "" && e.VehicleType == "" && e.BodyClass == ""
}

// Merge fills the empty fields of e with the values from o. Fields already
// set on e are kept, so callers merge in priority order.
func (e *ExternalVehicle) Merge(o *ExternalVehicle) {
	if e == nil || o == nil {
		return
	}
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}
	fill(&e.Make, o.Make)
	fill(&e.Model, o.Model)
	fill(&e.Manufacturer, o.Manufacturer)
	fill(&e.Trim, o.Trim)
	fill(&e.VehicleType, o.VehicleType)
	fill(&e.BodyClass, o.BodyClass)
	fill(&e.Provider, o.Provider)
	if e.Year == 0 {
		e.Year = o.Year
	}
}
