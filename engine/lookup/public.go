package lookup

import (
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/vin"
)

// serialLen is the number of trailing VIN characters hidden from public
// responses.
const serialLen = 6

// MaskVIN replaces the serial (last six characters) with '*'. The WMI, the
// descriptor section, the year code and the plant code stay readable.
func MaskVIN(s string) string {
	v, err := vin.Parse(s)
	if err != nil {
		if len(s) <= serialLen {
			return strings.Repeat("*", len(s))
		}
		return s[:len(s)-serialLen] + strings.Repeat("*", serialLen)
	}
	return v.WMI() + v.VDS() + v.VIS()[:2] + strings.Repeat("*", len(v.Serial()))
}

// PublicView returns o with the VIN serial masked and the record id dropped.
func PublicView(o Outcome) Outcome {
	o.VIN = MaskVIN(o.VIN)
	o.RecordID = ""
	return o
}
