package decoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/WessleyAI/wessley-vin/engine/domain"
)

// Field aliases, matched case-insensitively.
var (
	makeKeys         = []string{"make", "makeName"}
	modelKeys        = []string{"model", "modelName"}
	yearKeys         = []string{"year", "modelYear"}
	manufacturerKeys = []string{"manufacturer", "manufacturerName"}
	trimKeys         = []string{"trim", "series"}
	vehicleTypeKeys  = []string{"vehicleType", "type"}
	bodyClassKeys    = []string{"bodyClass", "bodyStyle"}
)

// ExternalFromMap reads a provider payload that is either flat or nests the
// vehicle under a "vehicle" key. Fields of the wrong type are ignored. It
// returns nil when nothing usable is present.
func ExternalFromMap(m map[string]any) *domain.ExternalVehicle {
	if m == nil {
		return nil
	}
	ext := fromFields(m)
	if nested, ok := lookup(m, "vehicle").(map[string]any); ok {
		inner := fromFields(nested)
		inner.Merge(ext)
		ext = inner
	}
	if ext.IsEmpty() {
		return nil
	}
	return ext
}

// ExternalFromJSON decodes a provider payload. Besides the shapes accepted by
// ExternalFromMap it unwraps a "Results" array, taking the first element.
// Only syntactically invalid JSON or a non-object document is an error.
func ExternalFromJSON(data []byte) (*domain.ExternalVehicle, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode external payload: %w", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode external payload: expected object, got %T", doc)
	}
	if results, ok := lookup(m, "results").([]any); ok && len(results) > 0 {
		if first, ok := results[0].(map[string]any); ok {
			m = first
		}
	}
	return ExternalFromMap(m), nil
}

func fromFields(m map[string]any) *domain.ExternalVehicle {
	return &domain.ExternalVehicle{
		Make:         str(m, makeKeys...),
		Model:        str(m, modelKeys...),
		Year:         year(m, yearKeys...),
		Manufacturer: str(m, manufacturerKeys...),
		Trim:         str(m, trimKeys...),
		VehicleType:  str(m, vehicleTypeKeys...),
		BodyClass:    str(m, bodyClassKeys...),
	}
}

// lookup finds key exactly, then case-insensitively in sorted key order.
func lookup(m map[string]any, key string) any {
	if v, ok := m[key]; ok {
		return v
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, key) {
			return m[k]
		}
	}
	return nil
}

func str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := lookup(m, k).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func year(m map[string]any, keys ...string) int {
	for _, k := range keys {
		switch v := lookup(m, k).(type) {
		case json.Number:
			if n, err := v.Int64(); err == nil {
				return int(n)
			}
		case float64:
			if v == math.Trunc(v) {
				return int(v)
			}
		case int:
			return v
		case int64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return n
			}
		}
	}
	return 0
}
