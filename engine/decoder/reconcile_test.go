package decoder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

func fixedNow() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

func newTestReconciler() *Reconciler { return NewReconciler(nil, nil, fixedNow) }

func ptr[T any](v T) *T { return &v }

func TestReconcile(t *testing.T) {
	tests := []struct {
		name string
		vin  string
		ext  *domain.ExternalVehicle
		want Result
	}{
		{
			name: "honda pattern only",
			vin:  "1HGCM82633A123456",
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Accord", Trim: ptr("EX-L"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourcePattern},
		},
		{
			name: "nissan exact table entry",
			vin:  "JN1BEVAP0AM123456",
			want: Result{Year: ptr(2010), Make: "Nissan", Model: "Altima", Trim: ptr("S"),
				WMI: "JN1", YearPositionChar: "A", Confidence: ConfidenceHigh, Source: SourcePattern},
		},
		{
			name: "nissan unknown code is never altima",
			vin:  "JN1ZZZ00000000000",
			want: Result{Make: "Nissan", Model: "Unknown",
				WMI: "JN1", YearPositionChar: "0", Confidence: ConfidenceLow, Source: SourcePattern},
		},
		{
			name: "slash model loses to pattern",
			vin:  "1HGCM82633A123456",
			ext:  &domain.ExternalVehicle{Make: "HONDA", Model: "Civic/Accord"},
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Accord", Trim: ptr("EX-L"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourceHybrid},
		},
		{
			name: "vin year beats api year",
			vin:  "1HGCM82633A123456",
			ext:  &domain.ExternalVehicle{Make: "Honda", Year: 2015},
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Accord", Trim: ptr("EX-L"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourceHybrid},
		},
		{
			name: "manufacturer fallback",
			vin:  "1HGCM82633A123456",
			ext:  &domain.ExternalVehicle{Make: "Not Applicable", Manufacturer: "AMERICAN HONDA MOTOR CO., INC."},
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Accord", Trim: ptr("EX-L"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourceHybrid},
		},
		{
			name: "api trim wins over matcher",
			vin:  "1HGCM82633A123456",
			ext:  &domain.ExternalVehicle{Trim: " Sport "},
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Accord", Trim: ptr("Sport"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourcePattern},
		},
		{
			name: "placeholder trim falls back to matcher",
			vin:  "1HGCM82633A123456",
			ext:  &domain.ExternalVehicle{Trim: "Not Applicable"},
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Accord", Trim: ptr("EX-L"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourcePattern},
		},
		{
			name: "api model on a known wmi without table hit",
			vin:  "1HGZZ82633A123456",
			ext:  &domain.ExternalVehicle{Model: "Prelude"},
			want: Result{Year: ptr(2003), Make: "Honda", Model: "Prelude",
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceMedium, Source: SourceHybrid},
		},
		{
			name: "table of another make is discarded",
			vin:  "1HGCM82633A123456",
			ext:  &domain.ExternalVehicle{Make: "TOYOTA", Model: "Camry"},
			want: Result{Year: ptr(2003), Make: "Toyota", Model: "Camry", Trim: ptr("LE"),
				WMI: "1HG", YearPositionChar: "3", Confidence: ConfidenceHigh, Source: SourceAPI},
		},
		{
			name: "api only on unknown wmi",
			vin:  "ZZZAL000000000000",
			ext:  &domain.ExternalVehicle{Make: "ACME MOTORS", Model: "Roadster", Year: 2020},
			want: Result{Year: ptr(2020), Make: "Acme Motors", Model: "Roadster",
				WMI: "ZZZ", YearPositionChar: "0", Confidence: ConfidenceHigh, Source: SourceAPI},
		},
		{
			name: "api model without any make",
			vin:  "ZZZAL000000000000",
			ext:  &domain.ExternalVehicle{Model: "Roadster"},
			want: Result{Make: "Unknown", Model: "Roadster",
				WMI: "ZZZ", YearPositionChar: "0", Confidence: ConfidenceLow, Source: SourceAPI},
		},
		{
			name: "nothing resolves",
			vin:  "ZZZAL000000000000",
			want: Result{Make: "Unknown", Model: "Unknown",
				WMI: "ZZZ", YearPositionChar: "0", Confidence: ConfidenceLow, Source: SourcePattern},
		},
		{
			name: "placeholder model is ignored",
			vin:  "JN1ZZZ00000000000",
			ext:  &domain.ExternalVehicle{Model: "Not Applicable"},
			want: Result{Make: "Nissan", Model: "Unknown",
				WMI: "JN1", YearPositionChar: "0", Confidence: ConfidenceLow, Source: SourcePattern},
		},
		{
			name: "family heuristic is medium",
			vin:  "3N6AL000000000000",
			want: Result{Make: "Nissan", Model: "Altima", Trim: ptr("S"),
				WMI: "3N6", YearPositionChar: "0", Confidence: ConfidenceMedium, Source: SourcePattern},
		},
		{
			name: "one-character table key",
			vin:  "5YJ3E1EA1NF123456",
			want: Result{Year: ptr(2022), Make: "Tesla", Model: "Model 3",
				WMI: "5YJ", YearPositionChar: "N", Confidence: ConfidenceHigh, Source: SourcePattern},
		},
	}
	r := newTestReconciler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reconcile(vin.MustParse(tt.vin), tt.ext)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileAPIYearFallback(t *testing.T) {
	r := newTestReconciler()
	// Position 10 is '0', which is not a year code.
	v := vin.MustParse("1HGCM82630A123456")

	got := r.Reconcile(v, &domain.ExternalVehicle{Year: 2015})
	require.NotNil(t, got.Year)
	assert.Equal(t, 2015, *got.Year)

	got = r.Reconcile(v, &domain.ExternalVehicle{Year: 2027})
	require.NotNil(t, got.Year, "next model year is plausible")
	assert.Equal(t, 2027, *got.Year)

	for _, y := range []int{2028, 1975, 0} {
		got = r.Reconcile(v, &domain.ExternalVehicle{Year: y})
		assert.Nil(t, got.Year, "year %d", y)
	}
}

func TestReconcileYearNeverChangesConfidence(t *testing.T) {
	r := newTestReconciler()
	a := r.Reconcile(vin.MustParse("1HGCM82633A123456"), nil)
	b := r.Reconcile(vin.MustParse("1HGCM82630A123456"), nil)
	assert.Nil(t, b.Year)
	assert.Equal(t, a.Confidence, b.Confidence)
	assert.Equal(t, a.Source, b.Source)
}

func TestPlaceholders(t *testing.T) {
	for _, s := range []string{"", "  ", "Unknown", "NOT APPLICABLE", "n/a", "None", "null"} {
		assert.True(t, isPlaceholder(s), s)
		assert.False(t, isSpecific(s), s)
	}
	assert.False(t, isSpecific("Mustang/Focus"))
	assert.True(t, isSpecific("F-150"))
}

func TestCanonicalMake(t *testing.T) {
	assert.Equal(t, "Mercedes-Benz", canonicalMake("MERCEDES-BENZ"))
	assert.Equal(t, "Chevrolet", canonicalMake("chevy"))
	assert.Equal(t, "Acme Motors", canonicalMake(" ACME MOTORS "))
}

func TestPackageReconcile(t *testing.T) {
	got := Reconcile(vin.MustParse("JN1BEVAP0AM123456"), nil)
	assert.Equal(t, "Nissan", got.Make)
	assert.Equal(t, "Altima", got.Model)
}
