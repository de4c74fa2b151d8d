package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WessleyAI/wessley-vin/engine/domain"
)

func TestExternalFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want *domain.ExternalVehicle
	}{
		{
			name: "flat",
			in:   map[string]any{"make": "HONDA", "model": "Civic", "year": 2019.0},
			want: &domain.ExternalVehicle{Make: "HONDA", Model: "Civic", Year: 2019},
		},
		{
			name: "nested under vehicle with flat extras",
			in: map[string]any{
				"vehicle": map[string]any{"Make": "Honda", "ModelYear": "2019", "Manufacturer": "HONDA MOTOR CO., LTD"},
				"trim":    "EX",
			},
			want: &domain.ExternalVehicle{Make: "Honda", Year: 2019, Manufacturer: "HONDA MOTOR CO., LTD", Trim: "EX"},
		},
		{
			name: "nested wins over flat",
			in: map[string]any{
				"make":    "Ford",
				"vehicle": map[string]any{"make": "Honda"},
			},
			want: &domain.ExternalVehicle{Make: "Honda"},
		},
		{
			name: "aliases",
			in:   map[string]any{"makeName": "Kia", "modelName": "Soul", "series": "LX", "type": "MPV", "bodyStyle": "Wagon"},
			want: &domain.ExternalVehicle{Make: "Kia", Model: "Soul", Trim: "LX", VehicleType: "MPV", BodyClass: "Wagon"},
		},
		{
			name: "wrong types are ignored",
			in:   map[string]any{"make": []any{"x"}, "year": true, "model": map[string]any{}},
			want: nil,
		},
		{
			name: "non-integral year is ignored",
			in:   map[string]any{"make": "Honda", "year": 2019.5},
			want: &domain.ExternalVehicle{Make: "Honda"},
		},
		{
			name: "blank strings are ignored",
			in:   map[string]any{"make": "   "},
			want: nil,
		},
		{name: "empty", in: map[string]any{}, want: nil},
		{name: "nil", in: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExternalFromMap(tt.in))
		})
	}
}

func TestExternalFromJSON(t *testing.T) {
	t.Run("vpic envelope", func(t *testing.T) {
		doc := `{"Count":1,"Message":"Results returned successfully","Results":[{
			"Make":"HONDA","Model":"Accord","ModelYear":"2003",
			"Manufacturer":"AMERICAN HONDA MOTOR CO., INC.","Trim":"",
			"VehicleType":"PASSENGER CAR","BodyClass":"Sedan/Saloon"}]}`
		ext, err := ExternalFromJSON([]byte(doc))
		require.NoError(t, err)
		assert.Equal(t, &domain.ExternalVehicle{
			Make: "HONDA", Model: "Accord", Year: 2003,
			Manufacturer: "AMERICAN HONDA MOTOR CO., INC.",
			VehicleType:  "PASSENGER CAR", BodyClass: "Sedan/Saloon",
		}, ext)
	})

	t.Run("numeric year", func(t *testing.T) {
		ext, err := ExternalFromJSON([]byte(`{"vehicle":{"make":"Tesla","year":2022}}`))
		require.NoError(t, err)
		assert.Equal(t, 2022, ext.Year)
	})

	t.Run("empty object", func(t *testing.T) {
		ext, err := ExternalFromJSON([]byte(`{}`))
		require.NoError(t, err)
		assert.Nil(t, ext)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := ExternalFromJSON([]byte(`["Honda"]`))
		assert.Error(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ExternalFromJSON([]byte(`{"make":`))
		assert.Error(t, err)
	})
}
