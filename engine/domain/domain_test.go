package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalMake(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{"HONDA", "Honda", true},
		{" nissan ", "Nissan", true},
		{"chevy", "Chevrolet", true},
		{"vw", "Volkswagen", true},
		{"mercedes-benz", "Mercedes-Benz", true},
		{"Lada", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := CanonicalMake(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeFromManufacturer(t *testing.T) {
	got, ok := MakeFromManufacturer("AMERICAN HONDA MOTOR CO., INC.")
	require.True(t, ok)
	assert.Equal(t, "Honda", got)

	got, ok = MakeFromManufacturer("JAGUAR LAND ROVER LIMITED")
	require.True(t, ok)
	assert.Equal(t, "Land Rover", got)

	_, ok = MakeFromManufacturer("ACME COACHWORKS")
	assert.False(t, ok)
}

func TestExternalVehicleMerge(t *testing.T) {
	e := &ExternalVehicle{Make: "Honda", Provider: "nhtsa"}
	e.Merge(&ExternalVehicle{Make: "Acura", Model: "Accord", Year: 2003, Trim: "EX", Provider: "commercial"})

	assert.Equal(t, "Honda", e.Make)
	assert.Equal(t, "Accord", e.Model)
	assert.Equal(t, 2003, e.Year)
	assert.Equal(t, "EX", e.Trim)
	assert.Equal(t, "nhtsa", e.Provider)
}

func TestExternalVehicleIsEmpty(t *testing.T) {
	var nilExt *ExternalVehicle
	assert.True(t, nilExt.IsEmpty())
	assert.True(t, (&ExternalVehicle{Provider: "nhtsa"}).IsEmpty())
	assert.False(t, (&ExternalVehicle{Year: 2010}).IsEmpty())
}

func TestValidationErrorUnwrap(t *testing.T) {
	ve := NewValidationError("vin", "ABC", "must be 17 characters", ErrInvalidVIN)
	assert.True(t, errors.Is(ve, ErrInvalidVIN))
	assert.Contains(t, ve.Error(), "must be 17 characters")
	assert.Contains(t, ve.Error(), `"ABC"`)

	var target *ValidationError
	require.True(t, errors.As(ve, &target))
	assert.Equal(t, "vin", target.Field)
}
