package decoder

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/WessleyAI/wessley-vin/engine/domain"
	"github.com/WessleyAI/wessley-vin/engine/patterns"
	"github.com/WessleyAI/wessley-vin/engine/specs"
	"github.com/WessleyAI/wessley-vin/engine/trim"
	"github.com/WessleyAI/wessley-vin/engine/vin"
)

func newTestDecoder(t *testing.T, opts ...Option) *Decoder {
	t.Helper()
	return New(append([]Option{WithClock(fixedNow), WithLogger(zaptest.NewLogger(t))}, opts...)...)
}

func TestDecodeHonda(t *testing.T) {
	d := newTestDecoder(t)
	id, err := d.Decode(context.Background(), "  1hgcm82633a123456 ", nil)
	require.NoError(t, err)

	assert.Equal(t, "1HGCM82633A123456", id.VIN)
	assert.Equal(t, "Honda", id.Make)
	assert.Equal(t, "Accord", id.Model)
	require.NotNil(t, id.Year)
	assert.Equal(t, 2003, *id.Year)
	assert.Equal(t, ConfidenceHigh, id.Confidence)
	assert.Equal(t, SourcePattern, id.Source)
	assert.False(t, id.CheckDigitValid)
	assert.Equal(t, specs.Specs{
		Engine: "2.4L I4", Transmission: "5-Speed Automatic", FuelType: "Gasoline", BodyStyle: "Sedan",
	}, id.Specs)
}

func TestDecodeUnknownModelGetsMakeSpecs(t *testing.T) {
	id, err := newTestDecoder(t).Decode(context.Background(), "JN1ZZZ00000000000", nil)
	require.NoError(t, err)
	assert.Equal(t, "Nissan", id.Make)
	assert.Equal(t, domain.Unknown, id.Model)
	assert.Nil(t, id.Trim)
	assert.Equal(t, "2.5L I4", id.Specs.Engine)
	assert.Equal(t, "CVT", id.Specs.Transmission)
}

func TestDecodeVehicleTypeOverridesBody(t *testing.T) {
	ext := &domain.ExternalVehicle{Make: "Honda", VehicleType: "PASSENGER CAR", BodyClass: "Pickup"}
	id, err := newTestDecoder(t).Decode(context.Background(), "1HGCM82633A123456", ext)
	require.NoError(t, err)
	assert.Equal(t, "Pickup Truck", id.Specs.BodyStyle)
}

func TestDecodeCheckDigit(t *testing.T) {
	id, err := newTestDecoder(t).Decode(context.Background(), "1HGCM82633A004352", nil)
	require.NoError(t, err)
	assert.True(t, id.CheckDigitValid)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	d := newTestDecoder(t)
	for _, raw := range []string{"", "SHORT", "1HGCM82633A12345O", "1HGCM82633A1234567"} {
		_, err := d.Decode(context.Background(), raw, nil)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, domain.ErrInvalidVIN, raw)
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve, raw)
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	d := newTestDecoder(t)
	ext := &domain.ExternalVehicle{Make: "Honda", Model: "Civic/Accord", Year: 2015, Trim: "EX"}

	first, err := d.Decode(context.Background(), "1HGCM82633A123456", ext)
	require.NoError(t, err)
	a, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := d.Decode(context.Background(), "1HGCM82633A123456", ext)
		require.NoError(t, err)
		b, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

func TestIdentityJSONShape(t *testing.T) {
	id, err := newTestDecoder(t).Decode(context.Background(), "ZZZAL000000000000", nil)
	require.NoError(t, err)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	for _, k := range []string{"vin", "year", "make", "model", "trim", "wmi", "yearPositionChar", "confidence", "source", "specs", "checkDigitValid"} {
		assert.Contains(t, m, k)
	}
	assert.Nil(t, m["year"])
	assert.Nil(t, m["trim"])
	assert.Equal(t, "Unknown", m["make"])
	assert.Equal(t, "low", m["confidence"])
	assert.Equal(t, "0", m["yearPositionChar"])
}

func TestDecoderOptions(t *testing.T) {
	set, err := patterns.NewSet([]patterns.Family{{
		Make: "Acme",
		WMI:  map[string]map[string]string{"ZZZ": {"AL": "Roadster"}},
	}}, nil)
	require.NoError(t, err)
	trims := trim.New(map[string]map[string]trim.Pattern{
		"Acme": {"Roadster": {Default: "Base"}},
	})
	eng := specs.New(map[string]specs.Profile{"Acme": {Default: specs.Specs{Engine: "Rocket"}}})

	d := newTestDecoder(t, WithPatterns(set), WithTrims(trims), WithSpecs(eng))
	id, err := d.Decode(context.Background(), "ZZZAL000000000000", nil)
	require.NoError(t, err)
	assert.Equal(t, "Acme", id.Make)
	assert.Equal(t, "Roadster", id.Model)
	require.NotNil(t, id.Trim)
	assert.Equal(t, "Base", *id.Trim)
	assert.Equal(t, "Rocket", id.Specs.Engine)

	res := d.Reconcile(vin.MustParse("ZZZAL000000000000"), nil)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
}
