package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario 1 & 2: meter <-> kilometer.
func TestConvertMeterToKilometer(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	km, err := Parse("km")
	require.NoError(t, err)

	got, err := Standard.Convert(1.0, m, km)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, got, 1e-12)
}

func TestConvertKilometerToMeter(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	km, err := Parse("km")
	require.NoError(t, err)

	got, err := Standard.Convert(1.0, km, m)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got, 1e-9)
}

// scenario 3: 20 Cel -> K.
func TestConvertCelsiusToKelvin(t *testing.T) {
	cel, err := Parse("Cel")
	require.NoError(t, err)
	k, err := Parse("K")
	require.NoError(t, err)

	got, err := Standard.Convert(20.0, cel, k)
	require.NoError(t, err)
	assert.InDelta(t, 293.15, got, 1e-9)
}

// scenario 4: 1 Cel -> [degF] ~= 33.8.
func TestConvertCelsiusToFahrenheit(t *testing.T) {
	cel, err := Parse("Cel")
	require.NoError(t, err)
	degF, err := Parse("[degF]")
	require.NoError(t, err)

	got, err := Standard.Convert(1.0, cel, degF)
	require.NoError(t, err)
	assert.InDelta(t, 33.8, got, 1e-9)
}

func TestConvertFahrenheitToCelsiusRoundTrips(t *testing.T) {
	cel, err := Parse("Cel")
	require.NoError(t, err)
	degF, err := Parse("[degF]")
	require.NoError(t, err)

	f, err := Standard.Convert(37.0, cel, degF)
	require.NoError(t, err)
	back, err := Standard.Convert(f, degF, cel)
	require.NoError(t, err)
	assert.InDelta(t, 37.0, back, 1e-9)
}

func TestConvertKelvinToCelsiusOrdinaryToSpecial(t *testing.T) {
	k, err := Parse("K")
	require.NoError(t, err)
	cel, err := Parse("Cel")
	require.NoError(t, err)

	got, err := Standard.Convert(293.15, k, cel)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestConvertIncompatibleDimensionsFails(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	g, err := Parse("g")
	require.NoError(t, err)

	_, err = Standard.Convert(1.0, m, g)
	var target *IncompatibleUnitTypesError
	assert.ErrorAs(t, err, &target)
}

// Conversion identity: converting a unit to itself returns the same value.
func TestConvertIdentity(t *testing.T) {
	u, err := Parse("kg.m/s2")
	require.NoError(t, err)
	got, err := Standard.Convert(7.5, u, u)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, got, 1e-9)
}

// Conversion composition: chaining conversions equals a direct conversion.
func TestConvertComposition(t *testing.T) {
	a, err := Parse("m")
	require.NoError(t, err)
	b, err := Parse("km")
	require.NoError(t, err)
	c, err := Parse("[mi_i]")
	require.NoError(t, err)

	viaB, err := Standard.Convert(5000.0, a, b)
	require.NoError(t, err)
	viaBThenC, err := Standard.Convert(viaB, b, c)
	require.NoError(t, err)

	direct, err := Standard.Convert(5000.0, a, c)
	require.NoError(t, err)

	assert.InDelta(t, direct, viaBThenC, 1e-6)
}
