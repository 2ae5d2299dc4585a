package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario 5: 2 m * 3 s = 6 m.s.
func TestMeasurementMul(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	s, err := Parse("s")
	require.NoError(t, err)

	got, err := Standard.Mul(NewMeasurement(2.0, m), NewMeasurement(3.0, s))
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.Value)
	assert.True(t, got.Unit.Equals(m.Mul(s)))
}

// scenario 6: 10 m2 / 2 m = 5 m.
func TestMeasurementDiv(t *testing.T) {
	m2, err := Parse("m2")
	require.NoError(t, err)
	m, err := Parse("m")
	require.NoError(t, err)

	got, err := Standard.Div(NewMeasurement(10.0, m2), NewMeasurement(2.0, m))
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Value)
	assert.True(t, got.Unit.Equals(m))
}

func TestMeasurementDivByZeroValue(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)

	_, err = Standard.Div(NewMeasurement(1.0, m), NewMeasurement(0.0, m))
	var target *DivideByZeroError
	assert.ErrorAs(t, err, &target)
}

// scenario 7: 1 m + 1 g fails, dimensions differ.
func TestMeasurementAddIncompatibleDimensions(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	g, err := Parse("g")
	require.NoError(t, err)

	_, err = Standard.Add(NewMeasurement(1.0, m), NewMeasurement(1.0, g))
	var target *IncompatibleUnitTypesError
	assert.ErrorAs(t, err, &target)
}

// scenario 8: kg{tree} + kg{pants} fails, annotations differ.
func TestMeasurementAddIncompatibleAnnotations(t *testing.T) {
	a, err := Standard.ParseMeasurement("1 kg{tree}")
	require.NoError(t, err)
	b, err := Standard.ParseMeasurement("1 kg{pants}")
	require.NoError(t, err)

	_, err = Standard.Add(a, b)
	var target *IncompatibleUnitTypesError
	assert.ErrorAs(t, err, &target)
}

func TestMeasurementAddSameAnnotationSucceeds(t *testing.T) {
	a, err := Standard.ParseMeasurement("1 kg{tree}")
	require.NoError(t, err)
	b, err := Standard.ParseMeasurement("2 kg{tree}")
	require.NoError(t, err)

	got, err := Standard.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Value)
}

func TestMeasurementAddConvertsUnits(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	km, err := Parse("km")
	require.NoError(t, err)

	got, err := Standard.Add(NewMeasurement(500.0, m), NewMeasurement(1.0, km))
	require.NoError(t, err)
	assert.InDelta(t, 1500.0, got.Value, 1e-6)
	assert.True(t, got.Unit.Equals(m))
}

func TestMeasurementNegAndIsZero(t *testing.T) {
	m, err := Parse("m")
	require.NoError(t, err)
	x := NewMeasurement(5.0, m)
	assert.False(t, x.IsZero())
	assert.Equal(t, -5.0, x.Neg().Value)
	assert.True(t, NewMeasurement(0, m).IsZero())
}

func TestParseMeasurementSplitsValueAndUnit(t *testing.T) {
	m, err := Standard.ParseMeasurement("42 kg.m/s2")
	require.NoError(t, err)
	assert.Equal(t, 42.0, m.Value)
	assert.Equal(t, 3, len(m.Unit.Terms))
}
