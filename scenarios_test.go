package ucum

// scenarios_test.go exercises the full concrete-scenarios table in one
// place, even though most are covered individually elsewhere: the value
// here is having every numbered case traceable in a single file.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario1MeterToKilometer(t *testing.T) {
	got, err := Standard.ConvertTo(mustMeasurement(t, "1.0 m"), mustUnit(t, "km"))
	require.NoError(t, err)
	assert.InDelta(t, 0.001, got.Value, 1e-12)
}

func TestScenario2KilometerToMeter(t *testing.T) {
	got, err := Standard.ConvertTo(mustMeasurement(t, "1.0 km"), mustUnit(t, "m"))
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, got.Value, 1e-9)
}

func TestScenario3CelsiusToKelvin(t *testing.T) {
	got, err := Standard.ConvertTo(mustMeasurement(t, "20.0 Cel"), mustUnit(t, "K"))
	require.NoError(t, err)
	assert.InDelta(t, 293.15, got.Value, 1e-9)
}

func TestScenario4CelsiusToFahrenheit(t *testing.T) {
	got, err := Standard.ConvertTo(mustMeasurement(t, "1.0 Cel"), mustUnit(t, "[degF]"))
	require.NoError(t, err)
	assert.InDelta(t, 33.8, got.Value, 1e-9)
}

func TestScenario5Multiply(t *testing.T) {
	got, err := Standard.Mul(mustMeasurement(t, "2.0 m"), mustMeasurement(t, "3.0 s"))
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.Value)
	assert.True(t, got.Unit.Equals(mustUnit(t, "m.s")))
}

func TestScenario6Divide(t *testing.T) {
	got, err := Standard.Div(mustMeasurement(t, "10.0 m2"), mustMeasurement(t, "2.0 m"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Value)
	assert.True(t, got.Unit.Equals(mustUnit(t, "m")))
}

func TestScenario7AddIncompatibleDimensions(t *testing.T) {
	_, err := Standard.Add(mustMeasurement(t, "1.0 m"), mustMeasurement(t, "1.0 g"))
	var target *IncompatibleUnitTypesError
	assert.ErrorAs(t, err, &target)
}

func TestScenario8AddIncompatibleAnnotations(t *testing.T) {
	a := mustMeasurement(t, "1 kg{tree}")
	b := mustMeasurement(t, "1 kg{pants}")
	_, err := Standard.Add(a, b)
	var target *IncompatibleUnitTypesError
	assert.ErrorAs(t, err, &target)
}

func TestScenario9ParseFactorPrefixExponentAnnotation(t *testing.T) {
	u := mustUnit(t, "2km-2{meow}/[acr_us].[in_i]")
	require.Len(t, u.Terms, 3)
	assert.Equal(t, uint64(2), u.Terms[0].factorValue())
	assert.Equal(t, -2, u.Terms[0].exponentValue())
	assert.Equal(t, -1, u.Terms[1].exponentValue())
	assert.Equal(t, 1, u.Terms[2].exponentValue())
}

func TestScenario10ReduceToSingleAtom(t *testing.T) {
	u := mustUnit(t, "[acr_us].[in_i]/[acr_us]")
	reduced := u.Reduce()
	require.Len(t, reduced.Terms, 1)
	assert.Equal(t, AtomID("InchInternational"), reduced.Terms[0].Atom.ID)
}

func TestScenario11DarIsDeciAre(t *testing.T) {
	u := mustUnit(t, "dar")
	require.Len(t, u.Terms, 1)
	require.NotNil(t, u.Terms[0].Prefix)
	assert.Equal(t, PrefixDeci, u.Terms[0].Prefix.ID)
	assert.Equal(t, AtomID("AreUnit"), u.Terms[0].Atom.ID)
}

func TestScenario12KPiIsNotMetric(t *testing.T) {
	_, err := Standard.Parse("k[pi]")
	assert.Error(t, err)
}

func mustUnit(t *testing.T, s string) Unit {
	t.Helper()
	u, err := Standard.Parse(s)
	require.NoError(t, err)
	return u
}

func mustMeasurement(t *testing.T, s string) Measurement {
	t.Helper()
	m, err := Standard.ParseMeasurement(s)
	require.NoError(t, err)
	return m
}
