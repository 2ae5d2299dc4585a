package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarOfBaseUnit(t *testing.T) {
	u, err := Parse("m")
	require.NoError(t, err)
	s, err := Standard.Scalar(u)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)
}

func TestScalarOfPrefixedUnit(t *testing.T) {
	u, err := Parse("km")
	require.NoError(t, err)
	s, err := Standard.Scalar(u)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, s, 1e-9)
}

func TestScalarOfDerivedUnit(t *testing.T) {
	u, err := Parse("N")
	require.NoError(t, err)
	s, err := Standard.Scalar(u)
	require.NoError(t, err)
	// The base mass atom is the gram, not the kilogram, so 1 N = 1 kg.m.s-2
	// reduces to 1000 g.m.s-2.
	assert.InDelta(t, 1000.0, s, 1e-9)
}

func TestScalarOfLiter(t *testing.T) {
	u, err := Parse("l")
	require.NoError(t, err)
	s, err := Standard.Scalar(u)
	require.NoError(t, err)
	// 1 liter = 1 dm3 = (0.1 m)^3 = 0.001 m3
	assert.InDelta(t, 0.001, s, 1e-12)
}

func TestScalarFailsForSpecialAtom(t *testing.T) {
	u, err := Parse("Cel")
	require.NoError(t, err)
	_, err = Standard.Scalar(u)
	assert.Error(t, err)
}

func TestScalarFailsForArbitraryAtom(t *testing.T) {
	u, err := Parse("[iU]")
	require.NoError(t, err)
	_, err = Standard.Scalar(u)
	assert.Error(t, err)
}

func TestScalarIsMultiplicativeOverUnitMultiplication(t *testing.T) {
	a, err := Parse("km")
	require.NoError(t, err)
	b, err := Parse("h")
	require.NoError(t, err)

	sa, err := Standard.Scalar(a)
	require.NoError(t, err)
	sb, err := Standard.Scalar(b)
	require.NoError(t, err)

	combined := a.Mul(b)
	sCombined, err := Standard.Scalar(combined)
	require.NoError(t, err)

	assert.InDelta(t, sa*sb, sCombined, 1e-6)
}

func TestMagnitudeToleratesSpecialAtom(t *testing.T) {
	u, err := Parse("Cel")
	require.NoError(t, err)
	m, err := Standard.Magnitude(u)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)
}
