package ucum

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAtom(t *testing.T, id AtomID) *Atom {
	t.Helper()
	a, ok := Standard.AtomByID(id)
	require.True(t, ok, "atom %q not found", id)
	return &a
}

func TestUnitMulReducesLikeTerms(t *testing.T) {
	m := mustAtom(t, "Meter")
	u := Unit{Terms: []Term{{Atom: m, Exponent: 1}}}
	got := u.Mul(u)
	require.Len(t, got.Terms, 1)
	assert.Equal(t, 2, got.Terms[0].exponentValue())
}

func TestUnitMulDropsZeroExponent(t *testing.T) {
	m := mustAtom(t, "Meter")
	u := Unit{Terms: []Term{{Atom: m, Exponent: 1}}}
	inv := Unit{Terms: []Term{{Atom: m, Exponent: -1}}}
	got := u.Mul(inv)
	assert.Empty(t, got.Terms)
	assert.True(t, got.Equals(Unity))
}

func TestUnitInvertNegatesExponents(t *testing.T) {
	s := mustAtom(t, "Second")
	u := Unit{Terms: []Term{{Atom: s, Exponent: 2}}}
	got := u.Invert()
	assert.Equal(t, -2, got.Terms[0].exponentValue())
}

func TestUnitEqualsIgnoresOrder(t *testing.T) {
	m, s := mustAtom(t, "Meter"), mustAtom(t, "Second")
	a := Unit{Terms: []Term{{Atom: m, Exponent: 1}, {Atom: s, Exponent: -1}}}
	b := Unit{Terms: []Term{{Atom: s, Exponent: -1}, {Atom: m, Exponent: 1}}}
	assert.True(t, a.Equals(b))
}

func TestUnitDimensionComposition(t *testing.T) {
	a, err := Parse("m")
	require.NoError(t, err)
	b, err := Parse("s")
	require.NoError(t, err)

	want := a.Dimension().Add(b.Dimension())
	got := a.Mul(b).Dimension()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dim(a.b) mismatch (-want +got):\n%s", diff)
	}
}

func TestUnitDimensionOfInverseIsZero(t *testing.T) {
	u, err := Parse("kg.m/s2")
	require.NoError(t, err)
	got := u.Mul(u.Invert()).Dimension()
	assert.Equal(t, ZeroDimension, got)
}

// scenario 10: "[acr_us].[in_i]/[acr_us]" reduces to "[in_i]".
func TestUnitReduceScenario10(t *testing.T) {
	u, err := Parse("[acr_us].[in_i]/[acr_us]")
	require.NoError(t, err)
	reduced := u.Reduce()
	require.Len(t, reduced.Terms, 1)
	assert.Equal(t, AtomID("InchInternational"), reduced.Terms[0].Atom.ID)
	assert.Equal(t, 1, reduced.Terms[0].exponentValue())
}

func TestUnitAsFractionSplitsBySign(t *testing.T) {
	u, err := Parse("kg.m/s2")
	require.NoError(t, err)
	frac := u.AsFraction()
	assert.Len(t, frac.Numerator.Terms, 2)
	assert.Len(t, frac.Denominator.Terms, 1)
	assert.Equal(t, 2, frac.Denominator.Terms[0].exponentValue())
}

func TestRegistryCompareIncommensurable(t *testing.T) {
	m, err := Standard.Parse("m")
	require.NoError(t, err)
	g, err := Standard.Parse("g")
	require.NoError(t, err)
	_, ok := Standard.Compare(m, g)
	assert.False(t, ok)
}

func TestRegistryCompareOrdering(t *testing.T) {
	km, err := Standard.Parse("km")
	require.NoError(t, err)
	m, err := Standard.Parse("m")
	require.NoError(t, err)
	cmpResult, ok := Standard.Compare(m, km)
	require.True(t, ok)
	assert.Equal(t, -1, cmpResult)
}

func TestUnitStringRoundTrip(t *testing.T) {
	u, err := Parse("kg.m/s2")
	require.NoError(t, err)
	reduced := u.Reduce()
	again, err := Parse(reduced.String())
	require.NoError(t, err)
	assert.True(t, reduced.Equals(again))
}
