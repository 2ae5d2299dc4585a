package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleAtom(t *testing.T) {
	u, err := Parse("m")
	require.NoError(t, err)
	require.Len(t, u.Terms, 1)
	assert.Equal(t, AtomID("Meter"), u.Terms[0].Atom.ID)
	assert.Nil(t, u.Terms[0].Prefix)
	assert.Equal(t, 1, u.Terms[0].exponentValue())
}

func TestParsePrefixedAtom(t *testing.T) {
	u, err := Parse("km")
	require.NoError(t, err)
	require.Len(t, u.Terms, 1)
	assert.Equal(t, AtomID("Meter"), u.Terms[0].Atom.ID)
	require.NotNil(t, u.Terms[0].Prefix)
	assert.Equal(t, PrefixKilo, u.Terms[0].Prefix.ID)
}

func TestParseEmptyStringFails(t *testing.T) {
	_, err := Parse("")
	var target *UnknownUnitStringError
	assert.ErrorAs(t, err, &target)
}

// scenario 11: "dar" must split as deci+are, not deka+r.
func TestParseDarPrefersDeciAre(t *testing.T) {
	u, err := Parse("dar")
	require.NoError(t, err)
	require.Len(t, u.Terms, 1)
	require.NotNil(t, u.Terms[0].Prefix)
	assert.Equal(t, PrefixDeci, u.Terms[0].Prefix.ID)
	assert.Equal(t, AtomID("AreUnit"), u.Terms[0].Atom.ID)
}

// scenario 12: "[pi]" is not metric, so "k[pi]" has no valid split.
func TestParseKPiFails(t *testing.T) {
	_, err := Parse("k[pi]")
	assert.Error(t, err)
}

func TestParseDivisionIsLeftAssociative(t *testing.T) {
	u, err := Parse("m/s/s")
	require.NoError(t, err)
	require.Len(t, u.Terms, 3)
	assert.Equal(t, 1, u.Terms[0].exponentValue())
	assert.Equal(t, -1, u.Terms[1].exponentValue())
	assert.Equal(t, -1, u.Terms[2].exponentValue())
}

func TestParseLeadingSlashInverts(t *testing.T) {
	u, err := Parse("/s")
	require.NoError(t, err)
	require.Len(t, u.Terms, 1)
	assert.Equal(t, -1, u.Terms[0].exponentValue())
}

func TestParseNestedGroup(t *testing.T) {
	u, err := Parse("kg/(m.s2)")
	require.NoError(t, err)
	require.Len(t, u.Terms, 3)
	var gotKg, gotM, gotS bool
	for _, term := range u.Terms {
		switch term.Atom.ID {
		case "Gram":
			gotKg = true
			assert.Equal(t, 1, term.exponentValue())
		case "Meter":
			gotM = true
			assert.Equal(t, -1, term.exponentValue())
		case "Second":
			gotS = true
			assert.Equal(t, -2, term.exponentValue())
		}
	}
	assert.True(t, gotKg && gotM && gotS)
}

func TestParseAnnotation(t *testing.T) {
	u, err := Parse("kg{tree}")
	require.NoError(t, err)
	require.Len(t, u.Terms, 1)
	assert.Equal(t, "tree", u.Terms[0].Annotation)
}

func TestParseFactor(t *testing.T) {
	u, err := Parse("2.m")
	require.NoError(t, err)
	require.Len(t, u.Terms, 2)
	assert.Equal(t, uint64(2), u.Terms[0].factorValue())
	assert.Nil(t, u.Terms[0].Atom)
}

// scenario 9: "2km-2{meow}/[acr_us].[in_i]" parses to 3 terms with
// exponents [-2, -1, +1] and a factor of 2 fused onto the first.
func TestParseScenario9(t *testing.T) {
	u, err := Parse("2km-2{meow}/[acr_us].[in_i]")
	require.NoError(t, err)
	require.Len(t, u.Terms, 3)

	first := u.Terms[0]
	assert.Equal(t, uint64(2), first.factorValue())
	require.NotNil(t, first.Prefix)
	assert.Equal(t, PrefixKilo, first.Prefix.ID)
	assert.Equal(t, AtomID("Meter"), first.Atom.ID)
	assert.Equal(t, -2, first.exponentValue())
	assert.Equal(t, "meow", first.Annotation)

	assert.Equal(t, AtomID("AcreUS"), u.Terms[1].Atom.ID)
	assert.Equal(t, -1, u.Terms[1].exponentValue())

	assert.Equal(t, AtomID("InchInternational"), u.Terms[2].Atom.ID)
	assert.Equal(t, 1, u.Terms[2].exponentValue())
}
