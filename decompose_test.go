package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeNewtonToBaseUnits(t *testing.T) {
	n, err := Parse("N")
	require.NoError(t, err)
	base, scalar, err := Standard.Decompose(n)
	require.NoError(t, err)
	// The base mass atom is the gram, not the kilogram.
	assert.Equal(t, 1000.0, scalar)

	byAtom := make(map[AtomID]int)
	for _, term := range base.Terms {
		byAtom[term.Atom.ID] = term.exponentValue()
	}
	assert.Equal(t, 1, byAtom["Gram"])
	assert.Equal(t, 1, byAtom["Meter"])
	assert.Equal(t, -2, byAtom["Second"])
}

func TestDecomposeLiterToCubicMeters(t *testing.T) {
	l, err := Parse("l")
	require.NoError(t, err)
	base, scalar, err := Standard.Decompose(l)
	require.NoError(t, err)
	require.Len(t, base.Terms, 1)
	assert.Equal(t, AtomID("Meter"), base.Terms[0].Atom.ID)
	assert.Equal(t, 3, base.Terms[0].exponentValue())
	assert.InDelta(t, 0.001, scalar, 1e-12)
}

func TestDecomposeFailsForSpecialAtom(t *testing.T) {
	cel, err := Parse("Cel")
	require.NoError(t, err)
	_, _, err = Standard.Decompose(cel)
	assert.Error(t, err)
}
