package ucum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDefaultMatchesString(t *testing.T) {
	u, err := Parse("kg.m/s2")
	require.NoError(t, err)
	got, err := Standard.Format(u, DefaultFormatOptions())
	require.NoError(t, err)
	assert.Equal(t, u.String(), got)
}

func TestFormatCustomSymbols(t *testing.T) {
	u, err := Parse("m/s2")
	require.NoError(t, err)
	opts := DefaultFormatOptions()
	opts.MultSymbol = "*"
	opts.DivSymbol = " per "
	opts.ExponentFmt = "^%d"
	got, err := Standard.Format(u, opts)
	require.NoError(t, err)
	assert.Equal(t, "m per s^2", got)
}

func TestFormatParenthesizesMultiTermDenominator(t *testing.T) {
	u, err := Parse("kg/(m.s2)")
	require.NoError(t, err)
	got, err := Standard.Format(u, DefaultFormatOptions())
	require.NoError(t, err)
	assert.Contains(t, got, "(")
}

func TestFormatCollapsesKnownSymbol(t *testing.T) {
	n, err := Parse("N")
	require.NoError(t, err)
	opts := DefaultFormatOptions()
	opts.CollapseSymbols = true
	opts.KnownSymbols = map[Dimension]string{n.Dimension(): "N"}

	kgms2, err := Parse("kg.m/s2")
	require.NoError(t, err)
	got, err := Standard.Format(kgms2, opts)
	require.NoError(t, err)
	assert.Equal(t, "N", got)
}
