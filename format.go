package ucum

import (
	"fmt"
	"strings"
)

// FormatOptions configures how a Unit renders as text, generalizing the
// teacher's formatter.go from a single multiplication/division symbol pair
// to the UCUM surface grammar's own separators while keeping the same
// knob set (SPEC_FULL.md §2.3).
type FormatOptions struct {
	// MultSymbol joins terms of equal sign (default ".", UCUM's own
	// separator; a caller wanting human-readable output might set "*").
	MultSymbol string
	// DivSymbol introduces the denominator (default "/").
	DivSymbol string
	// ExponentFmt formats a non-unit exponent (default "%d", UCUM's bare
	// signed integer; "^%d" reads more naturally outside UCUM contexts).
	ExponentFmt string
	// UseParens wraps the denominator in parentheses when it has more than
	// one term.
	UseParens bool
	// Simplify reduces the unit (merging like terms) before rendering.
	Simplify bool
	// CollapseSymbols substitutes a known derived-unit symbol (e.g. "N")
	// for its expansion when the unit's reduced dimension matches exactly.
	CollapseSymbols bool
	// KnownSymbols maps a dimension vector to the preferred symbol printed
	// for a unit with exactly that dimension. Only the dimension is matched;
	// the unit's scalar is not compared.
	KnownSymbols map[Dimension]string
}

// DefaultFormatOptions returns UCUM's own canonical surface syntax: '.' and
// '/' separators, bare signed exponents, no collapsing.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MultSymbol:      ".",
		DivSymbol:       "/",
		ExponentFmt:     "%d",
		UseParens:       true,
		Simplify:        false,
		CollapseSymbols: false,
		KnownSymbols:    nil,
	}
}

// Formatter renders a Unit to text under a fixed set of options.
type Formatter interface {
	Format(Unit) (string, error)
}

// DefaultFormatter is the Formatter every Registry exposes via Format.
type DefaultFormatter struct {
	Options FormatOptions
}

// NewDefaultFormatter builds a DefaultFormatter from opts, defaulting any
// unset separator fields to DefaultFormatOptions' values.
func NewDefaultFormatter(opts FormatOptions) *DefaultFormatter {
	if opts.MultSymbol == "" {
		opts.MultSymbol = "."
	}
	if opts.DivSymbol == "" {
		opts.DivSymbol = "/"
	}
	if opts.ExponentFmt == "" {
		opts.ExponentFmt = "%d"
	}
	return &DefaultFormatter{Options: opts}
}

// Format renders u per f.Options.
func (f *DefaultFormatter) Format(u Unit) (string, error) {
	if f.Options.CollapseSymbols && len(f.Options.KnownSymbols) > 0 {
		if sym, ok := f.Options.KnownSymbols[u.Dimension()]; ok {
			return sym, nil
		}
	}

	work := u
	if f.Options.Simplify {
		work = work.Reduce()
	}

	frac := work.AsFraction()
	num := f.formatSide(frac.Numerator.Terms)
	if frac.Denominator.Equals(Unity) {
		return num, nil
	}

	den := f.formatSide(frac.Denominator.Terms)
	if f.Options.UseParens && len(frac.Denominator.Terms) > 1 {
		den = "(" + den + ")"
	}
	return num + f.Options.DivSymbol + den, nil
}

func (f *DefaultFormatter) formatSide(terms []Term) string {
	if len(terms) == 0 {
		return "1"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = f.formatTerm(t)
	}
	return strings.Join(parts, f.Options.MultSymbol)
}

func (f *DefaultFormatter) formatTerm(t Term) string {
	s := ""
	if t.Factor != 0 && t.Factor != 1 {
		s += fmt.Sprintf("%d", t.Factor)
	}
	if t.Prefix != nil {
		s += t.Prefix.PrimaryCode
	}
	if t.Atom != nil {
		s += t.Atom.PrimaryCode
	}
	if s == "" {
		s = "1"
	}
	if exp := t.exponentValue(); exp != 1 {
		s += fmt.Sprintf(f.Options.ExponentFmt, exp)
	}
	if t.Annotation != "" {
		s += "{" + t.Annotation + "}"
	}
	return s
}

// Format renders u using opts (unset separator fields fall back to
// DefaultFormatOptions' values, as in NewDefaultFormatter). Most
// callers needing UCUM's own syntax back should use Unit.String instead;
// Format exists for callers wanting a customized rendering (SPEC_FULL.md
// §2.3).
func (r *Registry) Format(u Unit, opts FormatOptions) (string, error) {
	return NewDefaultFormatter(opts).Format(u)
}
