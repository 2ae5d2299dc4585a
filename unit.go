package ucum

import (
	"strconv"
	"strings"
)

// Unit is an ordered sequence of Terms, interpreted as their product
// (spec.md §3). Order carries no algebraic meaning but is preserved for
// round-trip printing of the original parse.
type Unit struct {
	Terms []Term
}

// UnitFromTerms constructs a Unit from an explicit term list, without
// reducing it. Most callers want Parse or a registry's parsed result
// instead; this is for building units programmatically (e.g. tests).
func UnitFromTerms(terms ...Term) Unit {
	return Unit{Terms: append([]Term(nil), terms...)}
}

// Unity is the empty unit, equal to the numeral 1.
var Unity = Unit{}

// Mul concatenates two unit term lists and reduces the result (spec.md
// §4.2).
func (u Unit) Mul(o Unit) Unit {
	terms := make([]Term, 0, len(u.Terms)+len(o.Terms))
	terms = append(terms, u.Terms...)
	terms = append(terms, o.Terms...)
	return Unit{Terms: terms}.Reduce()
}

// Div multiplies u by the inverse of o (spec.md §4.2).
func (u Unit) Div(o Unit) Unit {
	return u.Mul(o.Invert())
}

// Invert negates every term's exponent.
func (u Unit) Invert() Unit {
	terms := make([]Term, len(u.Terms))
	for i, t := range u.Terms {
		terms[i] = t.negated()
	}
	return Unit{Terms: terms}
}

// Pow raises every term's exponent to the given power. exp must be
// non-zero; Pow(0) is not meaningful for a unit (there is no "unit to the
// zeroth power" in UCUM — callers should use Unity directly).
func (u Unit) Pow(exp int) Unit {
	terms := make([]Term, len(u.Terms))
	for i, t := range u.Terms {
		terms[i] = t.withExponent(t.exponentValue() * exp)
	}
	return Unit{Terms: terms}.Reduce()
}

// Reduce combines terms whose (factor, prefix, atom, annotation) tuples
// match by summing their exponents, drops any term whose summed exponent
// is 0, drops unity terms, and sorts the remainder by primary code for a
// stable canonical form (spec.md §4.2). Reduction is not symbolic over
// definitions: it merges textually identical atoms only.
func (u Unit) Reduce() Unit {
	type bucket struct {
		key   mergeKey
		term  Term
		exp   int
		order int
	}
	buckets := make([]*bucket, 0, len(u.Terms))
	index := make(map[mergeKey]*bucket, len(u.Terms))

	for i, t := range u.Terms {
		k := t.mergeKey()
		if b, ok := index[k]; ok {
			b.exp += t.exponentValue()
			continue
		}
		b := &bucket{key: k, term: t, exp: t.exponentValue(), order: i}
		index[k] = b
		buckets = append(buckets, b)
	}

	out := make([]Term, 0, len(buckets))
	for _, b := range buckets {
		if b.exp == 0 {
			continue
		}
		t := b.term.withExponent(b.exp)
		if t.IsUnity() {
			continue
		}
		out = append(out, t)
	}
	sortTermsByPrimaryCode(out)
	return Unit{Terms: out}
}

func sortTermsByPrimaryCode(terms []Term) {
	// Ties on the atom code (km vs m, m{a} vs m{b}) are broken by prefix,
	// factor and annotation so that the order never depends on the input.
	code := func(t Term) string {
		atom, prefix := "", ""
		if t.Atom != nil {
			atom = t.Atom.PrimaryCode
		}
		if t.Prefix != nil {
			prefix = t.Prefix.PrimaryCode
		}
		return strings.Join([]string{atom, prefix, strconv.FormatUint(t.factorValue(), 10), t.Annotation}, "\x00")
	}
	for i := 1; i < len(terms); i++ {
		for j := i; j > 0 && code(terms[j]) < code(terms[j-1]); j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
}

// FieldEqual reports whether u and o have pairwise-equal term sequences in
// every field (spec.md §4.2). Order matters for FieldEqual; it does not for
// Equals.
func (u Unit) FieldEqual(o Unit) bool {
	if len(u.Terms) != len(o.Terms) {
		return false
	}
	for i := range u.Terms {
		if !termFieldEqual(u.Terms[i], o.Terms[i]) {
			return false
		}
	}
	return true
}

func termFieldEqual(a, b Term) bool {
	if a.factorValue() != b.factorValue() || a.exponentValue() != b.exponentValue() || a.Annotation != b.Annotation {
		return false
	}
	aPrefix, bPrefix := Prefix(PrefixNone), Prefix(PrefixNone)
	if a.Prefix != nil {
		aPrefix = a.Prefix.ID
	}
	if b.Prefix != nil {
		bPrefix = b.Prefix.ID
	}
	if aPrefix != bPrefix {
		return false
	}
	var aAtom, bAtom AtomID
	if a.Atom != nil {
		aAtom = a.Atom.ID
	}
	if b.Atom != nil {
		bAtom = b.Atom.ID
	}
	return aAtom == bAtom
}

// Equals reports whether u and o are semantically equal: their reduced
// canonical forms are field-equal after sorting (spec.md §4.2). Reduce
// already sorts, so this reduces both sides and compares fields.
func (u Unit) Equals(o Unit) bool {
	return u.Reduce().FieldEqual(o.Reduce())
}

// Dimension returns the dimensional composition of u: the componentwise
// sum of every term's contribution (spec.md §4.2).
func (u Unit) Dimension() Dimension {
	return u.dimensionUnchecked()
}

func (u Unit) dimensionUnchecked() Dimension {
	var d Dimension
	for _, t := range u.Terms {
		d = d.Add(t.dimension())
	}
	return d
}

// CommensurableWith reports whether u and o share a dimension vector.
func (u Unit) CommensurableWith(o Unit) bool {
	return u.Dimension().CommensurableWith(o.Dimension())
}

// Fraction is the numerator/denominator split of a Unit (spec.md §4.2's
// as-fraction split, made a first-class type per SPEC_FULL.md §4).
type Fraction struct {
	Numerator   Unit
	Denominator Unit
}

// String renders the fraction as "num/den", or just "num" when the
// denominator is unity.
func (f Fraction) String() string {
	num := f.Numerator.String()
	if f.Denominator.Equals(Unity) {
		return num
	}
	return num + "/" + f.Denominator.String()
}

// AsFraction splits u into its positive-exponent numerator and the
// (positive-exponent) inverse of its negative-exponent terms as the
// denominator (spec.md §4.2).
func (u Unit) AsFraction() Fraction {
	var numTerms, denTerms []Term
	for _, t := range u.Terms {
		if t.exponentValue() >= 0 {
			numTerms = append(numTerms, t)
		} else {
			denTerms = append(denTerms, t.negated())
		}
	}
	return Fraction{
		Numerator:   Unit{Terms: numTerms},
		Denominator: Unit{Terms: denTerms},
	}
}

// Numerator returns the sub-unit of terms with a positive exponent.
func (u Unit) Numerator() Unit { return u.AsFraction().Numerator }

// Denominator returns the inverse of the sub-unit of terms with a negative
// exponent.
func (u Unit) Denominator() Unit { return u.AsFraction().Denominator }

// IsSpecial reports whether any term's atom has a special (function-pair)
// definition.
func (u Unit) IsSpecial() bool {
	for _, t := range u.Terms {
		if t.Atom != nil && t.Atom.IsSpecial {
			return true
		}
	}
	return false
}

// IsArbitrary reports whether any term's atom cannot be reduced to base
// scalars.
func (u Unit) IsArbitrary() bool {
	for _, t := range u.Terms {
		if t.Atom != nil && t.Atom.IsArbitrary {
			return true
		}
	}
	return false
}

// specialAtom returns the single special atom carried by u, when u is
// exactly one bare term wrapping a special atom (factor 1, exponent +1, no
// prefix, no annotation) — the shape every UCUM special unit takes in
// practice (Cel, [degF], [pH], [p'diop]). Compound expressions built from a
// special atom (e.g. a prefixed or exponentiated special unit) are outside
// what spec.md defines a function-pair conversion to mean, and are
// rejected by the caller instead of silently mishandled.
func (u Unit) specialAtom() (*Atom, bool) {
	if len(u.Terms) != 1 {
		return nil, false
	}
	t := u.Terms[0]
	if t.Atom == nil || !t.Atom.IsSpecial {
		return nil, false
	}
	if t.factorValue() != 1 || t.exponentValue() != 1 || t.Prefix != nil || t.Annotation != "" {
		return nil, false
	}
	return t.Atom, true
}

// Compare returns (-1, 0, or +1, true) if u and o are commensurable,
// comparing their reduced scalar magnitudes; it returns (0, false) when
// they are not commensurable, mirroring the source's PartialOrd semantics
// (SPEC_FULL.md §4) rather than erroring — comparisons are expected to be
// used in a boolean context at call sites that already guard on the second
// result.
func (r *Registry) Compare(u, o Unit) (int, bool) {
	if !u.CommensurableWith(o) {
		return 0, false
	}
	su, errU := r.Scalar(u)
	so, errO := r.Scalar(o)
	if errU != nil || errO != nil {
		return 0, false
	}
	switch {
	case su < so:
		return -1, true
	case su > so:
		return 1, true
	default:
		return 0, true
	}
}

// String renders u in canonical UCUM surface syntax: terms with positive
// exponent first (in their stored order), a '/' before terms with negative
// exponent, each printed with its sign flipped back to positive. A unit with
// no positive term prints as a leading '/' followed by its terms joined with
// '.'. This is the printer half of spec.md §8's "parser round-trip"
// property: parsing this string back yields a Unit equal to u under Equals.
func (u Unit) String() string {
	if len(u.Terms) == 0 {
		return "1"
	}
	ordered := make([]Term, 0, len(u.Terms))
	for _, wantNeg := range []bool{false, true} {
		for _, t := range u.Terms {
			if (t.exponentValue() < 0) == wantNeg {
				ordered = append(ordered, t)
			}
		}
	}
	allNeg := ordered[0].exponentValue() < 0
	var b strings.Builder
	for i, t := range ordered {
		if i > 0 {
			if t.exponentValue() < 0 && !allNeg {
				b.WriteByte('/')
			} else {
				b.WriteByte('.')
			}
		} else if t.exponentValue() < 0 {
			b.WriteByte('/')
		}
		if t.exponentValue() < 0 {
			b.WriteString(t.negated().String())
		} else {
			b.WriteString(t.String())
		}
	}
	return b.String()
}
