package ucum

import "fmt"

// Term is the fundamental unit-expression atom after parsing: a factor,
// optional prefix, optional atom, exponent, and optional annotation
// (spec.md §3, §4.1).
type Term struct {
	// Factor is a positive integer multiplier; the zero value means "not
	// present", which factorValue() treats as 1.
	Factor uint64
	// Prefix is present only if Atom is present and metric.
	Prefix *PrefixEntry
	// Atom is the unit symbol this term carries, or nil for a bare numeric
	// factor.
	Atom *Atom
	// Exponent is non-zero; the zero value means "not present", which
	// exponentValue() treats as +1.
	Exponent int
	// Annotation is an opaque type-tag carried alongside the term
	// (spec.md §4.2); it never affects numeric reduction.
	Annotation string
}

// factorValue returns Factor, defaulting to 1 when unset.
func (t Term) factorValue() uint64 {
	if t.Factor == 0 {
		return 1
	}
	return t.Factor
}

// exponentValue returns Exponent, defaulting to +1 when unset.
func (t Term) exponentValue() int {
	if t.Exponent == 0 {
		return 1
	}
	return t.Exponent
}

// IsUnity reports whether t represents the multiplicative identity: no
// factor, prefix, atom, or annotation, and exponent +1 (spec.md §3).
func (t Term) IsUnity() bool {
	return t.factorValue() == 1 && t.Prefix == nil && t.Atom == nil &&
		t.Annotation == "" && t.exponentValue() == 1
}

// withExponent returns a copy of t with its exponent replaced.
func (t Term) withExponent(exp int) Term {
	t.Exponent = exp
	return t
}

// negated returns a copy of t with its exponent sign flipped; this is the
// UCUM leading-slash/division inversion rule (spec.md §4.1).
func (t Term) negated() Term {
	return t.withExponent(-t.exponentValue())
}

// dimension returns this term's contribution to a unit's dimension vector:
// the zero vector if Atom is nil, else Atom.Dimension scaled by Exponent
// (spec.md §4.2).
func (t Term) dimension() Dimension {
	if t.Atom == nil {
		return ZeroDimension
	}
	return t.Atom.Dimension.Scale(t.exponentValue())
}

// mergeKey identifies terms eligible to combine during reduction: same
// factor, prefix, atom, and annotation (spec.md §4.2 step 1).
type mergeKey struct {
	factor     uint64
	prefix     Prefix
	atom       AtomID
	annotation string
}

func (t Term) mergeKey() mergeKey {
	k := mergeKey{factor: t.factorValue(), annotation: t.Annotation}
	if t.Prefix != nil {
		k.prefix = t.Prefix.ID
	}
	if t.Atom != nil {
		k.atom = t.Atom.ID
	}
	return k
}

// String renders a term in UCUM surface syntax: factor, prefix code, atom
// code, signed exponent (omitted at +1), and annotation.
func (t Term) String() string {
	s := ""
	if t.Factor != 0 && t.Factor != 1 {
		s += fmt.Sprintf("%d", t.Factor)
	}
	if t.Prefix != nil {
		s += t.Prefix.PrimaryCode
	}
	if t.Atom != nil {
		s += t.Atom.PrimaryCode
	} else if t.Factor == 0 && t.Prefix == nil {
		// A bare unity term with only an annotation still needs "1" as its
		// printable base, matching how the grammar requires a component.
		if s == "" && t.Annotation != "" {
			s = "1"
		}
	}
	if exp := t.exponentValue(); exp != 1 {
		s += fmt.Sprintf("%d", exp)
	}
	if t.Annotation != "" {
		s += "{" + t.Annotation + "}"
	}
	if s == "" {
		s = "1"
	}
	return s
}
