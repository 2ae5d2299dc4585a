package ucum

import "fmt"

// Decompose fully expands u through every Dimensional atom's definition
// down to base units, returning the resulting base-unit Unit together with
// the scalar multiplier relating one u to that many base units (so value_in_u
// * scalar == value_in_base_units). This is Scalar's sibling: Scalar returns
// only the multiplier, Decompose also returns the base-unit term structure
// (SPEC_FULL.md §4's supplemented Decompose operation). It fails for special
// or arbitrary atoms, which have no base-unit expansion.
func (r *Registry) Decompose(u Unit) (Unit, float64, error) {
	var terms []Term
	scalar := 1.0
	for _, t := range u.Terms {
		ts, s, err := r.decomposeTerm(t)
		if err != nil {
			return Unit{}, 0, err
		}
		terms = append(terms, ts...)
		scalar *= s
	}
	return Unit{Terms: terms}.Reduce(), scalar, nil
}

func (r *Registry) decomposeTerm(t Term) ([]Term, float64, error) {
	scalar := float64(t.factorValue())
	if t.Prefix != nil {
		scalar *= t.Prefix.Float64()
	}
	exp := t.exponentValue()

	if t.Atom == nil {
		return nil, pow(scalar, exp), nil
	}

	atom := t.Atom
	if atom.IsArbitrary {
		return nil, 0, fmt.Errorf("ucum: %q is an arbitrary unit and has no base-unit decomposition", atom.PrimaryCode)
	}
	if atom.IsSpecial {
		return nil, 0, fmt.Errorf("ucum: %q is a special unit and has no base-unit decomposition", atom.PrimaryCode)
	}

	switch atom.Definition.Kind {
	case DefBase:
		return []Term{{Atom: atom, Exponent: exp}}, pow(scalar, exp), nil
	case DefNonDimensional:
		return nil, pow(scalar*atom.Float64Value(), exp), nil
	case DefDimensional:
		innerTerms, innerScalar, err := r.Decompose(*atom.exprUnit)
		if err != nil {
			return nil, 0, err
		}
		out := make([]Term, len(innerTerms))
		for i, it := range innerTerms {
			out[i] = it.withExponent(it.exponentValue() * exp)
		}
		return out, pow(scalar*atom.Float64Value()*innerScalar, exp), nil
	default:
		return nil, 0, fmt.Errorf("ucum: %q has a definition kind with no base-unit decomposition", atom.PrimaryCode)
	}
}

func pow(base float64, exp int) float64 {
	if exp == 1 {
		return base
	}
	result := 1.0
	neg := exp < 0
	n := exp
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}
