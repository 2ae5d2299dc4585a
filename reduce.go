package ucum

import (
	"fmt"
	"math"
)

// reducedTerm computes spec.md §4.3's reduced(T, x) for a single Term:
// (factor · prefixScalar · <definition contribution> · x)^exponent. It
// fails for special and arbitrary atoms — callers on that path belong in
// Convert, not Scalar (spec.md §4.3 "Reduced value").
func (r *Registry) reducedTerm(t Term, x float64) (float64, error) {
	base := float64(t.factorValue())
	if t.Prefix != nil {
		base *= t.Prefix.Float64()
	}
	if t.Atom == nil {
		return math.Pow(base*x, float64(t.exponentValue())), nil
	}

	atom := t.Atom
	if atom.IsArbitrary {
		return 0, fmt.Errorf("ucum: %q is an arbitrary unit and cannot be reduced to a base scalar", atom.PrimaryCode)
	}
	if atom.IsSpecial {
		return 0, fmt.Errorf("ucum: %q is a special unit; use Convert, not Scalar", atom.PrimaryCode)
	}

	switch atom.Definition.Kind {
	case DefBase:
		return math.Pow(base*x, float64(t.exponentValue())), nil
	case DefNonDimensional:
		return math.Pow(base*atom.Float64Value()*x, float64(t.exponentValue())), nil
	case DefDimensional:
		inner, err := r.reducedUnit(*atom.exprUnit, x)
		if err != nil {
			return 0, err
		}
		return math.Pow(base*atom.Float64Value()*inner, float64(t.exponentValue())), nil
	default:
		return 0, fmt.Errorf("ucum: %q has a definition kind that cannot be reduced", atom.PrimaryCode)
	}
}

// reducedUnit computes spec.md §4.3's reduced(U, x) = ∏ reduced(T_i, x).
func (r *Registry) reducedUnit(u Unit, x float64) (float64, error) {
	result := 1.0
	for _, t := range u.Terms {
		v, err := r.reducedTerm(t, x)
		if err != nil {
			return 0, err
		}
		result *= v
	}
	return result, nil
}

// Scalar returns the multiplicative factor that converts a value expressed
// in u into the equivalent value in the product of base units implied by
// dim(u): scalar(U) = reduced(U, 1.0) (spec.md §4.3). It fails if u carries
// a special or arbitrary atom — use Convert for those.
func (r *Registry) Scalar(u Unit) (float64, error) {
	return r.reducedUnit(u, 1.0)
}

// magnitudeTerm walks the same definition graph as reducedTerm but never
// fails on a special atom: it uses the atom's own Value and Expression,
// ignoring the function pair entirely. This is spec.md §4.3's "Magnitude"
// — the pre-special path used by Convert to relate a special unit's
// underlying linear expression back to base units.
func (r *Registry) magnitudeTerm(t Term) (float64, error) {
	base := float64(t.factorValue())
	if t.Prefix != nil {
		base *= t.Prefix.Float64()
	}
	if t.Atom == nil {
		return math.Pow(base, float64(t.exponentValue())), nil
	}

	atom := t.Atom
	if atom.IsArbitrary {
		return 0, fmt.Errorf("ucum: %q is an arbitrary unit and has no magnitude", atom.PrimaryCode)
	}

	switch atom.Definition.Kind {
	case DefBase:
		return math.Pow(base, float64(t.exponentValue())), nil
	case DefNonDimensional, DefNonDimensionalSpecial:
		return math.Pow(base*atom.Float64Value(), float64(t.exponentValue())), nil
	case DefDimensional, DefDimensionalSpecial:
		inner, err := r.magnitudeUnit(*atom.exprUnit)
		if err != nil {
			return 0, err
		}
		return math.Pow(base*atom.Float64Value()*inner, float64(t.exponentValue())), nil
	default:
		return 0, fmt.Errorf("ucum: %q has a definition kind with no magnitude", atom.PrimaryCode)
	}
}

func (r *Registry) magnitudeUnit(u Unit) (float64, error) {
	result := 1.0
	for _, t := range u.Terms {
		v, err := r.magnitudeTerm(t)
		if err != nil {
			return 0, err
		}
		result *= v
	}
	return result, nil
}

// Magnitude is the public surface for spec.md §4.3's magnitude(U): like
// Scalar, but tolerant of special atoms (it uses their linear Expression,
// not their function pair), used for display and as the pre-special path
// in Convert.
func (r *Registry) Magnitude(u Unit) (float64, error) {
	return r.magnitudeUnit(u)
}

// magnitudeSpecialUnderlying returns the magnitude of a special atom's
// underlying linear expression (e.g. Cel's "K", [pH]'s "mol/L"), the scale
// Convert uses to relate the function pair's output back to base units.
func (r *Registry) magnitudeSpecialUnderlying(atom *Atom) (float64, error) {
	if atom.exprUnit == nil {
		return 1.0, nil
	}
	return r.magnitudeUnit(*atom.exprUnit)
}
