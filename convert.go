package ucum

// Convert implements spec.md §4.3's four-case conversion dispatch: a value
// expressed in from is converted to the equivalent value in to. from and to
// must be commensurable (share a dimension vector); special units compare
// on the dimension of their underlying linear expression.
func (r *Registry) Convert(value float64, from, to Unit) (float64, error) {
	fromSpecial, fromIsSpecial := from.specialAtom()
	toSpecial, toIsSpecial := to.specialAtom()

	fromDim, err := r.dimensionFor(from, fromIsSpecial, fromSpecial)
	if err != nil {
		return 0, err
	}
	toDim, err := r.dimensionFor(to, toIsSpecial, toSpecial)
	if err != nil {
		return 0, err
	}
	if !fromDim.CommensurableWith(toDim) {
		return 0, &IncompatibleUnitTypesError{LHS: from.String(), RHS: to.String()}
	}

	switch {
	case !fromIsSpecial && !toIsSpecial:
		return r.convertOrdinaryOrdinary(value, from, to)
	case fromIsSpecial && !toIsSpecial:
		return r.convertSpecialToOrdinary(value, fromSpecial, to)
	case !fromIsSpecial && toIsSpecial:
		return r.convertOrdinaryToSpecial(value, from, toSpecial)
	default:
		return r.convertSpecialToSpecial(value, fromSpecial, toSpecial)
	}
}

func (r *Registry) dimensionFor(u Unit, isSpecial bool, atom *Atom) (Dimension, error) {
	if !isSpecial {
		return u.Dimension(), nil
	}
	if atom.exprUnit == nil {
		return ZeroDimension, nil
	}
	return atom.exprUnit.Dimension(), nil
}

// convertOrdinaryOrdinary is spec.md §4.3's linear case: value in from's base
// scalars, rescaled into to's.
func (r *Registry) convertOrdinaryOrdinary(value float64, from, to Unit) (float64, error) {
	sf, err := r.Scalar(from)
	if err != nil {
		return 0, err
	}
	st, err := r.Scalar(to)
	if err != nil {
		return 0, err
	}
	if st == 0 {
		return 0, &DivideByZeroError{Unit: to.String()}
	}
	return value * sf / st, nil
}

// convertSpecialToOrdinary runs the special atom's forward function to get
// the equivalent value in its underlying linear unit, then rescales that
// into to (spec.md §4.3).
func (r *Registry) convertSpecialToOrdinary(value float64, from *Atom, to Unit) (float64, error) {
	underlying := from.Definition.Function.convertTo(value)
	su, err := r.magnitudeSpecialUnderlying(from)
	if err != nil {
		return 0, err
	}
	st, err := r.Scalar(to)
	if err != nil {
		return 0, err
	}
	if st == 0 {
		return 0, &DivideByZeroError{Unit: to.String()}
	}
	return value2Underlying(underlying, su) / st, nil
}

// convertOrdinaryToSpecial rescales value into the special atom's underlying
// linear unit, then runs the atom's inverse function (spec.md §4.3).
func (r *Registry) convertOrdinaryToSpecial(value float64, from Unit, to *Atom) (float64, error) {
	sf, err := r.Scalar(from)
	if err != nil {
		return 0, err
	}
	su, err := r.magnitudeSpecialUnderlying(to)
	if err != nil {
		return 0, err
	}
	if su == 0 {
		return 0, &DivideByZeroError{Unit: string(to.PrimaryCode)}
	}
	underlying := value * sf / su
	return to.Definition.Function.convertFrom(underlying), nil
}

// convertSpecialToSpecial chains the two one-sided conversions through the
// shared base scalar (spec.md §4.3's special/special case), short-circuiting
// when both sides are the same atom.
func (r *Registry) convertSpecialToSpecial(value float64, from, to *Atom) (float64, error) {
	if from.ID == to.ID {
		return value, nil
	}
	underlying := from.Definition.Function.convertTo(value)
	suFrom, err := r.magnitudeSpecialUnderlying(from)
	if err != nil {
		return 0, err
	}
	suTo, err := r.magnitudeSpecialUnderlying(to)
	if err != nil {
		return 0, err
	}
	if suTo == 0 {
		return 0, &DivideByZeroError{Unit: string(to.PrimaryCode)}
	}
	base := value2Underlying(underlying, suFrom)
	return to.Definition.Function.convertFrom(base / suTo), nil
}

// value2Underlying scales a value already expressed in a special atom's
// underlying linear unit (e.g. Kelvin for Cel) by that unit's own magnitude,
// landing it in base scalars.
func value2Underlying(underlyingValue, underlyingMagnitude float64) float64 {
	return underlyingValue * underlyingMagnitude
}
