package ucum

import "math"

// SpecialFunc identifies one of the small set of function pairs that give a
// "special" atom's scale, rather than a multiplicative factor (spec.md
// §4.3, §9). Implementations in languages without first-class functions
// store a tagged identifier and dispatch centrally; we do the same even
// though Go has closures, so the table in atomtable.go stays pure data.
type SpecialFunc int

const (
	// FuncNone marks an atom whose definition is not special.
	FuncNone SpecialFunc = iota
	// FuncCelsius converts between Cel and the underlying K.
	FuncCelsius
	// FuncFahrenheit converts between [degF] and the underlying K.
	FuncFahrenheit
	// FuncPH converts between [pH] and the underlying mol/L.
	FuncPH
	// FuncPrismDiopter converts between [p'diop] and the underlying rad.
	FuncPrismDiopter
	// FuncHomeopathicX converts decimal homeopathic potencies to their
	// underlying dimensionless dilution ratio (10^-x).
	FuncHomeopathicX
	// FuncNeper converts neper (a logarithmic ratio) to its underlying
	// dimensionless amplitude ratio.
	FuncNeper
	// FuncBel converts bel to its underlying dimensionless power ratio.
	FuncBel
)

// funcPair holds a special unit's forward/inverse transforms. To converts
// a magnitude expressed in the special unit into the equivalent scalar in
// the underlying linear unit; From is its inverse.
type funcPair struct {
	To   func(x float64) float64
	From func(x float64) float64
}

var specialFuncs = map[SpecialFunc]funcPair{
	FuncCelsius: {
		To:   func(x float64) float64 { return x + 273.15 },
		From: func(x float64) float64 { return x - 273.15 },
	},
	FuncFahrenheit: {
		To:   func(x float64) float64 { return 5 * (x + 459.67) / 9 },
		From: func(x float64) float64 { return 9*x/5 - 459.67 },
	},
	FuncPH: {
		To:   func(x float64) float64 { return math.Pow(10, -x) },
		From: func(x float64) float64 { return -math.Log10(x) },
	},
	FuncPrismDiopter: {
		To:   func(x float64) float64 { return math.Tan(x) * 100 },
		From: func(x float64) float64 { return math.Atan(x / 100) },
	},
	FuncHomeopathicX: {
		To:   func(x float64) float64 { return math.Pow(10, -x) },
		From: func(x float64) float64 { return -math.Log10(x) },
	},
	FuncNeper: {
		To:   func(x float64) float64 { return math.Exp(x) },
		From: func(x float64) float64 { return math.Log(x) },
	},
	FuncBel: {
		To:   func(x float64) float64 { return math.Pow(10, x) },
		From: func(x float64) float64 { return math.Log10(x) },
	},
}

// convertTo applies the special function's forward transform: magnitude in
// the special unit to equivalent scalar in the underlying linear unit.
func (f SpecialFunc) convertTo(x float64) float64 {
	pair, ok := specialFuncs[f]
	if !ok {
		panic("ucum: unknown special function identifier")
	}
	return pair.To(x)
}

// convertFrom applies the special function's inverse transform.
func (f SpecialFunc) convertFrom(x float64) float64 {
	pair, ok := specialFuncs[f]
	if !ok {
		panic("ucum: unknown special function identifier")
	}
	return pair.From(x)
}
