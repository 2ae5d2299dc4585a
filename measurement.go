package ucum

import "fmt"

// Measurement pairs a value with the Unit it is expressed in (spec.md §5,
// SPEC_FULL.md §4's supplemented arithmetic surface). All arithmetic is
// defined relative to a Registry, since it requires Scalar/Convert.
type Measurement struct {
	Value float64
	Unit  Unit
}

// NewMeasurement constructs a Measurement directly from a value and Unit,
// without parsing.
func NewMeasurement(value float64, u Unit) Measurement {
	return Measurement{Value: value, Unit: u}
}

// ParseMeasurement parses s as "<value> <unit-expression>" — the value and
// unit separated by whitespace — against this registry.
func (r *Registry) ParseMeasurement(s string) (Measurement, error) {
	i := 0
	for i < len(s) && !isSpace(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return Measurement{}, &UnknownUnitStringError{Input: s}
	}
	var value float64
	if _, err := fmt.Sscanf(s[:i], "%g", &value); err != nil {
		return Measurement{}, &ParseIntError{Input: s[:i], Err: err}
	}
	j := i
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	u, err := r.Parse(s[j:])
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: value, Unit: u}, nil
}

// ConvertTo returns m expressed in to (spec.md §4.3, via Registry.Convert).
func (r *Registry) ConvertTo(m Measurement, to Unit) (Measurement, error) {
	v, err := r.Convert(m.Value, m.Unit, to)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: v, Unit: to}, nil
}

// annotations returns the set of distinct non-empty annotations carried by
// u's terms. Addition and subtraction require both operands to carry the
// same annotation set (spec.md §4.2's annotation-as-type-tag rule): "5{rbc}"
// and "5{wbc}" are not addable even though both reduce to the dimensionless
// scalar 5.
func (u Unit) annotations() map[string]bool {
	out := make(map[string]bool)
	for _, t := range u.Terms {
		if t.Annotation != "" {
			out[t.Annotation] = true
		}
	}
	return out
}

func sameAnnotations(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// Add returns a + b, expressed in a's unit (spec.md §4.2, §6.2). It fails if
// a and b are not commensurable, or if their annotation sets differ.
func (r *Registry) Add(a, b Measurement) (Measurement, error) {
	if !sameAnnotations(a.Unit.annotations(), b.Unit.annotations()) {
		return Measurement{}, &IncompatibleUnitTypesError{LHS: a.Unit.String(), RHS: b.Unit.String()}
	}
	bv, err := r.Convert(b.Value, b.Unit, a.Unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: a.Value + bv, Unit: a.Unit}, nil
}

// Sub returns a - b, expressed in a's unit.
func (r *Registry) Sub(a, b Measurement) (Measurement, error) {
	if !sameAnnotations(a.Unit.annotations(), b.Unit.annotations()) {
		return Measurement{}, &IncompatibleUnitTypesError{LHS: a.Unit.String(), RHS: b.Unit.String()}
	}
	bv, err := r.Convert(b.Value, b.Unit, a.Unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: a.Value - bv, Unit: a.Unit}, nil
}

// Mul returns a * b: values multiply, units multiply (spec.md §4.2).
// Annotations are not checked — unlike Add/Sub, UCUM allows differently
// annotated quantities to be multiplied (spec.md §9's second Open Question).
func (r *Registry) Mul(a, b Measurement) (Measurement, error) {
	if a.Unit.IsSpecial() || b.Unit.IsSpecial() {
		return Measurement{}, fmt.Errorf("ucum: cannot multiply special units %q and %q", a.Unit, b.Unit)
	}
	return Measurement{Value: a.Value * b.Value, Unit: a.Unit.Mul(b.Unit)}, nil
}

// Div returns a / b. It fails if b's value is zero.
func (r *Registry) Div(a, b Measurement) (Measurement, error) {
	if a.Unit.IsSpecial() || b.Unit.IsSpecial() {
		return Measurement{}, fmt.Errorf("ucum: cannot divide special units %q and %q", a.Unit, b.Unit)
	}
	if b.Value == 0 {
		return Measurement{}, &DivideByZeroError{Unit: b.Unit.String()}
	}
	return Measurement{Value: a.Value / b.Value, Unit: a.Unit.Div(b.Unit)}, nil
}

// Neg returns -m.
func (m Measurement) Neg() Measurement {
	return Measurement{Value: -m.Value, Unit: m.Unit}
}

// IsZero reports whether m's value is exactly zero.
func (m Measurement) IsZero() bool {
	return m.Value == 0
}

// String renders m as "<value> <unit>".
func (m Measurement) String() string {
	return fmt.Sprintf("%g %s", m.Value, m.Unit.String())
}
