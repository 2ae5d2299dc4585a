package ucum

import "fmt"

// Axis indexes a single component of a Dimension vector.
type Axis int

// The seven UCUM base-unit axes, in the order Dimension stores them.
const (
	AxisLength Axis = iota
	AxisTime
	AxisMass
	AxisPlaneAngle
	AxisTemperature
	AxisElectricCharge
	AxisLuminousIntensity
	numAxes
)

var axisNames = [numAxes]string{
	AxisLength:            "Length",
	AxisTime:              "Time",
	AxisMass:              "Mass",
	AxisPlaneAngle:        "PlaneAngle",
	AxisTemperature:       "Temperature",
	AxisElectricCharge:    "ElectricCharge",
	AxisLuminousIntensity: "LuminousIntensity",
}

// String returns the axis name, e.g. "Mass".
func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// Dimension is a signed 7-tuple over the SI base-quantity axes. Two units
// are commensurable iff their Dimension vectors are equal.
type Dimension [numAxes]int

// ZeroDimension is the dimension vector of a dimensionless quantity.
var ZeroDimension = Dimension{}

// Add returns the componentwise sum of two dimension vectors; this is the
// dimensional composition rule for multiplying two units.
func (d Dimension) Add(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] + o[i]
	}
	return r
}

// Sub returns the componentwise difference; the dimensional composition
// rule for dividing one unit by another.
func (d Dimension) Sub(o Dimension) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] - o[i]
	}
	return r
}

// Neg flips the sign of every axis; the dimensional composition rule for
// inverting a unit.
func (d Dimension) Neg() Dimension {
	var r Dimension
	for i := range d {
		r[i] = -d[i]
	}
	return r
}

// Scale multiplies every axis by a signed integer exponent.
func (d Dimension) Scale(exp int) Dimension {
	var r Dimension
	for i := range d {
		r[i] = d[i] * exp
	}
	return r
}

// IsZero reports whether d is the dimensionless vector.
func (d Dimension) IsZero() bool {
	return d == ZeroDimension
}

// CommensurableWith reports whether two dimension vectors are equal, i.e.
// whether quantities carrying them can be added, compared, or converted.
func (d Dimension) CommensurableWith(o Dimension) bool {
	return d == o
}

// String renders a dimension as a compact product of axis symbols, e.g.
// "Length.Time-2.Mass" for force (axes in storage order). Used only for diagnostics; it is not the
// UCUM unit-expression grammar (that lives in unit.go/format.go).
func (d Dimension) String() string {
	if d.IsZero() {
		return "1"
	}
	s := ""
	for i, exp := range d {
		if exp == 0 {
			continue
		}
		if s != "" {
			s += "."
		}
		s += Axis(i).String()
		if exp != 1 {
			s += fmt.Sprintf("%d", exp)
		}
	}
	return s
}
