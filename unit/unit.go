// Package unit provides magnitudes tagged with measurement units and checked
// for dimensional consistency at runtime. It covers exactly the dimension
// classes the propulsion tradeoff needs, it is not a general-purpose unit
// library.
package unit

import (
	"fmt"
	"strings"
)

// Dims is the dimension signature of a quantity, as integer exponents over
// the SI base dimensions this package needs.
type Dims struct {
	Mass   int8 // kilogram exponent
	Length int8 // meter exponent
	Time   int8 // second exponent
}

// Mul returns the dimensions of a product.
func (d Dims) Mul(o Dims) Dims {
	return Dims{d.Mass + o.Mass, d.Length + o.Length, d.Time + o.Time}
}

// Div returns the dimensions of a quotient.
func (d Dims) Div(o Dims) Dims {
	return Dims{d.Mass - o.Mass, d.Length - o.Length, d.Time - o.Time}
}

// IsDimless returns whether d is the dimensionless signature.
func (d Dims) IsDimless() bool {
	return d == Dims{}
}

func (d Dims) String() string {
	if d.IsDimless() {
		return "1"
	}
	var parts []string
	for _, base := range []struct {
		symbol string
		exp    int8
	}{{"kg", d.Mass}, {"m", d.Length}, {"s", d.Time}} {
		switch base.exp {
		case 0:
		case 1:
			parts = append(parts, base.symbol)
		default:
			parts = append(parts, fmt.Sprintf("%s^%d", base.symbol, base.exp))
		}
	}
	return strings.Join(parts, "·")
}

// Dimension signatures of the classes the calculator handles.
var (
	Dimensionless = Dims{}
	Mass          = Dims{Mass: 1}
	Length        = Dims{Length: 1}
	Time          = Dims{Time: 1}
	Area          = Dims{Length: 2}
	Velocity      = Dims{Length: 1, Time: -1}
	NumberDensity = Dims{Length: -3}
	Frequency     = Dims{Time: -1}
	Pressure      = Dims{Mass: 1, Length: -1, Time: -2}
	Force         = Dims{Mass: 1, Length: 1, Time: -2}
	Energy        = Dims{Mass: 1, Length: 2, Time: -2}
	Power         = Dims{Mass: 1, Length: 2, Time: -3}
	Momentum      = Dims{Mass: 1, Length: 1, Time: -1}
	Action        = Dims{Mass: 1, Length: 2, Time: -1}
)

// Unit is a named measurement unit: the dimension it measures and the factor
// converting one of it into coherent SI base units.
type Unit struct {
	Name   string
	Dims   Dims
	Factor float64
}

// Named units. Factor is the SI value of one unit.
var (
	Kilogram = Unit{"kg", Mass, 1}
	Gram     = Unit{"g", Mass, 1e-3}

	Meter      = Unit{"m", Length, 1}
	Kilometer  = Unit{"km", Length, 1e3}
	Micrometer = Unit{"μm", Length, 1e-6}
	Nanometer  = Unit{"nm", Length, 1e-9}

	Second    = Unit{"s", Time, 1}
	PerSecond = Unit{"1/s", Frequency, 1}

	SquareMeter      = Unit{"m^2", Area, 1}
	SquareCentimeter = Unit{"cm^2", Area, 1e-4}

	MeterPerSecond     = Unit{"m/s", Velocity, 1}
	KilometerPerSecond = Unit{"km/s", Velocity, 1e3}

	PerCubicMeter      = Unit{"1/m^3", NumberDensity, 1}
	PerCubicCentimeter = Unit{"1/cm^3", NumberDensity, 1e6}

	Pascal     = Unit{"Pa", Pressure, 1}
	NanoPascal = Unit{"nPa", Pressure, 1e-9}

	Newton      = Unit{"N", Force, 1}
	MicroNewton = Unit{"μN", Force, 1e-6}

	Joule        = Unit{"J", Energy, 1}
	ElectronVolt = Unit{"eV", Energy, 1.602176634e-19}

	Watt     = Unit{"W", Power, 1}
	Kilowatt = Unit{"kW", Power, 1e3}

	KilogramMeterPerSecond = Unit{"kg·m/s", Momentum, 1}

	JouleSecond = Unit{"J·s", Action, 1}

	Scalar = Unit{"", Dimensionless, 1}
)

// Quantity is a magnitude tagged with its unit. Products and quotients derive
// their dimension from the operands, and conversions across dimension classes
// fail instead of silently operating on bare numbers.
type Quantity struct {
	si float64 // magnitude in coherent SI base units
	u  Unit
}

// New returns value expressed in u.
func New(value float64, u Unit) Quantity {
	return Quantity{si: value * u.Factor, u: u}
}

// Magnitude returns the numeric value of q in its own unit.
func (q Quantity) Magnitude() float64 {
	return q.si / q.u.Factor
}

// SI returns the magnitude of q in coherent SI base units.
func (q Quantity) SI() float64 {
	return q.si
}

// Unit returns the unit q is expressed in.
func (q Quantity) Unit() Unit {
	return q.u
}

// Dims returns the dimension signature of q.
func (q Quantity) Dims() Dims {
	return q.u.Dims
}

func (q Quantity) String() string {
	if q.u.Name == "" {
		return fmt.Sprintf("%v", q.Magnitude())
	}
	return fmt.Sprintf("%v %s", q.Magnitude(), q.u.Name)
}

// Convert re-expresses q in u. It fails with a *DimensionError when u
// measures a different dimension than q.
func (q Quantity) Convert(u Unit) (Quantity, error) {
	if q.u.Dims != u.Dims {
		return Quantity{}, &DimensionError{Op: "convert to " + u.Name, Got: q.u.Dims, Want: u.Dims}
	}
	return Quantity{si: q.si, u: u}, nil
}

// In converts q to u and returns the bare magnitude.
func (q Quantity) In(u Unit) (float64, error) {
	c, err := q.Convert(u)
	if err != nil {
		return 0, err
	}
	return c.Magnitude(), nil
}

// Mul returns the product a·b expressed in the derived unit.
func Mul(a, b Quantity) Quantity {
	return Quantity{si: a.si * b.si, u: derived(a.u.Dims.Mul(b.u.Dims))}
}

// Div returns the quotient a/b expressed in the derived unit. It fails with
// ErrDivisionByZero when b is exactly zero.
func Div(a, b Quantity) (Quantity, error) {
	if b.si == 0 {
		return Quantity{}, ErrDivisionByZero
	}
	return Quantity{si: a.si / b.si, u: derived(a.u.Dims.Div(b.u.Dims))}, nil
}

// derived returns the coherent SI unit measuring d, named when this package
// names it.
func derived(d Dims) Unit {
	for _, u := range []Unit{Scalar, Kilogram, Meter, Second, PerSecond, SquareMeter,
		MeterPerSecond, PerCubicMeter, Pascal, Newton, Joule, Watt,
		KilogramMeterPerSecond, JouleSecond} {
		if u.Dims == d {
			return u
		}
	}
	return Unit{Name: d.String(), Dims: d, Factor: 1}
}

// Must unwraps a (Quantity, error) pair and panics on failure. Reserved for
// constant tables and literals where an error is a programmer mistake.
func Must(q Quantity, err error) Quantity {
	if err != nil {
		panic(err)
	}
	return q
}
