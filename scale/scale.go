// Package scale provides a scale factor that keeps its precision over a huge
// dynamic range.
//
// A fixed point number with F fraction bits cannot hold 1e-9 with any useful
// precision, but it holds 1e9 exactly. A Multiplier therefore stores factors
// smaller than one as the reciprocal of their magnitude:
//
//  value = reciprocal ? 1 / magnitude : magnitude
//
// and keeps |magnitude| >= 1 for every non-zero value. Composition orders its
// divisions so that a reciprocal is only ever formed from a quotient >= 1.
package scale

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint/number"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("scale")

// Multiplier is a scale factor. The zero value is 0.
type Multiplier[P number.Precision] struct {
	magnitude  number.Number[P]
	reciprocal bool
}

func isOne[P number.Precision](n number.Number[P]) bool {
	return number.Abs(n).Equal(number.One[P]())
}

// New returns the multiplier for v.
func New[P number.Precision](v number.Number[P]) Multiplier[P] {
	one := number.One[P]()

	switch {
	case v.IsZero():
		return Multiplier[P]{}
	case number.Abs(v).Less(one):
		return NewRaw(one.Quo(v), true)
	}

	return Multiplier[P]{magnitude: v}
}

// NewRaw returns the multiplier with the given magnitude and reciprocal flag.
// No normalization is applied except that a magnitude of ±1 is never
// reciprocal.
func NewRaw[P number.Precision](magnitude number.Number[P], reciprocal bool) Multiplier[P] {
	if reciprocal && isOne(magnitude) {
		reciprocal = false
	}

	return Multiplier[P]{
		magnitude:  magnitude,
		reciprocal: reciprocal,
	}
}

// FromFloat64 returns the multiplier for v. Values with |v| < 1 are inverted
// before they are converted so they keep their significant bits.
func FromFloat64[P number.Precision](v float64) Multiplier[P] {
	switch {
	case v == 0:
		return Multiplier[P]{}
	case v > -1 && v < 1:
		return NewRaw(number.FromFloat64[P](1/v), true)
	}

	return NewRaw(number.FromFloat64[P](v), false)
}

// FromFloat32 returns the multiplier for v, see FromFloat64.
func FromFloat32[P number.Precision](v float32) Multiplier[P] {
	return FromFloat64[P](float64(v))
}

// FromInt64 returns the multiplier for v.
func FromInt64[P number.Precision](v int64) Multiplier[P] {
	return New(number.FromInt64[P](v))
}

// One returns the identity multiplier.
func One[P number.Precision]() Multiplier[P] {
	return Multiplier[P]{magnitude: number.One[P]()}
}

// Magnitude returns the stored magnitude.
func (m Multiplier[P]) Magnitude() number.Number[P] {
	return m.magnitude
}

// IsReciprocal reports whether the value is 1 / Magnitude.
func (m Multiplier[P]) IsReciprocal() bool {
	return m.reciprocal
}

// IsZero reports whether the value is 0.
func (m Multiplier[P]) IsZero() bool {
	return m.magnitude.IsZero()
}

// Mul returns m * o.
func (m Multiplier[P]) Mul(o Multiplier[P]) Multiplier[P] {
	if o.IsZero() {
		return Multiplier[P]{}
	}

	return m.Div(Multiplier[P]{
		magnitude:  o.magnitude,
		reciprocal: !o.reciprocal,
	})
}

// Div returns m / o. It panics if o is zero.
func (m Multiplier[P]) Div(o Multiplier[P]) Multiplier[P] {
	if m.IsZero() {
		return Multiplier[P]{}
	}

	if o.IsZero() {
		panic(Error.New("division by zero"))
	}

	a, b := m.magnitude, o.magnitude
	smaller := number.Abs(a).Less(number.Abs(b))

	switch {
	case !m.reciprocal && !o.reciprocal:
		// a / b
		if smaller {
			return NewRaw(b.Quo(a), true)
		}

		return NewRaw(a.Quo(b), false)
	case !m.reciprocal && o.reciprocal:
		// a / (1 / b)
		return NewRaw(a.Mul(b), false)
	case m.reciprocal && !o.reciprocal:
		// (1 / a) / b
		return NewRaw(a.Mul(b), true)
	default:
		// (1 / a) / (1 / b) = b / a
		if smaller {
			return NewRaw(b.Quo(a), false)
		}

		return NewRaw(a.Quo(b), true)
	}
}

// Inverse returns 1 / m. The inverse of zero is zero.
func (m Multiplier[P]) Inverse() Multiplier[P] {
	if m.IsZero() {
		return Multiplier[P]{}
	}

	return NewRaw(m.magnitude, !m.reciprocal)
}

// Equal reports whether m and o have the same value.
func (m Multiplier[P]) Equal(o Multiplier[P]) bool {
	if !m.magnitude.Equal(o.magnitude) {
		return false
	}

	return m.reciprocal == o.reciprocal || isOne(m.magnitude)
}

// MulNumber returns n * m. A reciprocal multiplier divides by its magnitude
// instead of multiplying by a truncated fraction.
func (m Multiplier[P]) MulNumber(n number.Number[P]) number.Number[P] {
	if m.reciprocal {
		return n.Quo(m.magnitude)
	}

	return n.Mul(m.magnitude)
}

// DivNumber returns n / m. It panics if m is zero.
func (m Multiplier[P]) DivNumber(n number.Number[P]) number.Number[P] {
	if m.reciprocal {
		return n.Mul(m.magnitude)
	}

	return n.Quo(m.magnitude)
}

// Number returns the value as a number. Reciprocal values lose the precision
// below 2^-F.
func (m Multiplier[P]) Number() number.Number[P] {
	if m.reciprocal && !m.IsZero() {
		return number.One[P]().Quo(m.magnitude)
	}

	return m.magnitude
}

// Float64 returns the value as a float64.
func (m Multiplier[P]) Float64() float64 {
	if m.reciprocal && !m.IsZero() {
		return 1 / m.magnitude.Float64()
	}

	return m.magnitude.Float64()
}

// Float32 returns the value as a float32.
func (m Multiplier[P]) Float32() float32 {
	if m.reciprocal && !m.IsZero() {
		return 1 / m.magnitude.Float32()
	}

	return m.magnitude.Float32()
}

// Int64 returns the integer part of the value. Every reciprocal value is
// between -1 and 1 exclusive and truncates to 0.
func (m Multiplier[P]) Int64() int64 {
	if m.reciprocal && !isOne(m.magnitude) {
		return 0
	}

	return m.magnitude.Int64()
}

// String returns the value as "magnitude" or "1/magnitude".
func (m Multiplier[P]) String() string {
	if m.reciprocal {
		return "1/" + m.magnitude.String()
	}

	return m.magnitude.String()
}
