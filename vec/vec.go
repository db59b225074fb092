// Package vec provides two component vectors of fixed point numbers.
package vec

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/calebcase/fixedpoint/integer"
	"github.com/calebcase/fixedpoint/number"
	"github.com/calebcase/fixedpoint/scale"
)

// Vec is a 2D vector.
type Vec[P number.Precision] struct {
	X, Y number.Number[P]
}

// World is a world coordinate.
type World = Vec[number.Bits32]

// New returns the vector (x, y).
func New[P number.Precision](x, y number.Number[P]) Vec[P] {
	return Vec[P]{X: x, Y: y}
}

// Add returns v + o.
func (v Vec[P]) Add(o Vec[P]) Vec[P] {
	return Vec[P]{v.X.Add(o.X), v.Y.Add(o.Y)}
}

// Sub returns v - o.
func (v Vec[P]) Sub(o Vec[P]) Vec[P] {
	return Vec[P]{v.X.Sub(o.X), v.Y.Sub(o.Y)}
}

// Neg returns -v.
func (v Vec[P]) Neg() Vec[P] {
	return Vec[P]{v.X.Neg(), v.Y.Neg()}
}

// Scale returns v * n.
func (v Vec[P]) Scale(n number.Number[P]) Vec[P] {
	return Vec[P]{v.X.Mul(n), v.Y.Mul(n)}
}

// Equal reports whether both components are equal.
func (v Vec[P]) Equal(o Vec[P]) bool {
	return v.X.Equal(o.X) && v.Y.Equal(o.Y)
}

// MultiplierMul returns v * m, applied to each component.
func MultiplierMul[P number.Precision](v Vec[P], m scale.Multiplier[P]) Vec[P] {
	return Vec[P]{m.MulNumber(v.X), m.MulNumber(v.Y)}
}

// MultiplierDiv returns v / m, applied to each component.
func MultiplierDiv[P number.Precision](v Vec[P], m scale.Multiplier[P]) Vec[P] {
	return Vec[P]{m.DivNumber(v.X), m.DivNumber(v.Y)}
}

// ScaleAbout returns p moved toward (or away from) center so that its
// distance from center is divided by m.
func ScaleAbout[P number.Precision](p, center Vec[P], m scale.Multiplier[P]) Vec[P] {
	return center.Add(MultiplierDiv(p.Sub(center), m))
}

// Rotate returns p rotated about center by angle radians. The sine and cosine
// are rounded to 15 fraction bits.
func Rotate[P number.Precision](p, center Vec[P], angle float64) Vec[P] {
	s := number.FromFloat64[number.Bits15](math.Sin(angle))
	c := number.FromFloat64[number.Bits15](math.Cos(angle))

	a := p.Sub(center)

	return Vec[P]{
		X: center.X.Add(number.MulPrecision(a.X, c)).Sub(number.MulPrecision(a.Y, s)),
		Y: center.Y.Add(number.MulPrecision(a.X, s)).Add(number.MulPrecision(a.Y, c)),
	}
}

// Point26_6 returns v as a 26.6 fixed point. Components outside of the int32
// range saturate.
func (v Vec[P]) Point26_6() fixed.Point26_6 {
	return fixed.Point26_6{X: v.X.Int26_6(), Y: v.Y.Int26_6()}
}

// FromPoint26_6 returns p.
func FromPoint26_6[P number.Precision](p fixed.Point26_6) Vec[P] {
	return Vec[P]{number.FromInt26_6[P](p.X), number.FromInt26_6[P](p.Y)}
}

// Encode writes X then Y to e.
func (v Vec[P]) Encode(e *integer.Encoder) (err error) {
	err = v.X.Encode(e)
	if err != nil {
		return err
	}

	return v.Y.Encode(e)
}

// Decode reads a vector written by Encode.
func Decode[P number.Precision](d *integer.Decoder) (v Vec[P], err error) {
	v.X, err = number.Decode[P](d)
	if err != nil {
		return Vec[P]{}, err
	}

	v.Y, err = number.Decode[P](d)
	if err != nil {
		return Vec[P]{}, err
	}

	return v, nil
}
