package number

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("number")

// DomainError is the class of errors returned when a function is evaluated
// outside of its domain (e.g. the logarithm of a non-positive number).
var DomainError = errs.Class("domain")

// Precision selects the number of fraction bits.
type Precision interface {
	FractionBits() uint
}

// Bits15 has 15 fraction bits. It is used for rotation coefficients.
type Bits15 struct{}

// FractionBits implements Precision.
func (Bits15) FractionBits() uint { return 15 }

// Bits32 has 32 fraction bits.
type Bits32 struct{}

// FractionBits implements Precision.
func (Bits32) FractionBits() uint { return 32 }

// Bits64 has 64 fraction bits.
type Bits64 struct{}

// FractionBits implements Precision.
func (Bits64) FractionBits() uint { return 64 }

// Scalar is a world coordinate.
type Scalar = Number[Bits32]

var bigZero = new(big.Int)

// Number is a fixed point number with the fraction bits of P. The zero value
// is 0.
//
// Number is an immutable value. Only the *Assign methods change the receiver
// and they do so by replacing it.
type Number[P Precision] struct {
	val *big.Int
}

func fractionBits[P Precision]() uint {
	var p P
	return p.FractionBits()
}

func wrap[P Precision](val *big.Int) Number[P] {
	return Number[P]{val: val}
}

// v returns the underlying value. It must not be modified.
func (n Number[P]) v() *big.Int {
	if n.val == nil {
		return bigZero
	}

	return n.val
}

// FromInt64 returns v.
func FromInt64[P Precision](v int64) Number[P] {
	return wrap[P](new(big.Int).Lsh(big.NewInt(v), fractionBits[P]()))
}

// FromUint64 returns v.
func FromUint64[P Precision](v uint64) Number[P] {
	i := new(big.Int).SetUint64(v)
	return wrap[P](i.Lsh(i, fractionBits[P]()))
}

// One returns 1.
func One[P Precision]() Number[P] {
	return wrap[P](new(big.Int).Lsh(big.NewInt(1), fractionBits[P]()))
}

// FromBig returns v. If underlying is true v is already scaled by 2^F,
// otherwise it is an integer and is scaled.
func FromBig[P Precision](v *big.Int, underlying bool) Number[P] {
	if v == nil {
		return Number[P]{}
	}

	if underlying {
		return wrap[P](new(big.Int).Set(v))
	}

	return wrap[P](new(big.Int).Lsh(v, fractionBits[P]()))
}

// FromFloat64 returns v rounded to the nearest multiple of 2^-F, with ties
// rounded away from zero. It panics if v is NaN or infinite.
func FromFloat64[P Precision](v float64) Number[P] {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(Error.New("non-finite value: %v", v))
	}

	if v == 0 {
		return Number[P]{}
	}

	// v = mant * 2^(exp-53) exactly.
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(math.Ldexp(frac, 53)))

	shift := exp - 53 + int(fractionBits[P]())
	if shift >= 0 {
		return wrap[P](mant.Lsh(mant, uint(shift)))
	}

	return wrap[P](roundShift(mant, uint(-shift)))
}

// FromFloat32 returns v, see FromFloat64.
func FromFloat32[P Precision](v float32) Number[P] {
	return FromFloat64[P](float64(v))
}

// roundShift returns x / 2^s rounded half away from zero. s must be positive.
func roundShift(x *big.Int, s uint) *big.Int {
	r := new(big.Int).Abs(x)
	r.Add(r, new(big.Int).Lsh(big.NewInt(1), s-1))
	r.Rsh(r, s)

	if x.Sign() < 0 {
		r.Neg(r)
	}

	return r
}

// ParseUnderlying parses the decimal text of an underlying value. No scaling
// is applied.
func ParseUnderlying[P Precision](s string) (Number[P], error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number[P]{}, Error.New("invalid underlying value: %q", s)
	}

	return wrap[P](i), nil
}

// ParseInt parses the decimal text of an integer and scales it.
func ParseInt[P Precision](s string) (Number[P], error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number[P]{}, Error.New("invalid integer: %q", s)
	}

	return wrap[P](i.Lsh(i, fractionBits[P]())), nil
}

// FractionBits returns F.
func (n Number[P]) FractionBits() uint {
	return fractionBits[P]()
}

// Underlying returns a copy of the scaled integer value.
func (n Number[P]) Underlying() *big.Int {
	return new(big.Int).Set(n.v())
}

// UnderlyingString returns the decimal text of the scaled integer value.
func (n Number[P]) UnderlyingString() string {
	return n.v().String()
}

// Add returns n + o.
func (n Number[P]) Add(o Number[P]) Number[P] {
	return wrap[P](new(big.Int).Add(n.v(), o.v()))
}

// Sub returns n - o.
func (n Number[P]) Sub(o Number[P]) Number[P] {
	return wrap[P](new(big.Int).Sub(n.v(), o.v()))
}

// Neg returns -n.
func (n Number[P]) Neg() Number[P] {
	return wrap[P](new(big.Int).Neg(n.v()))
}

// Mul returns n * o rounded toward negative infinity.
func (n Number[P]) Mul(o Number[P]) Number[P] {
	r := new(big.Int).Mul(n.v(), o.v())
	return wrap[P](r.Rsh(r, fractionBits[P]()))
}

// Quo returns n / o truncated toward zero. It panics if o is zero.
func (n Number[P]) Quo(o Number[P]) Number[P] {
	r := new(big.Int).Lsh(n.v(), fractionBits[P]())
	return wrap[P](r.Quo(r, o.v()))
}

// Rem returns the remainder of the underlying values. The result has the
// sign of n. It panics if o is zero.
func (n Number[P]) Rem(o Number[P]) Number[P] {
	return wrap[P](new(big.Int).Rem(n.v(), o.v()))
}

// Lsh shifts the underlying value left, multiplying by 2^s.
func (n Number[P]) Lsh(s uint) Number[P] {
	return wrap[P](new(big.Int).Lsh(n.v(), s))
}

// Rsh shifts the underlying value right, dividing by 2^s and rounding toward
// negative infinity.
func (n Number[P]) Rsh(s uint) Number[P] {
	return wrap[P](new(big.Int).Rsh(n.v(), s))
}

// AddAssign sets n to n + o.
func (n *Number[P]) AddAssign(o Number[P]) { *n = n.Add(o) }

// SubAssign sets n to n - o.
func (n *Number[P]) SubAssign(o Number[P]) { *n = n.Sub(o) }

// MulAssign sets n to n * o.
func (n *Number[P]) MulAssign(o Number[P]) { *n = n.Mul(o) }

// QuoAssign sets n to n / o.
func (n *Number[P]) QuoAssign(o Number[P]) { *n = n.Quo(o) }

// RemAssign sets n to n % o.
func (n *Number[P]) RemAssign(o Number[P]) { *n = n.Rem(o) }

// MulPrecision returns a * b where b has a different precision. The result
// keeps the precision of a.
func MulPrecision[P, Q Precision](a Number[P], b Number[Q]) Number[P] {
	r := new(big.Int).Mul(a.v(), b.v())
	return wrap[P](r.Rsh(r, fractionBits[Q]()))
}

// Convert returns a at the precision Q. Dropped fraction bits round toward
// negative infinity.
func Convert[Q, P Precision](a Number[P]) Number[Q] {
	return wrap[Q](rescale(a.v(), fractionBits[P](), fractionBits[Q]()))
}

func rescale(v *big.Int, from, to uint) *big.Int {
	if to >= from {
		return new(big.Int).Lsh(v, to-from)
	}

	return new(big.Int).Rsh(v, from-to)
}

// Cmp compares n and o and returns -1, 0 or +1.
func (n Number[P]) Cmp(o Number[P]) int {
	return n.v().Cmp(o.v())
}

// Equal reports whether n == o.
func (n Number[P]) Equal(o Number[P]) bool { return n.Cmp(o) == 0 }

// Less reports whether n < o.
func (n Number[P]) Less(o Number[P]) bool { return n.Cmp(o) < 0 }

// LessEq reports whether n <= o.
func (n Number[P]) LessEq(o Number[P]) bool { return n.Cmp(o) <= 0 }

// Greater reports whether n > o.
func (n Number[P]) Greater(o Number[P]) bool { return n.Cmp(o) > 0 }

// GreaterEq reports whether n >= o.
func (n Number[P]) GreaterEq(o Number[P]) bool { return n.Cmp(o) >= 0 }

// Sign returns -1, 0 or +1.
func (n Number[P]) Sign() int {
	return n.v().Sign()
}

// IsZero reports whether n == 0.
func (n Number[P]) IsZero() bool {
	return n.Sign() == 0
}

func (n Number[P]) float() *big.Float {
	f := new(big.Float).SetInt(n.v())
	return f.SetMantExp(f, -int(fractionBits[P]()))
}

// Float64 returns the nearest float64. Precision beyond the float64 mantissa
// is lost.
func (n Number[P]) Float64() float64 {
	f, _ := n.float().Float64()
	return f
}

// Float32 returns the nearest float32.
func (n Number[P]) Float32() float32 {
	f, _ := n.float().Float32()
	return f
}

// Int returns the integer part of n rounded toward negative infinity.
func (n Number[P]) Int() *big.Int {
	return new(big.Int).Rsh(n.v(), fractionBits[P]())
}

// Int64 returns the integer part of n rounded toward negative infinity. The
// result is undefined if it does not fit in an int64.
func (n Number[P]) Int64() int64 {
	return n.Int().Int64()
}

// Uint64 returns the integer part of n rounded toward negative infinity. The
// result is undefined if it does not fit in a uint64.
func (n Number[P]) Uint64() uint64 {
	return n.Int().Uint64()
}
