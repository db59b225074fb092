package number

import (
	"math/big"
)

// Abs returns |a|.
func Abs[P Precision](a Number[P]) Number[P] {
	if a.Sign() < 0 {
		return a.Neg()
	}

	return a
}

// Sqrt returns the square root of a rounded toward zero. It panics if a is
// negative.
func Sqrt[P Precision](a Number[P]) Number[P] {
	r := new(big.Int).Lsh(a.v(), fractionBits[P]())
	return wrap[P](r.Sqrt(r))
}

// Lerp returns a + t * (b - a).
func Lerp[P Precision](a, b, t Number[P]) Number[P] {
	return a.Add(t.Mul(b.Sub(a)))
}

// LerpFloat returns a + (b - a) / (1 / t). Dividing by the reciprocal keeps
// the precision of b - a for small t. A t of exactly 0 returns a.
func LerpFloat[P Precision](a, b Number[P], t float64) Number[P] {
	if t == 0 {
		return a
	}

	d := b.Sub(a)

	r := FromFloat64[P](1 / t)
	if r.IsZero() {
		// t is too large for its reciprocal to be represented.
		return a.Add(d.Mul(FromFloat64[P](t)))
	}

	return a.Add(d.Quo(r))
}

// Trunc returns the largest integer less than or equal to a. For negative
// numbers this is a floor, not a truncation toward zero.
func Trunc[P Precision](a Number[P]) Number[P] {
	f := fractionBits[P]()

	r := new(big.Int).Rsh(a.v(), f)
	return wrap[P](r.Lsh(r, f))
}

// NegativeRound returns a rounded toward zero.
func NegativeRound[P Precision](a Number[P]) Number[P] {
	t := Trunc(a)
	if a.Sign() < 0 && !t.Equal(a) {
		return t.Add(One[P]())
	}

	return t
}

// HighestBit returns the index of the highest set bit of the underlying
// value's magnitude, or 0 if it is zero. It is not the highest bit of the
// integer part.
func HighestBit[P Precision](a Number[P]) int {
	if a.IsZero() {
		return 0
	}

	return a.v().BitLen() - 1
}

// normalize shifts the positive underlying value x into [1, 2) and returns
// the shifted value and the integer log2 as an underlying value.
func normalize(x *big.Int, f uint) (z, y *big.Int) {
	// Halving or doubling until 1 <= z < 2 takes exactly this many steps.
	k := x.BitLen() - int(f) - 1

	z = new(big.Int)
	if k >= 0 {
		z.Rsh(x, uint(k))
	} else {
		z.Lsh(x, uint(-k))
	}

	y = big.NewInt(int64(k))
	y.Lsh(y, f)

	return z, y
}

// Log2Int returns the integer part of log2(a). It is exact only at integer
// powers of two. A non-positive a is a DomainError.
func Log2Int[P Precision](a Number[P]) (Number[P], error) {
	if a.Sign() <= 0 {
		return Number[P]{}, DomainError.New("log2 of %s", a)
	}

	_, y := normalize(a.v(), fractionBits[P]())

	return wrap[P](y), nil
}

// Log2 returns log2(a) to the full precision of F. A non-positive a is a
// DomainError.
func Log2[P Precision](a Number[P]) (Number[P], error) {
	if a.Sign() <= 0 {
		return Number[P]{}, DomainError.New("log2 of %s", a)
	}

	f := fractionBits[P]()
	if f == 0 {
		return Log2Int(a)
	}

	z, y := normalize(a.v(), f)

	two := new(big.Int).Lsh(big.NewInt(2), f)
	b := new(big.Int).Lsh(big.NewInt(1), f-1)

	// Squaring z doubles its logarithm; every time it reaches [2, 4) the next
	// fraction bit of the result is 1.
	for i := uint(0); i < f; i++ {
		z.Mul(z, z)
		z.Rsh(z, f)

		if z.Cmp(two) >= 0 {
			z.Rsh(z, 1)
			y.Add(y, b)
		}

		b.Rsh(b, 1)
	}

	return wrap[P](y), nil
}

// pow2 returns 2^n where n is an underlying integer (not scaled).
func pow2[P Precision](n *big.Int) Number[P] {
	if !n.IsInt64() {
		if n.Sign() < 0 {
			return Number[P]{}
		}

		panic(Error.New("exponent too large: %s", n))
	}

	e := n.Int64()
	if e < 0 {
		return One[P]().Rsh(uint(-e))
	}

	return One[P]().Lsh(uint(e))
}

// Exp2Int returns 2^floor(x). The fraction part of x is dropped, so this is
// exact only at integers.
func Exp2Int[P Precision](x Number[P]) Number[P] {
	return pow2[P](x.Int())
}

// exp2Coefficients of a 5th degree minimax polynomial for 2^r on [0, 1),
// highest degree first.
var exp2Coefficients = [...]float64{
	1.8964611454333148e-3,
	8.9428289841091295e-3,
	5.5866246304520701e-2,
	2.4013971109076949e-1,
	6.9315475247516736e-1,
	9.9999989311082668e-1,
}

// Exp2 returns 2^x. The integer part of x is exact, the fraction part is
// approximated by a polynomial.
func Exp2[P Precision](x Number[P]) Number[P] {
	if x.Sign() < 0 {
		return One[P]().Quo(Exp2(x.Neg()))
	}

	n := x.Int()
	r := x.Sub(FromBig[P](n, false))
	if r.IsZero() {
		return pow2[P](n)
	}

	var p Number[P]
	for _, c := range exp2Coefficients {
		p = p.Mul(r).Add(FromFloat64[P](c))
	}

	// n is non-negative here.
	if !n.IsInt64() {
		panic(Error.New("exponent too large: %s", n))
	}

	return p.Lsh(uint(n.Int64()))
}

// Log returns log(a) in base. Both a and base must be positive and base must
// not be 1.
func Log[P Precision](a, base Number[P]) (Number[P], error) {
	la, err := Log2(a)
	if err != nil {
		return Number[P]{}, err
	}

	lb, err := Log2(base)
	if err != nil {
		return Number[P]{}, err
	}

	if lb.IsZero() {
		return Number[P]{}, DomainError.New("log base %s", base)
	}

	return la.Quo(lb), nil
}

// LogInt returns Log2Int(a) / Log2Int(base). It is accurate only when both
// are powers of two.
func LogInt[P Precision](a, base Number[P]) (Number[P], error) {
	la, err := Log2Int(a)
	if err != nil {
		return Number[P]{}, err
	}

	lb, err := Log2Int(base)
	if err != nil {
		return Number[P]{}, err
	}

	if lb.IsZero() {
		return Number[P]{}, DomainError.New("log base %s", base)
	}

	return la.Quo(lb), nil
}

// Exp returns base^x computed as 2^(x * log2(base)).
func Exp[P Precision](x, base Number[P]) (Number[P], error) {
	lb, err := Log2(base)
	if err != nil {
		return Number[P]{}, err
	}

	return Exp2(x.Mul(lb)), nil
}

// ExpInt returns Exp2Int(x * Log2Int(base)). It is accurate only when base is
// a power of two and the product is an integer.
func ExpInt[P Precision](x, base Number[P]) (Number[P], error) {
	lb, err := Log2Int(base)
	if err != nil {
		return Number[P]{}, err
	}

	return Exp2Int(x.Mul(lb)), nil
}

// ExpIntAccurate returns base^floor(x) by repeated multiplication. It takes
// |floor(x)| multiplications, so x should be small.
func ExpIntAccurate[P Precision](x, base Number[P]) Number[P] {
	n := x.Int64()

	neg := n < 0
	if neg {
		n = -n
	}

	r := One[P]()
	for i := int64(0); i < n; i++ {
		r = r.Mul(base)
	}

	if neg {
		return One[P]().Quo(r)
	}

	return r
}
