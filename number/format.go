package number

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/calebcase/fixedpoint/decimal"
)

var superscripts = [10]rune{
	'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹',
}

// Superscript returns the decimal digits of s as Unicode superscript glyphs.
// Other characters are kept as is.
func Superscript(s string) string {
	sb := &strings.Builder{}

	for _, r := range s {
		if r >= '0' && r <= '9' {
			r = superscripts[r-'0']
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// DisplayIntParts returns the integer part of n (rounded toward negative
// infinity) as decimal text. If sigDigits is positive and the integer has
// more digits than that, the mantissa is cut to sigDigits significant digits
// and the decimal exponent is returned separately. Otherwise exponent is
// empty.
//
//  1234567 with 3 digits = "1.23", "6"
//  1000000 with 3 digits = "1", "6"
func (n Number[P]) DisplayIntParts(sigDigits int) (mantissa, exponent string) {
	a := n.Int().String()

	if sigDigits <= 0 {
		return a, ""
	}

	sign := 0
	if a[0] == '-' {
		sign = 1
	}

	if len(a) <= sigDigits+sign {
		return a, ""
	}

	exp := len(a) - sign - 1
	digits := a[sign : sign+sigDigits]

	m := digits[:1] + "." + digits[1:]
	m = strings.TrimRight(m, "0")
	m = strings.TrimSuffix(m, ".")

	return a[:sign] + m, strconv.Itoa(exp)
}

// DisplayIntString returns the integer part of n as decimal text, switching
// to scientific notation past sigDigits digits. The exponent is written as
// "e6", or as "×10⁶" when fancy is set.
func (n Number[P]) DisplayIntString(sigDigits int, fancy bool) string {
	m, e := n.DisplayIntParts(sigDigits)

	switch {
	case e == "":
		return m
	case fancy:
		return m + "×10" + Superscript(e)
	default:
		return m + "e" + e
	}
}

// String returns the exact decimal value of n.
func (n Number[P]) String() string {
	return n.Decimal().String()
}

// Decimal returns the exact base 10 form of n with no trailing zeros.
func (n Number[P]) Decimal() decimal.Block {
	f := fractionBits[P]()

	// v / 2^f = v * 5^f / 10^f
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(f)), nil)

	return decimal.Block{
		Value: five.Mul(five, n.v()),
		Scale: -int32(f),
	}.Normalize()
}

// FromDecimal returns the number nearest to d. Ties round away from zero.
func FromDecimal[P Precision](d decimal.Block) Number[P] {
	f := fractionBits[P]()

	v := new(big.Int)
	if d.Value != nil {
		v.Lsh(d.Value, f)
	}

	if d.Scale >= 0 {
		return wrap[P](v.Mul(v, decimal.Pow10(int64(d.Scale))))
	}

	den := decimal.Pow10(-int64(d.Scale))

	q, r := new(big.Int).QuoRem(v, den, new(big.Int))
	if r.Abs(r).Lsh(r, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(int64(v.Sign())))
	}

	return wrap[P](q)
}

// ParseDecimal parses s as a decimal, see decimal.Parse, and rounds it to the
// nearest number.
func ParseDecimal[P Precision](s string) (_ Number[P], err error) {
	defer Error.WrapP(&err)

	d, err := decimal.Parse(s)
	if err != nil {
		return Number[P]{}, err
	}

	return FromDecimal[P](d), nil
}
