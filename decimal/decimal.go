package decimal

import (
	"math"
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("decimal")

var ten = big.NewInt(10)

// Block is a fixed point base 10 decimal number. The zero value is 0.
type Block struct {
	Value *big.Int
	Scale int32
}

// New returns value * 10^scale.
func New(value *big.Int, scale int32) Block {
	return Block{
		Value: new(big.Int).Set(value),
		Scale: scale,
	}
}

func (b Block) value() *big.Int {
	if b.Value == nil {
		return new(big.Int)
	}

	return b.Value
}

// Pow10 returns 10^n.
func Pow10(n int64) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(n), nil)
}

// Normalize returns b with the trailing zeros of the value folded into the
// scale. Zero normalizes to 0 * 10^0.
func (b Block) Normalize() Block {
	v := new(big.Int).Set(b.value())
	if v.Sign() == 0 {
		return Block{Value: v}
	}

	scale := b.Scale
	q, r := new(big.Int), new(big.Int)

	for scale < math.MaxInt32 {
		q.QuoRem(v, ten, r)
		if r.Sign() != 0 {
			break
		}

		v, q = q, v
		scale++
	}

	return Block{Value: v, Scale: scale}
}

// Equal reports whether b and o are the same number.
func (b Block) Equal(o Block) bool {
	bn, on := b.Normalize(), o.Normalize()

	return bn.Scale == on.Scale && bn.Value.Cmp(on.Value) == 0
}

// String returns b in plain decimal notation. Digits after the point are
// kept as given by the scale.
func (b Block) String() string {
	v := b.value()

	if b.Scale >= 0 {
		return new(big.Int).Mul(v, Pow10(int64(b.Scale))).String()
	}

	k := -int(b.Scale)

	s := new(big.Int).Abs(v).String()
	if len(s) <= k {
		s = strings.Repeat("0", k-len(s)+1) + s
	}

	sb := &strings.Builder{}

	if v.Sign() < 0 {
		sb.WriteByte('-')
	}

	sb.WriteString(s[:len(s)-k])
	sb.WriteByte('.')
	sb.WriteString(s[len(s)-k:])

	return sb.String()
}

// Parse reads a decimal in the form [+-]digits[.digits]. The scale is the
// negated count of digits after the point.
func Parse(s string) (b Block, err error) {
	defer Error.WrapP(&err)

	text := s
	neg := false

	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		neg = text[0] == '-'
		text = text[1:]
	}

	whole, frac, _ := strings.Cut(text, ".")
	if whole == "" && frac == "" {
		return Block{}, Error.New("invalid decimal: %q", s)
	}

	digits := whole + frac
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Block{}, Error.New("invalid decimal: %q", s)
		}
	}

	if len(frac) > math.MaxInt32 {
		return Block{}, Error.New("scale out of range: %q", s)
	}

	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Block{}, Error.New("invalid decimal: %q", s)
	}

	if neg {
		v.Neg(v)
	}

	return Block{Value: v, Scale: -int32(len(frac))}, nil
}

// Encode writes the value block followed by the scale block.
func (b Block) Encode(e *integer.Encoder) (err error) {
	defer Error.WrapP(&err)

	value := integer.FromBig(b.value())

	err = e.Encode(&value)
	if err != nil {
		return err
	}

	scale := integer.FromBig(big.NewInt(int64(b.Scale)))

	return e.Encode(&scale)
}

// Decode reads a block written by Encode.
func Decode(d *integer.Decoder) (b Block, err error) {
	defer Error.WrapP(&err)

	ib := integer.Block{}

	err = d.Decode(&ib)
	if err != nil {
		return Block{}, err
	}

	v, err := ib.Big()
	if err != nil {
		return Block{}, err
	}

	err = d.Decode(&ib)
	if err != nil {
		return Block{}, err
	}

	scale, err := ib.Big()
	if err != nil {
		return Block{}, err
	}

	if !scale.IsInt64() || scale.Int64() < math.MinInt32 || scale.Int64() > math.MaxInt32 {
		return Block{}, Error.New("scale out of range: %s", scale)
	}

	return Block{Value: v, Scale: int32(scale.Int64())}, nil
}
