package number

import (
	"math"
	"math/big"

	"golang.org/x/image/math/fixed"

	"github.com/calebcase/fixedpoint/integer"
)

// Block returns the serialized form of n: its sign and the big-endian
// magnitude of the underlying value.
func (n Number[P]) Block() integer.Block {
	return integer.FromBig(n.v())
}

// FromBlock returns the number serialized in b.
func FromBlock[P Precision](b integer.Block) (Number[P], error) {
	i, err := b.Big()
	if err != nil {
		return Number[P]{}, Error.Wrap(err)
	}

	return wrap[P](i), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n Number[P]) MarshalBinary() (data []byte, err error) {
	return n.Block().MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number[P]) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	var b integer.Block

	err = b.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	*n, err = FromBlock[P](b)

	return err
}

// MarshalText implements encoding.TextMarshaler. The text is the underlying
// value so no precision is lost.
func (n Number[P]) MarshalText() (text []byte, err error) {
	return []byte(n.UnderlyingString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number[P]) UnmarshalText(text []byte) (err error) {
	*n, err = ParseUnderlying[P](string(text))
	return err
}

// Encode writes n to e.
func (n Number[P]) Encode(e *integer.Encoder) (err error) {
	b := n.Block()
	return e.Encode(&b)
}

// Decode reads a number from d.
func Decode[P Precision](d *integer.Decoder) (_ Number[P], err error) {
	var b integer.Block

	err = d.Decode(&b)
	if err != nil {
		return Number[P]{}, err
	}

	return FromBlock[P](b)
}

// Int26_6 returns n as a 26.6 fixed point number rounded toward negative
// infinity. Values outside of the int32 range saturate.
func (n Number[P]) Int26_6() fixed.Int26_6 {
	v := rescale(n.v(), fractionBits[P](), 6)

	switch {
	case !v.IsInt64() && v.Sign() < 0, v.IsInt64() && v.Int64() < math.MinInt32:
		return fixed.Int26_6(math.MinInt32)
	case !v.IsInt64(), v.Int64() > math.MaxInt32:
		return fixed.Int26_6(math.MaxInt32)
	}

	return fixed.Int26_6(v.Int64())
}

// FromInt26_6 returns x.
func FromInt26_6[P Precision](x fixed.Int26_6) Number[P] {
	return Convert[P](wrap[fixed6](big.NewInt(int64(x))))
}

// fixed6 is the precision of fixed.Int26_6.
type fixed6 struct{}

func (fixed6) FractionBits() uint { return 6 }
