package integer

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/fixedpoint/control"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number stored as a sign and a big-endian
// magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	value := new(big.Int).Abs(i).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(value) == 0 {
		value = []byte{0}
	}

	return Block{
		Value:    value,
		Negative: i.Sign() < 0,
	}
}

// Big returns the integer held by the block. An empty value is zero. A
// negative zero is rejected.
func (b Block) Big() (i *big.Int, err error) {
	i = new(big.Int).SetBytes(b.Value)

	if b.Negative {
		if i.Sign() == 0 {
			return nil, Error.New("negative zero")
		}

		i.Neg(i)
	}

	return i, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Decoder reads blocks written by an Encoder.
type Decoder struct {
	cd control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(cd control.Decoder) *Decoder {
	return &Decoder{
		cd: cd,
	}
}

func (d *Decoder) field(name string) (data []byte, err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, d.cd.Err()
		}

		return nil, Error.New("missing %s field", name)
	}

	return d.cd.Data()
}

// Decode reads the sign field followed by the magnitude field.
func (d *Decoder) Decode(b *Block) (err error) {
	defer Error.WrapP(&err)

	sign, err := d.field("sign")
	if err != nil {
		return err
	}

	if len(sign) != 1 || sign[0] > 1 {
		return Error.New("invalid sign field: %x", sign)
	}

	value, err := d.field("magnitude")
	if err != nil {
		return err
	}

	b.Negative = sign[0] == 1
	b.Value = value

	return nil
}

// Encoder writes a block as two fields: the sign as a single bit and the
// magnitude as the smallest data field that holds it.
type Encoder struct {
	ce control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(ce control.Encoder) *Encoder {
	return &Encoder{
		ce: ce,
	}
}

// Encode writes a block.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	var sign byte
	if b.Negative {
		sign = 1
	}

	err = e.ce.Data([]byte{sign})
	if err != nil {
		return err
	}

	value := b.Value
	if len(value) == 0 {
		value = []byte{0}
	}

	return e.ce.Data(value)
}
