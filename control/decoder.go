package control

import (
	"errors"
	"io"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads framed fields.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() (_ uint64, err error)
	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value    [1]byte
	t        Type
	finished bool

	size uint64
	data []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(p []byte) (err error) {
	n, err := io.ReadFull(d.r, p)
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// skip discards the unread remainder of the current field.
func (d *decoder) skip() (err error) {
	if d.finished {
		return nil
	}

	size, err := d.Size()
	if err != nil {
		return err
	}

	remaining := int64(size)
	if d.t.Inline > 0 {
		// The first byte of the data lives in the control block.
		remaining--
	}

	n, err := io.CopyN(io.Discard, d.r, remaining)
	d.consumed += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	d.finished = true

	return nil
}

// Next advances to the next field. It returns false at the end of the input
// or on error. Any unread data in the current field is skipped.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	if d.t != Unknown {
		d.err = d.skip()
		if d.err != nil {
			return false
		}
	}

	d.value[0] = 0
	d.t = Unknown
	d.size = 0
	d.data = nil
	d.finished = false

	n, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	if t == Data {
		d.finished = true
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Size returns the number of data bytes in the current field.
func (d *decoder) Size() (_ uint64, err error) {
	defer func() {
		if err != nil {
			d.size = 0
			d.err = err
		}
	}()

	if d.size != 0 {
		return d.size, nil
	}

	switch {
	case d.t.Inline > 0:
		d.size = uint64(d.t.Inline)
	case d.t == DataSize:
		d.size = uint64(d.value[0]&d.t.Mask) + 1
	case d.t == DataSizeSize:
		sizeBytes := make([]byte, int(d.value[0]&d.t.Mask)+1)

		err = d.read(sizeBytes)
		if err != nil {
			return 0, err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			return 0, Error.New("unimplemented: size >= 2^64")
		}

		d.size = size.Uint64()
	default:
		return 0, oops.Trace(ErrInvalidOperation)
	}

	return d.size, nil
}

// Data reads the data bytes of the current field.
func (d *decoder) Data() (data []byte, err error) {
	defer func() {
		if err != nil {
			d.data = nil
			d.err = err
		}
	}()

	if d.data != nil {
		return d.data, nil
	}

	if d.finished && d.t != Data {
		return nil, Error.New("data already skipped")
	}

	size, err := d.Size()
	if err != nil {
		return nil, err
	}

	data = make([]byte, size)

	if d.t.Inline > 0 {
		data[0] = d.value[0] & d.t.Mask

		err = d.read(data[1:])
	} else {
		err = d.read(data)
	}

	if err != nil {
		return nil, err
	}

	d.data = data

	d.finished = true

	return d.data, nil
}
