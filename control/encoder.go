package control

import (
	"io"
	"math/big"
)

// Encoder writes framed fields.
type Encoder interface {
	Data(data []byte) (err error)
	Written() uint64
}

type encoder struct {
	w io.Writer

	written uint64
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(p []byte) (err error) {
	n, err := e.w.Write(p)
	e.written += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Data writes data using the smallest control block that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	if size == 0 {
		return Error.New("invalid: size=0")
	}

	for _, t := range inline {
		if t.Fits(data) {
			return e.write(append(
				[]byte{t.Prefix | data[0]},
				data[1:]...,
			))
		}
	}

	if size <= 64 {
		return e.write(append(
			[]byte{DataSize.Prefix | byte(size-1)},
			data...,
		))
	}

	s := new(big.Int).SetUint64(uint64(size - 1))
	sb := s.Bytes()

	// Note: size-1 is at least 64 here so sb is never empty.
	if len(sb) > int(DataSizeSize.Mask)+1 {
		return Error.New("invalid: size=%d", size)
	}

	err = e.write(append(
		[]byte{DataSizeSize.Prefix | byte(len(sb)-1)},
		sb...,
	))
	if err != nil {
		return err
	}

	return e.write(data)
}

// Written returns the number of bytes written so far.
func (e *encoder) Written() uint64 {
	return e.written
}
