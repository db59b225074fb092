package control_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/oops"
)

func shortName(i int, data []byte) string {
	sb := &strings.Builder{}

	sb.WriteString(fmt.Sprintf("%02d/", i))

	if len(data) == 0 {
		sb.WriteString("(len=0)")

		return sb.String()
	}

	if len(data) > 4 {
		sb.WriteString(fmt.Sprintf("%x...(len=%d)", data[:4], len(data)))

		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%x", data))

	return sb.String()
}

func TestEncoder(t *testing.T) {
	type TC struct {
		Input  []byte
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  []byte{0b_0000_0000},
			Output: []byte{0b_1000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0111_1111},
			Output: []byte{0b_1111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_1000_0000},
			Output: []byte{0b_0100_0000, 0b_1000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0001_1111, 0b_1111_1111},
			Output: []byte{0b_0011_1111, 0b_1111_1111},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0010_0000, 0b_0000_0000},
			Output: []byte{0b_0100_0001, 0b_0010_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0001},
			Output: []byte{0b_0001_1000, 0b_0000_0000, 0b_0000_0001},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
			Output: []byte{0b_0100_0010, 0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  []byte{0x03, 0x80, 0x00, 0x00, 0x00},
			Output: []byte{0b_0100_0100, 0x03, 0x80, 0x00, 0x00, 0x00},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  make([]byte, 64),
			Output: append([]byte{0b_0111_1111}, make([]byte, 64)...),
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  make([]byte, 65),
			Output: append([]byte{0b_0000_1000, 0b_0100_0000}, make([]byte, 65)...),
			Mark:   oops.New("unexpected"),
		},
		{
			Input: make([]byte, 1024),
			Output: append(
				[]byte{0b_0000_1001, 0b_0000_0011, 0b_1111_1111},
				make([]byte, 1024)...,
			),
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(shortName(i, tc.Output), func(t *testing.T) {
			output := &bytes.Buffer{}
			e := control.NewEncoder(output)

			err := e.Data(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output.Bytes(), tc.Mark)
			require.Equal(t, uint64(len(tc.Output)), e.Written(), tc.Mark)
		})
	}

	t.Run("empty", func(t *testing.T) {
		e := control.NewEncoder(&bytes.Buffer{})

		err := e.Data(nil)
		require.Error(t, err)
		require.True(t, control.Error.Has(err))
	})
}

func TestFits(t *testing.T) {
	type TC struct {
		t    control.Type
		data []byte
		want bool
	}

	tcs := []TC{
		{t: control.Data, data: []byte{0x7f}, want: true},
		{t: control.Data, data: []byte{0x80}, want: false},
		{t: control.Data1, data: []byte{0x1f, 0xff}, want: true},
		{t: control.Data1, data: []byte{0x20, 0x00}, want: false},
		{t: control.Data1, data: []byte{0x01}, want: false},
		{t: control.Data2, data: []byte{0x0f, 0xff, 0xff}, want: true},
		{t: control.DataSize, data: []byte{0x00}, want: false},
		{t: control.DataSizeSize, data: []byte{0x00}, want: false},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.t.Abbr), func(t *testing.T) {
			require.Equal(t, tc.want, tc.t.Fits(tc.data))
		})
	}
}
