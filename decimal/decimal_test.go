package decimal

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/integer"
)

func d(v int64, scale int32) Block {
	return New(big.NewInt(v), scale)
}

func TestString(t *testing.T) {
	type TC struct {
		in   Block
		want string
	}

	tcs := []TC{
		{in: Block{}, want: "0"},
		{in: d(123, -2), want: "1.23"},
		{in: d(-123, -2), want: "-1.23"},
		{in: d(150, -2), want: "1.50"},
		{in: d(5, -3), want: "0.005"},
		{in: d(-5, -1), want: "-0.5"},
		{in: d(12, 3), want: "12000"},
		{in: d(0, -2), want: "0.00"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.want), func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.String())
		})
	}
}

func TestNormalize(t *testing.T) {
	type TC struct {
		in   Block
		want Block
	}

	tcs := []TC{
		{in: d(150, -2), want: d(15, -1)},
		{in: d(1000, 0), want: d(1, 3)},
		{in: d(0, -7), want: d(0, 0)},
		{in: Block{}, want: d(0, 0)},
		{in: d(-7, 2), want: d(-7, 2)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.in), func(t *testing.T) {
			got := tc.in.Normalize()
			require.Equal(t, tc.want.Scale, got.Scale)
			require.Equal(t, 0, tc.want.Value.Cmp(got.Value))
			require.True(t, tc.in.Equal(tc.want))
		})
	}

	require.False(t, d(1, 0).Equal(d(1, 1)))
}

func TestParse(t *testing.T) {
	type TC struct {
		in   string
		want Block
		err  bool
	}

	tcs := []TC{
		{in: "1.23", want: d(123, -2)},
		{in: "-1.50", want: d(-150, -2)},
		{in: "+7", want: d(7, 0)},
		{in: ".5", want: d(5, -1)},
		{in: "5.", want: d(5, 0)},
		{in: "007", want: d(7, 0)},
		{in: "", err: true},
		{in: "-", err: true},
		{in: ".", err: true},
		{in: "1.2.3", err: true},
		{in: "1e3", err: true},
		{in: "--1", err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.in), func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.err {
				require.Error(t, err)
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want.Scale, got.Scale)
			require.Equal(t, 0, tc.want.Value.Cmp(got.Value))
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := integer.NewEncoder(control.NewEncoder(buf))

	require.NoError(t, d(35, -1).Encode(enc))
	require.Equal(t, []byte{0x80, 0xa3, 0x81, 0x81}, buf.Bytes())

	bs := []Block{
		{},
		d(-123456789, -30),
		New(new(big.Int).Lsh(big.NewInt(1), 300), 1<<30),
	}

	for _, b := range bs {
		require.NoError(t, b.Encode(enc))
	}

	dec := integer.NewDecoder(control.NewDecoder(buf))

	got, err := Decode(dec)
	require.NoError(t, err)
	require.Equal(t, "3.5", got.String())

	for i, b := range bs {
		got, err := Decode(dec)
		require.NoError(t, err, "[%d]", i)
		require.Equal(t, b.Scale, got.Scale, "[%d]", i)
		require.Equal(t, 0, b.value().Cmp(got.Value), "[%d]", i)
	}

	t.Run("scale out of range", func(t *testing.T) {
		buf := &bytes.Buffer{}
		enc := integer.NewEncoder(control.NewEncoder(buf))

		value := integer.FromBig(big.NewInt(1))
		scale := integer.FromBig(big.NewInt(1 << 40))
		require.NoError(t, enc.Encode(&value))
		require.NoError(t, enc.Encode(&scale))

		_, err := Decode(integer.NewDecoder(control.NewDecoder(buf)))
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("missing scale", func(t *testing.T) {
		_, err := Decode(integer.NewDecoder(control.NewDecoder(bytes.NewReader([]byte{0x80, 0xa3}))))
		require.Error(t, err)
	})
}
