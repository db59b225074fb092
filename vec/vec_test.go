package vec

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"

	"github.com/calebcase/oops"

	"github.com/calebcase/fixedpoint/control"
	"github.com/calebcase/fixedpoint/integer"
	"github.com/calebcase/fixedpoint/number"
	"github.com/calebcase/fixedpoint/scale"
)

var (
	mf = scale.FromFloat64[number.Bits32]
	mi = scale.FromInt64[number.Bits32]
)

func w(x, y float64) World {
	return New(number.FromFloat64[number.Bits32](x), number.FromFloat64[number.Bits32](y))
}

func TestArithmetic(t *testing.T) {
	a, b := w(1.5, -2), w(0.25, 4)

	require.True(t, a.Add(b).Equal(w(1.75, 2)))
	require.True(t, a.Sub(b).Equal(w(1.25, -6)))
	require.True(t, a.Neg().Equal(w(-1.5, 2)))
	require.True(t, a.Scale(number.FromFloat64[number.Bits32](2)).Equal(w(3, -4)))
	require.False(t, a.Equal(b))
	require.True(t, World{}.Equal(w(0, 0)))
}

func TestMultiplier(t *testing.T) {
	type TC struct {
		v    World
		m    scale.Multiplier[number.Bits32]
		mul  World
		div  World
		Mark error
	}

	tcs := []TC{
		{v: w(2000, -4000), m: mf(0.001), mul: w(2, -4), div: w(2e6, -4e6), Mark: oops.New("unexpected")},
		{v: w(3, 0.5), m: mi(4), mul: w(12, 2), div: w(0.75, 0.125), Mark: oops.New("unexpected")},
		{v: w(3, 0.5), m: scale.One[number.Bits32](), mul: w(3, 0.5), div: w(3, 0.5), Mark: oops.New("unexpected")},
		{v: w(1e6, 0), m: mf(1e-6), mul: w(1, 0), div: w(1e12, 0), Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.m), func(t *testing.T) {
			got := MultiplierMul(tc.v, tc.m)
			require.True(t, tc.mul.Equal(got), "%v: %s", tc.Mark, spew.Sdump(got.X.String(), got.Y.String()))

			got = MultiplierDiv(tc.v, tc.m)
			require.True(t, tc.div.Equal(got), "%v: %s", tc.Mark, spew.Sdump(got.X.String(), got.Y.String()))
		})
	}
}

func TestScaleAbout(t *testing.T) {
	require.True(t, ScaleAbout(w(10, 10), w(0, 0), mi(2)).Equal(w(5, 5)))
	require.True(t, ScaleAbout(w(10, 10), w(2, 2), mi(2)).Equal(w(6, 6)))
	require.True(t, ScaleAbout(w(10, 10), w(2, 2), mf(0.5)).Equal(w(18, 18)))
	require.True(t, ScaleAbout(w(2, 2), w(2, 2), mf(0.001)).Equal(w(2, 2)))
}

func TestRotate(t *testing.T) {
	type TC struct {
		p, center World
		angle     float64
		want      World
	}

	tcs := []TC{
		{p: w(1, 0), center: w(0, 0), angle: 0, want: w(1, 0)},
		{p: w(1, 0), center: w(0, 0), angle: math.Pi / 2, want: w(0, 1)},
		{p: w(2, 3), center: w(1, 1), angle: math.Pi, want: w(0, -1)},
		{p: w(5, 7), center: w(5, 7), angle: 1.234, want: w(5, 7)},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%g", i, tc.angle), func(t *testing.T) {
			got := Rotate(tc.p, tc.center, tc.angle)
			require.True(t, tc.want.Equal(got), "got (%s, %s)", got.X, got.Y)
		})
	}

	t.Run("approximate", func(t *testing.T) {
		got := Rotate(w(100, 0), w(0, 0), math.Pi/6)
		require.InDelta(t, 100*math.Cos(math.Pi/6), got.X.Float64(), 100*math.Ldexp(1, -15))
		require.InDelta(t, 50, got.Y.Float64(), 100*math.Ldexp(1, -15))
	})
}

func TestPoint26_6(t *testing.T) {
	p := w(3.5, -1).Point26_6()
	require.Equal(t, fixed.Point26_6{X: 224, Y: -64}, p)

	require.True(t, FromPoint26_6[number.Bits32](p).Equal(w(3.5, -1)))
	require.Equal(t, fixed.P(2, 3), w(2, 3).Point26_6())
}

func TestEncodeDecode(t *testing.T) {
	vs := []World{
		{},
		w(3.5, -1),
		w(-1e12, 1e-6),
		w(123456.789, -0.125),
	}

	buf := &bytes.Buffer{}
	enc := integer.NewEncoder(control.NewEncoder(buf))

	for _, v := range vs {
		require.NoError(t, v.Encode(enc))
	}

	data := append([]byte(nil), buf.Bytes()...)
	dec := integer.NewDecoder(control.NewDecoder(buf))

	for i, v := range vs {
		got, err := Decode[number.Bits32](dec)
		require.NoError(t, err, "[%d]", i)
		require.True(t, v.Equal(got), "[%d]", i)
	}

	t.Run("truncated", func(t *testing.T) {
		// The first vector is four single byte fields.
		dec := integer.NewDecoder(control.NewDecoder(bytes.NewReader(data[:3])))

		_, err := Decode[number.Bits32](dec)
		require.Error(t, err)
	})
}
