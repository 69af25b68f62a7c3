package archimedes_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbolino/archimedes"
)

func fuzzSeeds(f *testing.F) {
	seeds := [][4]int64{
		{1, 2, 1, 3},
		{-1, 2, 1, -3},
		{0, -5, 0, 7},
		{MaxInt, MinInt, MinInt, MaxInt},
		{MinInt, MinInt, MaxInt, MaxInt},
		{MaxInt - 1, MaxInt, MaxInt - 2, MaxInt - 1},
		{P1 * P2, P3, -P4, P1},
		{1 << 62, 3, 1 << 62, -3},
	}
	for _, s := range seeds {
		f.Add(s[0], s[1], s[2], s[3])
	}
}

func mulBig(a, b int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
}

func FuzzRational_Cmp(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, t1, b1, t2, b2 int64) {
		if b1 == 0 || b2 == 0 {
			t.Skip()
		}
		x, y := New(t1, b1), New(t2, b2)
		want := x.BigRat().Cmp(y.BigRat())
		require.Equal(t, want, x.Cmp(y), "(%s)<=>(%s)", x, y)
		require.Equal(t, -want, y.Cmp(x), "(%s)<=>(%s)", y, x)
		require.Equal(t, want == 0, x.Equal(y), "(%s)==(%s)", x, y)
	})
}

func FuzzRational_TryAdd(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, t1, b1, t2, b2 int64) {
		if b1 == 0 || b2 == 0 {
			t.Skip()
		}
		x, y := New(t1, b1), New(t2, b2)
		// the exact unreduced components, checked against int64 range
		top := new(big.Int).Add(mulBig(t1, b2), mulBig(b1, t2))
		bottom := mulBig(b1, b2)
		z, err := x.TryAdd(y)
		switch {
		case !top.IsInt64():
			require.ErrorIs(t, err, archimedes.ErrNumOverflow)
		case !bottom.IsInt64():
			require.ErrorIs(t, err, archimedes.ErrDenOverflow)
		default:
			require.NoError(t, err)
			require.Equal(t, top.Int64(), z.Num())
			require.Equal(t, bottom.Int64(), z.Den())
		}
	})
}

func FuzzRational_TryMul(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, t1, b1, t2, b2 int64) {
		if b1 == 0 || b2 == 0 {
			t.Skip()
		}
		x, y := New(t1, b1), New(t2, b2)
		top, bottom := mulBig(t1, t2), mulBig(b1, b2)
		z, err := x.TryMul(y)
		switch {
		case !top.IsInt64():
			require.ErrorIs(t, err, archimedes.ErrNumOverflow)
		case !bottom.IsInt64():
			require.ErrorIs(t, err, archimedes.ErrDenOverflow)
		default:
			require.NoError(t, err)
			require.Equal(t, top.Int64(), z.Num())
			require.Equal(t, bottom.Int64(), z.Den())
		}
	})
}

func FuzzRational_Simplify(f *testing.F) {
	fuzzSeeds(f)
	f.Fuzz(func(t *testing.T, t1, b1, _, _ int64) {
		if b1 == 0 {
			t.Skip()
		}
		x := New(t1, b1)
		z := x.Simplify()
		require.True(t, z.Equal(x))
		require.Equal(t, z, z.Simplify())
		require.Equal(t, x.Sign(), z.Sign())
	})
}
