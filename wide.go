package archimedes

import (
	"math"
	"math/bits"
)

// int128 is a signed 128-bit integer in two's complement form.
// It only needs to hold sums and differences of two int64*int64 products.
type int128 struct {
	hi, lo uint64
}

// mul128 returns the exact product a*b.
func mul128(a, b int64) int128 {
	hi, lo := bits.Mul64(mag64(a), mag64(b))
	z := int128{hi, lo}
	if (a < 0) != (b < 0) {
		z = z.neg()
	}
	return z
}

func (z int128) neg() int128 {
	lo, c := bits.Add64(^z.lo, 1, 0)
	hi, _ := bits.Add64(^z.hi, 0, c)
	return int128{hi, lo}
}

func (z int128) add(w int128) int128 {
	lo, c := bits.Add64(z.lo, w.lo, 0)
	hi, _ := bits.Add64(z.hi, w.hi, c)
	return int128{hi, lo}
}

func (z int128) sub(w int128) int128 {
	lo, b := bits.Sub64(z.lo, w.lo, 0)
	hi, _ := bits.Sub64(z.hi, w.hi, b)
	return int128{hi, lo}
}

// cmp returns -1 if z < w, 0 if z == w, and 1 if z > w.
func (z int128) cmp(w int128) int {
	if z.hi != w.hi {
		if int64(z.hi) < int64(w.hi) {
			return -1
		}
		return 1
	}
	return cmp128(0, z.lo, 0, w.lo)
}

// int64 returns z as an int64 and whether it fits without truncation.
func (z int128) int64() (int64, bool) {
	switch z.hi {
	case 0:
		return int64(z.lo), z.lo <= math.MaxInt64
	case math.MaxUint64:
		return int64(z.lo), z.lo > math.MaxInt64
	}
	return 0, false
}

// cmp128 compares the unsigned 128-bit values ah:al and bh:bl.
func cmp128(ah, al, bh, bl uint64) int {
	switch {
	case ah < bh, ah == bh && al < bl:
		return -1
	case ah == bh && al == bl:
		return 0
	}
	return 1
}

// mul64 returns a*b and whether the product fits in an int64.
func mul64(a, b int64) (int64, bool) {
	return mul128(a, b).int64()
}

// neg64 returns -a and whether the negation fits in an int64.
func neg64(a int64) (int64, bool) {
	return -a, a != math.MinInt64
}

// mag64 returns the magnitude of x. Unlike negation, it is exact for
// math.MinInt64.
func mag64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// sgn64 returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn64(x int64) int {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}

// quo64 returns x/d for a d known to divide x exactly with d > 1, so the
// result always fits.
func quo64(x int64, d uint64) int64 {
	q := int64(mag64(x) / d)
	if x < 0 {
		return -q
	}
	return q
}
