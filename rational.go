// Package archimedes provides exact integer number theory and fixed-precision
// rational numbers. See the GCD, IsPrime, and PrimeFactors functions and the
// Rational type for details.
package archimedes

import (
	"errors"
	"math/bits"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero     = errors.New("denominator is zero")
	ErrDenOverflow = errors.New("denominator overflow")
	ErrNumOverflow = errors.New("numerator overflow")
	ErrDivByZero   = errors.New("division by zero")
	ErrFmtInvalid  = errors.New("invalid number format")
	ErrNotFinite   = errors.New("value is not finite")
)

// Rational is a fraction top/bottom with 64-bit signed numerator and
// denominator.
//
// Unlike most rational types, Rational stores exactly what it was given: it
// is not reduced to lowest terms and the denominator may be negative. The
// Simplify and FlipSigns methods produce the canonical form (positive
// denominator, coprime numerator and denominator) on request, and no
// arithmetic method reduces its result.
//
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Rational has proper value semantics and its values can be freely copied.
// The == operator compares representations, so 1/2 != 2/4 under ==; use
// Equal or Cmp to compare values.
//
// Arithmetic is checked: every method that can overflow has a Try form that
// returns ErrNumOverflow or ErrDenOverflow and a plain form that panics.
// Comparisons are computed exactly and never overflow.
type Rational struct {
	top int64
	bot int64 // bottom - 1, wrapping
}

// Try creates a new rational number top/bottom, stored as given.
// Try returns ErrDenZero if bottom is zero.
func Try(top, bottom int64) (Rational, error) {
	if bottom == 0 {
		return Rational{}, ErrDenZero
	}
	return Rational{top, bottom - 1}, nil
}

// New is like Try but panics if bottom is zero.
func New(top, bottom int64) Rational {
	x, err := Try(top, bottom)
	if err != nil {
		panic(err)
	}
	return x
}

// FromInt returns v/1.
func FromInt(v int64) Rational {
	return Rational{top: v}
}

// Zero returns 0/1, which is also the zero value of Rational.
func Zero() Rational {
	return Rational{}
}

// Num returns the numerator of x, as stored.
func (x Rational) Num() int64 {
	return x.top
}

// Den returns the denominator of x, as stored. It may be negative.
func (x Rational) Den() int64 {
	return x.bot + 1
}

// IsValid returns true if x has a non-zero denominator.
// Invalid numbers do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x Rational) IsValid() bool {
	return x.bot != -1
}

// IsZero returns true if x is equal to 0.
func (x Rational) IsZero() bool {
	return x.top == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Rational) Sign() int {
	return sgn64(x.top) * sgn64(x.Den())
}

// Simplify returns x with its numerator and denominator divided by their
// GCD. Signs are left where they are, and 0/n is returned unchanged.
func (x Rational) Simplify() Rational {
	if x.top == 0 {
		return x
	}
	bottom := x.Den()
	d := GCD(mag64(x.top), mag64(bottom))
	if d <= 1 {
		return x
	}
	return Rational{quo64(x.top, d), quo64(bottom, d) - 1}
}

// TryFlipSigns returns a value equal to x with a positive denominator: if the
// denominator of x is negative, both numerator and denominator are negated.
// TryFlipSigns fails if either would overflow.
func (x Rational) TryFlipSigns() (Rational, error) {
	bottom := x.Den()
	if bottom > 0 {
		return x, nil
	}
	top, ok := neg64(x.top)
	if !ok {
		return Rational{}, ErrNumOverflow
	}
	bottom, ok = neg64(bottom)
	if !ok {
		return Rational{}, ErrDenOverflow
	}
	return Rational{top, bottom - 1}, nil
}

// FlipSigns is like TryFlipSigns but panics on overflow.
// The canonical form of x is x.FlipSigns().Simplify().
func (x Rational) FlipSigns() Rational {
	z, err := x.TryFlipSigns()
	if err != nil {
		panic(err)
	}
	return z
}

// TryAbs returns x with both numerator and denominator replaced by their
// absolute values. TryAbs fails if either is math.MinInt64.
func (x Rational) TryAbs() (Rational, error) {
	top, bottom := x.top, x.Den()
	var ok bool
	if top < 0 {
		if top, ok = neg64(top); !ok {
			return Rational{}, ErrNumOverflow
		}
	}
	if bottom < 0 {
		if bottom, ok = neg64(bottom); !ok {
			return Rational{}, ErrDenOverflow
		}
	}
	return Rational{top, bottom - 1}, nil
}

// Abs is like TryAbs but panics on overflow.
func (x Rational) Abs() Rational {
	z, err := x.TryAbs()
	if err != nil {
		panic(err)
	}
	return z
}

// TryNeg returns the negation of x, -x. If the denominator of x is negative,
// the denominator is negated; otherwise the numerator is. The sign therefore
// never moves between the two fields.
func (x Rational) TryNeg() (Rational, error) {
	bottom := x.Den()
	if bottom < 0 {
		bottom, ok := neg64(bottom)
		if !ok {
			return Rational{}, ErrDenOverflow
		}
		return Rational{x.top, bottom - 1}, nil
	}
	top, ok := neg64(x.top)
	if !ok {
		return Rational{}, ErrNumOverflow
	}
	return Rational{top, x.bot}, nil
}

// Neg is like TryNeg but panics on overflow.
func (x Rational) Neg() Rational {
	z, err := x.TryNeg()
	if err != nil {
		panic(err)
	}
	return z
}

// TryInv returns the inverse of x, 1/x, by swapping numerator and
// denominator. TryInv returns ErrDivByZero if x is zero.
func (x Rational) TryInv() (Rational, error) {
	if x.top == 0 {
		return Rational{}, ErrDivByZero
	}
	return Rational{x.Den(), x.top - 1}, nil
}

// Inv is like TryInv but panics if x is zero.
func (x Rational) Inv() Rational {
	z, err := x.TryInv()
	if err != nil {
		panic(err)
	}
	return z
}

// TryAdd adds x and y and returns the unreduced result
//
//	(x.Num()*y.Den() + x.Den()*y.Num()) / (x.Den()*y.Den())
//
// TryAdd returns a non-nil error if the result would overflow.
func (x Rational) TryAdd(y Rational) (Rational, error) {
	return x.addSub(y, false)
}

// Add is like TryAdd but panics if the result would overflow.
func (x Rational) Add(y Rational) Rational {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TrySub subtracts y from x and returns the unreduced result
//
//	(x.Num()*y.Den() - x.Den()*y.Num()) / (x.Den()*y.Den())
//
// TrySub returns a non-nil error if the result would overflow.
func (x Rational) TrySub(y Rational) (Rational, error) {
	return x.addSub(y, true)
}

// Sub is like TrySub but panics if the result would overflow.
func (x Rational) Sub(y Rational) Rational {
	z, err := x.TrySub(y)
	if err != nil {
		panic(err)
	}
	return z
}

func (x Rational) addSub(y Rational, sub bool) (Rational, error) {
	b1, b2 := x.Den(), y.Den()
	// The cross products are formed with 128-bit precision, so only the
	// final numerator has to fit.
	p, q := mul128(x.top, b2), mul128(b1, y.top)
	if sub {
		p = p.sub(q)
	} else {
		p = p.add(q)
	}
	top, ok := p.int64()
	if !ok {
		return Rational{}, ErrNumOverflow
	}
	bottom, ok := mul64(b1, b2)
	if !ok {
		return Rational{}, ErrDenOverflow
	}
	return Rational{top, bottom - 1}, nil
}

// TryMul multiplies x and y componentwise and returns the unreduced result.
// TryMul returns a non-nil error if the result would overflow.
func (x Rational) TryMul(y Rational) (Rational, error) {
	top, ok := mul64(x.top, y.top)
	if !ok {
		return Rational{}, ErrNumOverflow
	}
	bottom, ok := mul64(x.Den(), y.Den())
	if !ok {
		return Rational{}, ErrDenOverflow
	}
	return Rational{top, bottom - 1}, nil
}

// Mul is like TryMul but panics if the result would overflow.
func (x Rational) Mul(y Rational) Rational {
	z, err := x.TryMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDiv divides x by y and returns the unreduced result
//
//	(x.Num()*y.Den()) / (x.Den()*y.Num())
//
// TryDiv returns ErrDivByZero if y is zero, or another non-nil error if the
// result would overflow.
func (x Rational) TryDiv(y Rational) (Rational, error) {
	inv, err := y.TryInv()
	if err != nil {
		return Rational{}, err
	}
	return x.TryMul(inv)
}

// Div is like TryDiv but panics if y is zero or the result would overflow.
// The following are equivalent in outcome and behavior:
//
//	x.Div(y) == x.Mul(y.Inv())
func (x Rational) Div(y Rational) Rational {
	z, err := x.TryDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDivInt divides x by the integer k by multiplying the denominator of x
// by k. TryDivInt returns ErrDivByZero if k is zero.
func (x Rational) TryDivInt(k int64) (Rational, error) {
	if k == 0 {
		return Rational{}, ErrDivByZero
	}
	bottom, ok := mul64(x.Den(), k)
	if !ok {
		return Rational{}, ErrDenOverflow
	}
	return Rational{x.top, bottom - 1}, nil
}

// DivInt is like TryDivInt but panics if k is zero or the result would
// overflow.
func (x Rational) DivInt(k int64) Rational {
	z, err := x.TryDivInt(k)
	if err != nil {
		panic(err)
	}
	return z
}

// AddAssign sets x to x.Add(y).
func (x *Rational) AddAssign(y Rational) {
	*x = x.Add(y)
}

// SubAssign sets x to x.Sub(y).
func (x *Rational) SubAssign(y Rational) {
	*x = x.Sub(y)
}

// MulAssign sets x to x.Mul(y).
func (x *Rational) MulAssign(y Rational) {
	*x = x.Mul(y)
}

// DivAssign sets x to x.Div(y).
func (x *Rational) DivAssign(y Rational) {
	*x = x.Div(y)
}

// Equal returns true if x and y are numerically equal, regardless of
// reduction or sign placement; that is, if
//
//	x.Num()*y.Den() == x.Den()*y.Num()
func (x Rational) Equal(y Rational) bool {
	return mul128(x.top, y.Den()).cmp(mul128(x.Den(), y.top)) == 0
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
func (x Rational) Cmp(y Rational) int {
	sx, mx, nx := x.canonical()
	sy, my, ny := y.canonical()
	if sx == sy && (sx == 0 || mx == my && nx == ny) {
		return 0
	}
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	// both denominators are positive now, so cross-multiplying the
	// magnitudes preserves order; the shared sign then flips it or not
	h1, l1 := bits.Mul64(mx, ny)
	h2, l2 := bits.Mul64(nx, my)
	return sx * cmp128(h1, l1, h2, l2)
}

// Less returns true if x < y.
func (x Rational) Less(y Rational) bool {
	return x.Cmp(y) < 0
}

// LessEq returns true if x <= y.
func (x Rational) LessEq(y Rational) bool {
	return x.Cmp(y) <= 0
}

// Greater returns true if x > y.
func (x Rational) Greater(y Rational) bool {
	return x.Cmp(y) > 0
}

// GreaterEq returns true if x >= y.
func (x Rational) GreaterEq(y Rational) bool {
	return x.Cmp(y) >= 0
}

// canonical returns x.FlipSigns().Simplify() in sign-magnitude form, which
// cannot overflow even when a component is math.MinInt64.
func (x Rational) canonical() (sign int, num, den uint64) {
	sign = x.Sign()
	if sign == 0 {
		return 0, 0, 1
	}
	num, den = mag64(x.top), mag64(x.Den())
	if d := GCD(num, den); d > 1 {
		num, den = num/d, den/d
	}
	return sign, num, den
}
