package archimedes

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRationalString parses a string representation of a rational number.
// The string must be in the form "m/n", where m and n are integers in base 10
// that fit in an int64 and n is not zero. Either may be negative (indicated
// with leading hyphen). The result is stored exactly as written, without
// reduction or sign normalization.
func ParseRationalString(s string) (Rational, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 2 {
		return Rational{}, ErrFmtInvalid
	}
	top, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing numerator: %w", err)
	}
	bottom, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Rational{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return Try(top, bottom)
}

// ParseDecimalString parses a decimal number such as "-12.375" as a rational
// number in lowest terms with a positive denominator. Any syntax accepted by
// decimal.NewFromString is allowed, including exponents ("1.5e3").
// The reduced numerator and denominator must not overflow int64.
func ParseDecimalString(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %v", ErrFmtInvalid, err)
	}
	return FromDecimal(d)
}

// FromDecimal converts d to a rational number in lowest terms, if it is
// possible to do so.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	return FromBigRat(d.Rat())
}

// Decimal returns x rounded to the given number of digits after the decimal
// point. Ties are rounded away from zero.
func (x Rational) Decimal(places int32) decimal.Decimal {
	return decimal.NewFromInt(x.top).DivRound(decimal.NewFromInt(x.Den()), places)
}

// DecimalString returns a string representation of x, as a decimal number
// to the given number of digits after the decimal point.
// The last digit is rounded to nearest, with ties rounded away from zero.
// If prec <= 0, the decimal point is omitted from the string.
// A negative x that rounds to zero is written without a sign.
func (x Rational) DecimalString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	return x.Decimal(int32(prec)).StringFixed(int32(prec))
}

// String returns a string representation of x, as top/bottom exactly as
// stored.
func (x Rational) String() string {
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// FromFloat64 extracts a rational number from a float64. The result will be
// exactly equal to v and in lowest terms, or else an error will be returned.
func FromFloat64(v float64) (Rational, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rational{}, ErrNotFinite
	}
	if v == 0 {
		return Rational{}, nil
	}

	// decompose v such that v = f*2^e with abs(f) in [0.5, 1)
	f, e := math.Frexp(v)

	// convert f to an integer in [2^52, 2^53); m is this integer and
	// s is its original sign
	s := int64(1)
	if f < 0 {
		s = -1
		f = -f
	}
	m := int64(f * 0x1p53)
	e -= 53

	// remove trailing zeros from m so that m/2^-e is in lowest terms
	tz := bits.TrailingZeros64(uint64(m))
	m >>= tz
	e += tz
	prec := bits.Len64(uint64(m))

	if e >= 0 {
		// v is an integer
		if prec+e > 63 {
			return Rational{}, ErrNumOverflow
		}
		return FromInt(s * (m << e)), nil
	}
	if e <= -63 {
		// 2^-e does not fit in the denominator
		return Rational{}, ErrDenOverflow
	}
	return New(s*m, 1<<-e), nil
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x Rational) Float64() (v float64, exact bool) {
	sign, m, n := x.canonical()
	if sign == 0 {
		return 0, true
	}

	// both magnitudes are exact as long as they fit in the mantissa, and
	// then the quotient is correctly rounded; it is exact if n is a power
	// of two
	mExact := bits.Len64(m) <= 53
	nExact := bits.Len64(n) <= 53
	if mExact && nExact {
		v = float64(m) / float64(n)
		exact = bits.OnesCount64(n) == 1
	} else {
		v, exact = new(big.Rat).SetFrac(
			new(big.Int).SetUint64(m),
			new(big.Int).SetUint64(n),
		).Float64()
	}
	if sign < 0 {
		v = -v
	}
	return v, exact
}

// BigRat converts x to a new big.Rat.
func (x Rational) BigRat() *big.Rat {
	return big.NewRat(x.Num(), x.Den())
}

// FromBigRat converts a big.Rat to a Rational, if it is possible to do so.
// The result is in lowest terms with a positive denominator, as r is.
func FromBigRat(r *big.Rat) (Rational, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() {
		return Rational{}, ErrNumOverflow
	} else if !den.IsInt64() {
		return Rational{}, ErrDenOverflow
	}
	return Try(num.Int64(), den.Int64())
}
