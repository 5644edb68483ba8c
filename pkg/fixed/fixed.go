package fixed

import (
	"errors"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// ErrDivisionByZero zero denominator
var ErrDivisionByZero = errors.New("division by zero")

// ErrOverflow product does not fit in 256 bits
var ErrOverflow = errors.New("overflow")

// Wad 1e18, the fixed-point scale of the debt token.
func Wad() *uint256.Int {
	return uint256.NewInt(1_000_000_000_000_000_000)
}

// Max the maximum representable value, used as the infinite-solvency sentinel.
func Max() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

// Pow10 10^n
func Pow10(n int32) *uint256.Int {
	z := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := int32(0); i < n; i++ {
		z.Mul(z, ten)
	}
	return z
}

// MulDiv (a*b)/den with a 512-bit intermediate product and truncating
// division. Truncation never rounds up; the conservative direction for
// every solvency computation in the engine.
func MulDiv(a, b, den *uint256.Int) (*uint256.Int, error) {
	if den.IsZero() {
		return nil, ErrDivisionByZero
	}

	z, overflow := new(uint256.Int).MulDivOverflow(a, b, den)
	if overflow {
		return nil, ErrOverflow
	}

	return z, nil
}

// FromDecimal a human decimal scaled to the given precision, truncating
// anything below the last representable digit.
func FromDecimal(d decimal.Decimal, decimals int32) (*uint256.Int, error) {
	s := d.Shift(decimals).Truncate(0).String()
	if strings.HasPrefix(s, "-") {
		return nil, errors.New("negative amount")
	}

	return uint256.FromDecimal(s)
}

// ToDecimal render a fixed-point quantity at the given precision.
func ToDecimal(x *uint256.Int, decimals int32) decimal.Decimal {
	d, _ := decimal.NewFromString(x.Dec())
	return d.Shift(-decimals)
}

// MustFromString parse a raw decimal integer string, panicking on bad input.
// Intended for constants and fixtures.
func MustFromString(s string) *uint256.Int {
	return uint256.MustFromDecimal(s)
}
