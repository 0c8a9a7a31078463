/*
Package convert moves values across the boundary between [bikdecimal.Decimal]
and other numeric representations.

Conversions from bikdecimal to a bounded representation fail instead of
rounding, conversions in the other direction are always exact.

Supported counterparts:

  - [decimal.Decimal] from github.com/govalues/decimal, a fixed 19-digit decimal;
  - [big.Rat] from the standard library.
*/
package convert

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	"github.com/tanocee/bikdecimal"
)

// ErrInexactConversion is returned when a value cannot be represented by the
// target type without rounding.
var ErrInexactConversion = errors.New("inexact conversion")

// ToGovalues converts d to a [decimal.Decimal].
// The scale of the result is the scale of d clamped to [0, decimal.MaxScale]
// and then, if the coefficient is still too long, lowered further by dropping
// trailing zeros.
//
// ToGovalues returns an error wrapping [ErrInexactConversion] if d has more
// significant digits than [decimal.MaxPrec] or more significant fractional
// digits than [decimal.MaxScale].
func ToGovalues(d bikdecimal.Decimal) (decimal.Decimal, error) {
	lo := max(d.MinScale(), 0)
	scale := min(max(d.Scale(), 0), decimal.MaxScale)
	if scale < lo {
		return decimal.Decimal{}, fmt.Errorf("converting %v: scale %v: %w", d, lo, ErrInexactConversion)
	}
	e, err := d.SetScale(scale, bikdecimal.RoundUnnecessary)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", d, err) // unexpected by design
	}
	if prec := e.Prec(); prec > decimal.MaxPrec {
		scale -= prec - decimal.MaxPrec
		if scale < lo {
			return decimal.Decimal{}, fmt.Errorf("converting %v: %v digits: %w", d, prec, ErrInexactConversion)
		}
		e, err = d.SetScale(scale, bikdecimal.RoundUnnecessary)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("converting %v: %w", d, err) // unexpected by design
		}
	}

	// Parse rounds silently when the coefficient does not fit, so the
	// result is converted back and compared.
	f, err := decimal.Parse(e.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %v: %w", d, err, ErrInexactConversion)
	}
	if g := FromGovalues(f); g.Cmp(e) != 0 || g.Scale() != e.Scale() {
		return decimal.Decimal{}, fmt.Errorf("converting %v: got %v: %w", d, f, ErrInexactConversion)
	}
	return f, nil
}

// FromGovalues converts d to a [bikdecimal.Decimal] with the same value and
// scale.
func FromGovalues(d decimal.Decimal) bikdecimal.Decimal {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return bikdecimal.NewFromBigInt(coef, d.Scale())
}

// ToRat returns the exact value of d as a rational number.
func ToRat(d bikdecimal.Decimal) *big.Rat {
	num := d.Coef()
	if d.IsNeg() {
		num.Neg(num)
	}
	scale := d.Scale()
	if scale <= 0 {
		num.Mul(num, pow10(-scale))
		return new(big.Rat).SetInt(num)
	}
	return new(big.Rat).SetFrac(num, pow10(scale))
}

// FromRat returns r rounded to the given scale using the given mode.
// Also see [bikdecimal.Decimal.QuoScale].
func FromRat(r *big.Rat, scale int, mode bikdecimal.RoundingMode) (bikdecimal.Decimal, error) {
	num, den := ratParts(r)
	d, err := num.QuoScale(den, scale, mode)
	if err != nil {
		return bikdecimal.Decimal{}, fmt.Errorf("converting %v: %w", r.RatString(), err)
	}
	return d, nil
}

// FromRatExact returns the exact value of r.
// It returns an error wrapping [bikdecimal.ErrNonTerminating] if the
// denominator of r has prime factors other than 2 and 5.
// Also see [bikdecimal.Decimal.Quo].
func FromRatExact(r *big.Rat) (bikdecimal.Decimal, error) {
	num, den := ratParts(r)
	d, err := num.Quo(den)
	if err != nil {
		return bikdecimal.Decimal{}, fmt.Errorf("converting %v: %w", r.RatString(), err)
	}
	return d, nil
}

func ratParts(r *big.Rat) (num, den bikdecimal.Decimal) {
	return bikdecimal.NewFromBigInt(r.Num(), 0), bikdecimal.NewFromBigInt(r.Denom(), 0)
}

// pow10 returns 10^n for non-negative n.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
