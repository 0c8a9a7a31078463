/*
Package bikdecimal implements immutable arbitrary-precision decimal numbers.
It produces the same results on every platform: the representation, the
rounding and the division policy are fully specified and do not depend on
a native big-decimal type.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an arbitrary-precision non-negative integer representing the
    numeric value of the decimal without the decimal point.
  - Scale: an integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.
    A negative scale appends zeros, so a coefficient of 12 and a scale of -3
    represent the value 12000.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.
[Decimal.Cmp] and [Decimal.Equal] compare values, while [Decimal.String]
preserves the scale.

Zero has no sign.
Special values such as NaN, Infinity, or negative zeros are not supported.

# Constraints

Neither the coefficient nor the scale is limited by the arithmetic
operations: results are exact unless an operation explicitly rounds.
The cost of an operation grows with the number of digits involved, so
callers handling untrusted input should limit precision and scale themselves.

[Parse] only accepts strings whose scale lies between [MinScale] and [MaxScale].

# Conversions

The package provides methods for converting decimals:

  - from/to string:
    [Parse], [ParseOr], [ParseScaled], [Decimal.String], [Decimal.Format].
  - from/to float64:
    [NewFromFloat64], [NewFromFloat64Scaled], [Decimal.Float64].
  - from/to int64:
    [New], [NewFromInt64], [NewFromInt64Scaled], [Decimal.Int64].
  - from/to [big.Int]:
    [NewFromBigInt], [Decimal.Coef].

Conversions to float64 and int64 are lossy:
[Decimal.Float64] returns the nearest float,
[Decimal.Int64] truncates towards zero and wraps around on overflow.

See the documentation for each method for more details.

# Operations

[Decimal.Add], [Decimal.Sub], [Decimal.Mul] and [Decimal.Neg] are exact
and never fail:

  - the scale of a sum or a difference is the larger of the operand scales;
  - the scale of a product is the sum of the operand scales.

Division has two forms:

  - [Decimal.Quo] returns the exact quotient, or an error if the quotient
    has an infinite decimal expansion, as 1/3 does.
  - [Decimal.QuoScale] returns the quotient rounded to a given scale using
    a given [RoundingMode].

# Rounding

Eight rounding modes are supported: [RoundUp], [RoundDown], [RoundCeiling],
[RoundFloor], [RoundHalfUp], [RoundHalfDown], [RoundHalfEven] and
[RoundUnnecessary].
They are used by [Decimal.SetScale], [Decimal.QuoScale] and the scaled
constructors.
[RoundUnnecessary] asserts that no rounding is needed and turns any
discarded non-zero digit into an error.

In addition, the package provides several methods for explicit rounding
that never fail:

  - half-to-even rounding:
    [Decimal.Round].
  - rounding towards positive infinity:
    [Decimal.Ceil].
  - rounding towards negative infinity:
    [Decimal.Floor].
  - rounding towards zero:
    [Decimal.Trunc], [Decimal.Reduce].

# Errors

All methods are pure and, except for the Must* helpers, panic-free.
Errors are returned in the following cases:

  - Invalid Decimal.
    [Parse] and [NewFromFloat64] return an error wrapping [ErrInvalidDecimal]
    for malformed strings and special float values.
    [ParseOr] returns a default value instead.

  - Division by Zero.
    Unlike the standard library, [Decimal.Quo] and [Decimal.QuoScale]
    do not panic when dividing by 0.
    Instead, they return an error wrapping [ErrDivisionByZero].

  - Non-terminating Expansion.
    [Decimal.Quo] returns an error wrapping [ErrNonTerminating].

  - Inexact Rounding.
    Operations using [RoundUnnecessary] return an error wrapping
    [ErrInexactRounding].

The three arithmetic errors also match [ErrArithmetic] when checked with
[errors.Is].

[big.Int]: https://pkg.go.dev/math/big#Int
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bikdecimal
