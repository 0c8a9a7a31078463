package bikdecimal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Decimal type is a representation of an arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: an integer indicating the position of the floating decimal point.
//   - Coefficient: an arbitrary-precision integer value of the decimal
//     without the decimal point.
//
// The scale field determines the position of the decimal point in the coefficient.
// For example, a decimal value with a scale of 2 represents a value that has two
// digits after the decimal point.
// A negative scale multiplies the coefficient by a power of ten, so
// a coefficient of 12 with a scale of -3 represents the value 12000.
// Such approach allows for multiple representations of the same numerical value.
// For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// Decimals are immutable: every method returns a new decimal and never
// modifies the receiver or its arguments.
type Decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale int   // the position of the floating decimal point
	coef  *bint // the coefficient of the decimal, nil means 0
}

const (
	MaxScale = math.MaxInt32 // maximum scale accepted by [Parse]
	MinScale = math.MinInt32 // minimum scale accepted by [Parse]

	// NaturalScale can be passed to the scaled constructors, such as
	// [ParseScaled], to keep the scale of the parsed value.
	// Any negative scale has the same effect.
	NaturalScale = -1
)

var (
	// ErrInvalidDecimal is returned when a text or a float cannot be
	// converted to a decimal.
	ErrInvalidDecimal = errors.New("invalid decimal")

	// ErrInvalidRoundingMode is returned when a rounding mode is not one of
	// the eight supported modes.
	ErrInvalidRoundingMode = errors.New("invalid rounding mode")

	// ErrArithmetic matches every arithmetic error when used with [errors.Is].
	ErrArithmetic = errors.New("arithmetic error")

	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero error = &arithmeticError{"division by zero"}

	// ErrNonTerminating is returned by [Decimal.Quo] when the exact quotient
	// has an infinite decimal expansion, as 1/3 does.
	ErrNonTerminating error = &arithmeticError{"non-terminating decimal expansion"}

	// ErrInexactRounding is returned when [RoundUnnecessary] is used but
	// digits other than zeros would be discarded.
	ErrInexactRounding error = &arithmeticError{"rounding necessary"}
)

// arithmeticError is a kind of [ErrArithmetic].
type arithmeticError struct {
	msg string
}

func (e *arithmeticError) Error() string {
	return e.msg
}

func (e *arithmeticError) Is(target error) bool {
	return target == ErrArithmetic
}

var (
	// Zero is the decimal 0 with a scale of 0.
	Zero = New(0, 0)

	// One is the decimal 1 with a scale of 0.
	One = New(1, 0)
)

// newDecimal takes ownership of coef, which must be non-negative.
// A nil coef is treated as 0.
func newDecimal(neg bool, coef *bint, scale int) Decimal {
	if coef == nil || coef.sign() == 0 {
		return Decimal{scale: scale}
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

// newDecimalFromSigned takes ownership of a signed coef.
func newDecimalFromSigned(coef *bint, scale int) Decimal {
	neg := coef.sign() < 0
	if neg {
		coef.abs(coef)
	}
	return newDecimal(neg, coef, scale)
}

// New returns a decimal equal to coef / 10^scale.
// Negative scales are allowed, for example New(12, -3) is equal to 12000.
func New(coef int64, scale int) Decimal {
	z := new(bint)
	z.setInt64(coef)
	return newDecimalFromSigned(z, scale)
}

// NewFromInt64 converts an integer to a decimal with a scale of 0.
func NewFromInt64(value int64) Decimal {
	return New(value, 0)
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
// The coefficient is copied, so coef can be modified afterwards.
// A nil coef is treated as 0.
func NewFromBigInt(coef *big.Int, scale int) Decimal {
	z := new(bint)
	if coef != nil {
		z.setBint((*bint)(coef))
	}
	return newDecimalFromSigned(z, scale)
}

// NewFromFloat64 converts a float to a decimal.
// The decimal is built from the shortest decimal representation that
// converts back to the same float.
// Floats with magnitude in [1e-3, 1e7) keep at least one digit after the
// decimal point, other floats keep the digits of their scientific form with
// at least one digit after the leading one:
//
//	0       → 0.0
//	1       → 1.0
//	3.14159 → 3.14159
//	1e7     → 10000000 (coefficient 10, scale -6)
//	1e-4    → 0.00010
//
// NewFromFloat64 returns an error if the float is NaN or an infinity.
func NewFromFloat64(f float64) (Decimal, error) {
	// Special values
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("converting float: special value %v: %w", f, ErrInvalidDecimal)
	}

	// Zeros
	if f == 0 {
		return New(0, 1), nil
	}

	// Shortest representation
	s := strconv.FormatFloat(math.Abs(f), 'e', -1, 64)
	mant, exps, _ := strings.Cut(s, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, err := strconv.Atoi(exps)
	if err != nil {
		return Decimal{}, fmt.Errorf("converting float: %w", err) // unexpected by design
	}
	prec := len(digits)

	// Scale
	var scale int
	if a := math.Abs(f); 1e-3 <= a && a < 1e7 {
		scale = max(1, prec-1-exp)
	} else {
		scale = max(1, prec-1) - exp
	}

	// Coefficient
	coef := new(bint)
	if !coef.setString(digits) {
		return Decimal{}, fmt.Errorf("converting float: %q: %w", s, ErrInvalidDecimal) // unexpected by design
	}
	coef.lsh(coef, scale-(prec-1-exp))

	return newDecimal(f < 0, coef, scale), nil
}

// ParseScaled parses a string and immediately rescales the result.
// If scale is negative, the natural scale of the string is kept and no
// rounding is applied.
// Also see [Parse] and [Decimal.SetScale].
func ParseScaled(s string, scale int, mode RoundingMode) (Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}
	return d.rescaleNatural(scale, mode)
}

// NewFromInt64Scaled converts an integer to a decimal with the given scale.
// If scale is negative, the scale of the result is 0.
// Also see [Decimal.SetScale].
func NewFromInt64Scaled(value int64, scale int, mode RoundingMode) (Decimal, error) {
	return NewFromInt64(value).rescaleNatural(scale, mode)
}

// NewFromFloat64Scaled converts a float to a decimal and immediately rescales
// the result.
// If scale is negative, the natural scale of the float is kept and no
// rounding is applied.
// Also see [NewFromFloat64] and [Decimal.SetScale].
func NewFromFloat64Scaled(f float64, scale int, mode RoundingMode) (Decimal, error) {
	d, err := NewFromFloat64(f)
	if err != nil {
		return Decimal{}, err
	}
	return d.rescaleNatural(scale, mode)
}

func (d Decimal) rescaleNatural(scale int, mode RoundingMode) (Decimal, error) {
	if scale < 0 {
		return d, nil
	}
	return d.SetScale(scale, mode)
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse removes leading zeros from the integer part of the input string,
// but keeps trailing zeros in the fractional part to preserve scale.
// The scale of the result is the number of digits after the decimal point
// minus the exponent, so "1.83e5" has a scale of -3.
// No rounding is ever applied.
//
// Parse returns an error wrapping [ErrInvalidDecimal]:
//   - if string does not represent a valid decimal number;
//   - if the scale of the result is less than [MinScale] or greater than [MaxScale].
func Parse(s string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		digits  []byte
		scale   int64
		hascoef bool
		eneg    bool
		exp     int64
		hasexp  bool
		hasesym bool
	)

	width = len(s)
	digits = make([]byte, 0, width)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		digits = append(digits, s[pos])
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			digits = append(digits, s[pos])
			scale++
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			exp = exp*10 + int64(s[pos]-'0')
			if exp > 2*math.MaxInt32+1 {
				return Decimal{}, fmt.Errorf("exponent out of range: %w", ErrInvalidDecimal)
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidDecimal)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("no coefficient: %w", ErrInvalidDecimal)
	}
	if hasesym && !hasexp {
		return Decimal{}, fmt.Errorf("no exponent: %w", ErrInvalidDecimal)
	}

	if eneg {
		scale = scale + exp
	} else {
		scale = scale - exp
	}
	if scale < MinScale || scale > MaxScale {
		return Decimal{}, fmt.Errorf("scale %v out of range: %w", scale, ErrInvalidDecimal)
	}

	coef := new(bint)
	if !coef.setString(string(digits)) {
		return Decimal{}, fmt.Errorf("invalid coefficient %q: %w", digits, ErrInvalidDecimal) // unexpected by design
	}
	return newDecimal(neg, coef, int(scale)), nil
}

// ParseOr is like [Parse] but returns def if the string cannot be parsed.
// It never returns an error.
func ParseOr(s string, def Decimal) Decimal {
	d, err := Parse(s)
	if err != nil {
		return def
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a decimal value.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// If the scale is positive, exactly scale digits follow the decimal point.
// If the scale is negative, the coefficient is followed by -scale zeros.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return string(d.appendPlain(nil, d.IsNeg()))
}

// appendPlain appends the plain representation of d to buf.
func (d Decimal) appendPlain(buf []byte, sign bool) []byte {
	// Special case: zero
	if d.IsZero() {
		buf = append(buf, '0')
		if d.Scale() > 0 {
			buf = append(buf, '.')
			buf = appendZeros(buf, d.Scale())
		}
		return buf
	}

	// Sign
	if sign {
		buf = append(buf, '-')
	}

	// Coefficient
	digits := d.coef.string()
	scale := d.Scale()
	switch {
	case scale <= 0:
		buf = append(buf, digits...)
		buf = appendZeros(buf, -scale)
	case len(digits) > scale:
		buf = append(buf, digits[:len(digits)-scale]...)
		buf = append(buf, '.')
		buf = append(buf, digits[len(digits)-scale:]...)
	default:
		buf = append(buf, '0', '.')
		buf = appendZeros(buf, scale-len(digits))
		buf = append(buf, digits...)
	}
	return buf
}

func appendZeros(buf []byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, '0')
	}
	return buf
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%f, %s, %v: -123.456
//	%q:        "-123.456"
//	%k:         -12345.6%
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for %f and %k verbs.
// For %f verb, the default precision is equal to the actual scale of the decimal,
// whereas, for verb %k the default precision is the actual scale of the decimal minus 2.
// Rounding uses [RoundHalfEven].
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {

	// Percentage
	if verb == 'k' || verb == 'K' {
		d = d.Mul(New(100, 0))
	}

	// Rescaling
	if verb == 'f' || verb == 'F' || verb == 'k' || verb == 'K' {
		scale := d.Scale()
		switch p, ok := state.Precision(); {
		case ok:
			scale = p
		case verb == 'k' || verb == 'K':
			scale = d.Scale() - 2
		}
		if scale < 0 {
			scale = 0
		}
		d = d.Round(scale)
	}

	// Digits
	body := d.appendPlain(nil, false)

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Percentage sign
	psign := 0
	if verb == 'k' || verb == 'K' {
		psign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + psign + tquote
	lspaces, tspaces, lzeros := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	// Writing buffer
	buf := make([]byte, 0, width+lspaces+tspaces+lzeros)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf = append(buf, '-')
		case state.Flag('+'):
			buf = append(buf, '+')
		default:
			buf = append(buf, ' ')
		}
	}
	buf = appendZeros(buf, lzeros)
	buf = append(buf, body...)
	if psign > 0 {
		buf = append(buf, '%')
	}
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'k', 'K':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bikdecimal.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
// Decimals beyond the range of float64 are converted to an infinity of the
// same sign.
//
// This conversion is lossy and must not be used to compare decimals.
func (d Decimal) Float64() float64 {
	if d.IsZero() {
		return 0
	}
	s := d.coef.string() + "e" + strconv.Itoa(-d.Scale())
	f, _ := strconv.ParseFloat(s, 64) // ±Inf and 0 are reported with range errors
	if d.IsNeg() {
		f = -f
	}
	return f
}

// Int64 returns the integer part of d, truncated towards zero.
// If the integer part does not fit into int64, only its low 64 bits
// are kept, as in a two's complement narrowing conversion.
// The result is deterministic but generally meaningless in that case.
func (d Decimal) Int64() int64 {
	// Special cases
	switch {
	case d.IsZero():
		return 0
	case d.Scale() <= -64:
		return 0 // 10^64 is a multiple of 2^64
	}

	// General case
	z := getBint()
	defer putBint(z)
	if d.Scale() > 0 {
		z.rshDown(d.coef, d.Scale())
	} else {
		z.lsh(d.coef, -d.Scale())
	}
	v := int64(z.uint64())
	if d.IsNeg() {
		v = -v
	}
	return v
}

// Prec returns number of digits in the coefficient.
// Prec returns 0 if d is zero.
func (d Decimal) Prec() int {
	if d.IsZero() {
		return 0
	}
	return d.coef.prec()
}

// Coef returns a copy of the coefficient of the decimal.
// The coefficient is never negative, see method [Decimal.Sign].
func (d Decimal) Coef() *big.Int {
	z := new(big.Int)
	if d.coef != nil {
		z.Set((*big.Int)(d.coef))
	}
	return z
}

// Scale returns number of digits after the decimal point.
// A negative scale means that the coefficient is multiplied by 10^-scale.
func (d Decimal) Scale() int {
	return d.scale
}

// MinScale returns the smallest scale that d can be rescaled to without rounding.
// The result is negative if the integer part of d has trailing zeros,
// and 0 if d is zero.
// Also see method [Decimal.Reduce].
func (d Decimal) MinScale() int {
	if d.IsZero() {
		return 0
	}
	return d.Scale() - d.coef.tzeros()
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.Scale() <= 0 || d.MinScale() <= 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.IsZero() && !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return !d.IsZero() && d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.coef == nil || d.coef.sign() == 0
}

// SetScale returns d rescaled to the given number of digits after
// the decimal point.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right, which is always exact.
// Otherwise the discarded digits are rounded using the given mode.
// Negative scales are allowed and round to tens, hundreds and so on.
//
// SetScale returns an error:
//   - wrapping [ErrInexactRounding] if mode is [RoundUnnecessary] and
//     non-zero digits would be discarded;
//   - wrapping [ErrInvalidRoundingMode] if mode is not a valid rounding mode.
func (d Decimal) SetScale(scale int, mode RoundingMode) (Decimal, error) {
	f, err := d.setScale(scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("rescaling %v to %v with %v: %w", d, scale, mode, err)
	}
	return f, nil
}

func (d Decimal) setScale(scale int, mode RoundingMode) (Decimal, error) {
	if !mode.valid() {
		return Decimal{}, ErrInvalidRoundingMode
	}

	// Special cases
	switch {
	case scale == d.Scale():
		return d, nil
	case d.IsZero():
		return newDecimal(false, nil, scale), nil
	}

	coef := new(bint)

	// Rounding
	switch {
	case scale < d.Scale():
		err := coef.rshMode(d.coef, d.Scale()-scale, mode, d.IsNeg())
		if err != nil {
			return Decimal{}, err
		}
	case d.Scale() < scale:
		coef.lsh(d.coef, scale-d.Scale())
	}

	return newDecimal(d.IsNeg(), coef, scale), nil
}

// mustSetScale is used by rounding helpers whose modes cannot fail.
func (d Decimal) mustSetScale(name string, scale int, mode RoundingMode) Decimal {
	f, err := d.setScale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.%v(%v) failed: %v", d, name, scale, err)) // unexpected by design
	}
	return f
}

// Round returns d that is rounded to the specified number of digits after
// the decimal point using "half to even" rule.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
// Also see method [Decimal.SetScale].
func (d Decimal) Round(scale int) Decimal {
	return d.mustSetScale("Round", scale, RoundHalfEven)
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
// Also see method [Decimal.Reduce].
func (d Decimal) Trunc(scale int) Decimal {
	return d.mustSetScale("Trunc", scale, RoundDown)
}

// Ceil returns d that is rounded up to the specified number of digits after
// the decimal point.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
// Also see method [Decimal.Floor].
func (d Decimal) Ceil(scale int) Decimal {
	return d.mustSetScale("Ceil", scale, RoundCeiling)
}

// Floor returns d that is rounded down to the specified number of digits after
// the decimal point.
// If the scale of d is less than the specified scale, the result will be
// zero-padded to the right.
// Also see method [Decimal.Ceil].
func (d Decimal) Floor(scale int) Decimal {
	return d.mustSetScale("Floor", scale, RoundFloor)
}

// Reduce returns d with all trailing zeros removed.
// The scale of the result can be negative, for example 1200 is reduced
// to a coefficient of 12 with a scale of -2.
// Zero is reduced to 0 with a scale of 0.
func (d Decimal) Reduce() Decimal {
	if d.IsZero() {
		return Decimal{}
	}
	return d.Trunc(d.MinScale())
}

// Neg returns d with opposite sign.
// The negation of zero is zero.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.IsNeg(), d.coef, d.Scale())
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.coef, d.Scale())
}

// signed returns a signed copy of the coefficient of d multiplied by
// 10^shift.
func (d Decimal) signed(shift int) *bint {
	z := new(bint)
	if d.IsZero() {
		return z
	}
	z.lsh(d.coef, shift)
	if d.IsNeg() {
		z.neg(z)
	}
	return z
}

// Add returns the exact sum of d and e.
// The scale of the sum is the larger of the scales of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	scale := max(d.Scale(), e.Scale())
	dcoef := d.signed(scale - d.Scale())
	ecoef := e.signed(scale - e.Scale())
	dcoef.add(dcoef, ecoef)
	return newDecimalFromSigned(dcoef, scale)
}

// Sub returns the exact difference of d and e.
// The scale of the difference is the larger of the scales of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
// The scale of the product is the sum of the scales of d and e.
func (d Decimal) Mul(e Decimal) Decimal {
	scale := d.Scale() + e.Scale()
	if d.IsZero() || e.IsZero() {
		return newDecimal(false, nil, scale)
	}
	coef := new(bint)
	coef.mul(d.coef, e.coef)
	return newDecimal(d.IsNeg() != e.IsNeg(), coef, scale)
}

// Quo returns the exact quotient of d and e.
// The scale of the quotient is the smallest scale, not less than
// d.Scale() - e.Scale(), that represents the quotient exactly.
//
// Quo returns an error:
//   - wrapping [ErrDivisionByZero] if e is zero;
//   - wrapping [ErrNonTerminating] if the quotient has an infinite decimal
//     expansion, use [Decimal.QuoScale] in this case.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	f, err := d.quoExact(e)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal) quoExact(e Decimal) (Decimal, error) {
	// Special cases
	switch {
	case e.IsZero():
		return Decimal{}, ErrDivisionByZero
	case d.IsZero():
		return newDecimal(false, nil, d.Scale()-e.Scale()), nil
	}

	var (
		num   *bint
		den   *bint
		g     *bint
		r     *bint
		twos  int
		fives int
		shift int
	)

	// Reducing the fraction
	num = new(bint)
	den = getBint()
	defer putBint(den)
	g = getBint()
	defer putBint(g)
	r = getBint()
	defer putBint(r)
	g.gcd(d.coef, e.coef)
	num.quoRem(d.coef, g, r)
	den.quoRem(e.coef, g, r)

	// Denominator must be 2^twos * 5^fives
	twos = den.tzeros2()
	den.rsh2(den, twos)
	fives = den.rem5()
	if !den.isOne() {
		return Decimal{}, ErrNonTerminating
	}

	// Coefficient
	shift = max(twos, fives)
	num.lsh2(num, shift-twos)
	num.mul5(num, shift-fives)

	return newDecimal(d.IsNeg() != e.IsNeg(), num, d.Scale()-e.Scale()+shift), nil
}

// QuoScale returns the quotient of d and e rounded to the given number of
// digits after the decimal point using the given rounding mode.
// The rounding decision takes the whole remainder into account, so the
// result is the exact quotient rounded once.
//
// QuoScale returns an error:
//   - wrapping [ErrDivisionByZero] if e is zero, regardless of the mode;
//   - wrapping [ErrInexactRounding] if mode is [RoundUnnecessary] and the
//     quotient cannot be represented exactly with the given scale;
//   - wrapping [ErrInvalidRoundingMode] if mode is not a valid rounding mode.
func (d Decimal) QuoScale(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	f, err := d.quoScale(e, scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v] with scale %v and %v: %w", d, e, scale, mode, err)
	}
	return f, nil
}

func (d Decimal) quoScale(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	// Special cases
	switch {
	case e.IsZero():
		return Decimal{}, ErrDivisionByZero
	case !mode.valid():
		return Decimal{}, ErrInvalidRoundingMode
	case d.IsZero():
		return newDecimal(false, nil, scale), nil
	}

	var (
		num *bint
		den *bint
		neg bool
	)

	// Alignment, so that num / den has the requested scale
	num = new(bint)
	den = getBint()
	defer putBint(den)
	shift := scale - d.Scale() + e.Scale()
	if shift >= 0 {
		num.lsh(d.coef, shift)
		den.setBint(e.coef)
	} else {
		num.setBint(d.coef)
		den.lsh(e.coef, -shift)
	}

	// Coefficient
	neg = d.IsNeg() != e.IsNeg()
	if err := num.quoMode(num, den, mode, neg); err != nil {
		return Decimal{}, err
	}

	return newDecimal(neg, num, scale), nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// The scales of d and e do not affect the result, so 2.0 and 2.00 are equal.
func (d Decimal) Cmp(e Decimal) int {

	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.IsZero():
		return 0
	}

	// General case
	r := cmpAbs(d, e)
	if d.IsNeg() {
		r = -r
	}
	return r
}

// cmpAbs compares |d| and |e| for non-zero d and e.
func cmpAbs(d, e Decimal) int {

	// Adjusted exponents, the positions of the most significant digits
	dadj := d.Prec() - d.Scale()
	eadj := e.Prec() - e.Scale()
	switch {
	case dadj < eadj:
		return -1
	case eadj < dadj:
		return 1
	}

	// Alignment
	dcoef := d.coef
	ecoef := e.coef
	switch {
	case e.Scale() < d.Scale():
		z := getBint()
		defer putBint(z)
		z.lsh(ecoef, d.Scale()-e.Scale())
		ecoef = z
	case d.Scale() < e.Scale():
		z := getBint()
		defer putBint(z)
		z.lsh(dcoef, e.Scale()-d.Scale())
		dcoef = z
	}

	// Comparison
	return dcoef.cmpAbs(ecoef)
}

// Equal returns true if d and e are numerically equal.
// Also see method [Decimal.Cmp].
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Max returns maximum of d and e.
// If d and e are equal, d is returned.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// If d and e are equal, d is returned.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// Hash returns a 64-bit FNV-1a hash of the numeric value of d.
// Equal decimals have equal hashes regardless of their scales,
// so Hash is consistent with [Decimal.Equal].
func (d Decimal) Hash() uint64 {
	r := d.Reduce()
	h := fnv.New64a()
	var buf [binary.MaxVarintLen64 + 1]byte
	buf[0] = byte(r.Sign() + 1)
	n := binary.PutVarint(buf[1:], int64(r.Scale()))
	h.Write(buf[:n+1])
	if !r.IsZero() {
		h.Write(r.coef.bytes())
	}
	return h.Sum64()
}
