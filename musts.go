package bikdecimal

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the float is
// a special value.
func MustNewFromFloat64(f float64) Decimal {
	d, err := NewFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return d
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuo(%q) failed: %v", d, e, err))
	}
	return f
}

// MustQuoScale is like [Decimal.QuoScale] but panics if computing error.
func (d Decimal) MustQuoScale(e Decimal, scale int, mode RoundingMode) Decimal {
	f, err := d.QuoScale(e, scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuoScale(%q, %v, %v) failed: %v", d, e, scale, mode, err))
	}
	return f
}

// MustSetScale is like [Decimal.SetScale] but panics if rounding error.
func (d Decimal) MustSetScale(scale int, mode RoundingMode) Decimal {
	f, err := d.SetScale(scale, mode)
	if err != nil {
		panic(fmt.Sprintf("%q.MustSetScale(%v, %v) failed: %v", d, scale, mode, err))
	}
	return f
}
