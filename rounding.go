package bikdecimal

import (
	"fmt"
	"strings"
)

// RoundingMode determines how a decimal is rounded when digits have to be
// discarded.
// The zero value is [RoundUp].
type RoundingMode uint8

// The following rounding modes are supported.
// The table shows the result of [Decimal.SetScale] with scale 0:
//
//	| Input | UP | DOWN | CEILING | FLOOR | HALF_UP | HALF_DOWN | HALF_EVEN | UNNECESSARY |
//	| ----- | -- | ---- | ------- | ----- | ------- | --------- | --------- | ----------- |
//	|   5.5 |  6 |    5 |       6 |     5 |       6 |         5 |         6 | error       |
//	|   2.5 |  3 |    2 |       3 |     2 |       3 |         2 |         2 | error       |
//	|   1.6 |  2 |    1 |       2 |     1 |       2 |         2 |         2 | error       |
//	|   1.1 |  2 |    1 |       2 |     1 |       1 |         1 |         1 | error       |
//	|   1.0 |  1 |    1 |       1 |     1 |       1 |         1 |         1 | 1           |
//	|  -1.0 | -1 |   -1 |      -1 |    -1 |      -1 |        -1 |        -1 | -1          |
//	|  -1.1 | -2 |   -1 |      -1 |    -2 |      -1 |        -1 |        -1 | error       |
//	|  -1.6 | -2 |   -1 |      -1 |    -2 |      -2 |        -2 |        -2 | error       |
//	|  -2.5 | -3 |   -2 |      -2 |    -3 |      -3 |        -2 |        -2 | error       |
//	|  -5.5 | -6 |   -5 |      -5 |    -6 |      -6 |        -5 |        -6 | error       |
const (
	RoundUp          RoundingMode = iota // away from zero
	RoundDown                            // towards zero
	RoundCeiling                         // towards positive infinity
	RoundFloor                           // towards negative infinity
	RoundHalfUp                          // to nearest, ties away from zero
	RoundHalfDown                        // to nearest, ties towards zero
	RoundHalfEven                        // to nearest, ties to even
	RoundUnnecessary                     // exact result is required
)

var roundingModeNames = [...]string{
	RoundUp:          "UP",
	RoundDown:        "DOWN",
	RoundCeiling:     "CEILING",
	RoundFloor:       "FLOOR",
	RoundHalfUp:      "HALF_UP",
	RoundHalfDown:    "HALF_DOWN",
	RoundHalfEven:    "HALF_EVEN",
	RoundUnnecessary: "UNNECESSARY",
}

// ParseRoundingMode converts a name such as "HALF_EVEN", "half-even" or
// "halfeven" to a rounding mode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	for m, n := range roundingModeNames {
		if name == n || name == strings.ReplaceAll(n, "_", "") {
			return RoundingMode(m), nil
		}
	}
	return 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidRoundingMode)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(m))
	}
	return roundingModeNames[m]
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("marshaling %v: %w", m, ErrInvalidRoundingMode)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see [ParseRoundingMode].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *RoundingMode) UnmarshalText(text []byte) error {
	var err error
	*m, err = ParseRoundingMode(string(text))
	return err
}

func (m RoundingMode) valid() bool {
	return int(m) < len(roundingModeNames)
}

// fraction classifies the discarded part of a number relative to half a unit
// in the last retained place.
type fraction int8

const (
	fracZero      fraction = iota // nothing was discarded
	fracBelowHalf                 // 0 < discarded < 0.5
	fracHalf                      // discarded == 0.5
	fracAboveHalf                 // 0.5 < discarded < 1
)

// increment reports whether the retained magnitude has to be incremented by
// one unit.
// The neg argument is the sign of the number being rounded, odd tells whether
// the last retained digit is odd.
func (m RoundingMode) increment(neg, odd bool, frac fraction) (bool, error) {
	if frac == fracZero {
		if !m.valid() {
			return false, fmt.Errorf("rounding with %v: %w", m, ErrInvalidRoundingMode)
		}
		return false, nil
	}
	switch m {
	case RoundUp:
		return true, nil
	case RoundDown:
		return false, nil
	case RoundCeiling:
		return !neg, nil
	case RoundFloor:
		return neg, nil
	case RoundHalfUp:
		return frac >= fracHalf, nil
	case RoundHalfDown:
		return frac > fracHalf, nil
	case RoundHalfEven:
		return frac > fracHalf || (frac == fracHalf && odd), nil
	case RoundUnnecessary:
		return false, ErrInexactRounding
	default:
		return false, fmt.Errorf("rounding with %v: %w", m, ErrInvalidRoundingMode)
	}
}
