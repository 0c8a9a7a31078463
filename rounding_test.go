package bikdecimal

import (
	"errors"
	"testing"
)

func TestRoundingMode_increment(t *testing.T) {
	type input struct {
		neg, odd bool
		frac     fraction
	}
	// Every mode is checked on the same inputs, the expected
	// results follow the order of the modes.
	modes := []RoundingMode{RoundUp, RoundDown, RoundCeiling, RoundFloor, RoundHalfUp, RoundHalfDown, RoundHalfEven}
	tests := []struct {
		in   input
		want [7]bool
	}{
		{input{false, false, fracZero}, [7]bool{false, false, false, false, false, false, false}},
		{input{true, true, fracZero}, [7]bool{false, false, false, false, false, false, false}},
		{input{false, false, fracBelowHalf}, [7]bool{true, false, true, false, false, false, false}},
		{input{true, false, fracBelowHalf}, [7]bool{true, false, false, true, false, false, false}},
		{input{false, false, fracHalf}, [7]bool{true, false, true, false, true, false, false}},
		{input{false, true, fracHalf}, [7]bool{true, false, true, false, true, false, true}},
		{input{true, false, fracHalf}, [7]bool{true, false, false, true, true, false, false}},
		{input{true, true, fracHalf}, [7]bool{true, false, false, true, true, false, true}},
		{input{false, false, fracAboveHalf}, [7]bool{true, false, true, false, true, true, true}},
		{input{true, true, fracAboveHalf}, [7]bool{true, false, false, true, true, true, true}},
	}
	for _, tt := range tests {
		for i, mode := range modes {
			got, err := mode.increment(tt.in.neg, tt.in.odd, tt.in.frac)
			if err != nil {
				t.Errorf("%v.increment(%+v) failed: %v", mode, tt.in, err)
				continue
			}
			if got != tt.want[i] {
				t.Errorf("%v.increment(%+v) = %v, want %v", mode, tt.in, got, tt.want[i])
			}
		}
	}

	t.Run("unnecessary", func(t *testing.T) {
		got, err := RoundUnnecessary.increment(false, false, fracZero)
		if err != nil || got {
			t.Errorf("UNNECESSARY.increment(fracZero) = %v, %v, want false, nil", got, err)
		}
		for _, frac := range []fraction{fracBelowHalf, fracHalf, fracAboveHalf} {
			_, err := RoundUnnecessary.increment(true, true, frac)
			if !errors.Is(err, ErrInexactRounding) {
				t.Errorf("UNNECESSARY.increment(%v) = %v, want %v", frac, err, ErrInexactRounding)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, frac := range []fraction{fracZero, fracBelowHalf, fracHalf, fracAboveHalf} {
			_, err := RoundingMode(8).increment(false, false, frac)
			if !errors.Is(err, ErrInvalidRoundingMode) {
				t.Errorf("RoundingMode(8).increment(%v) = %v, want %v", frac, err, ErrInvalidRoundingMode)
			}
		}
	})
}

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want RoundingMode
		}{
			{"UP", RoundUp},
			{"up", RoundUp},
			{"DOWN", RoundDown},
			{"Ceiling", RoundCeiling},
			{"floor", RoundFloor},
			{"HALF_UP", RoundHalfUp},
			{"half-up", RoundHalfUp},
			{"HalfUp", RoundHalfUp},
			{"HALF_DOWN", RoundHalfDown},
			{"HALF_EVEN", RoundHalfEven},
			{"halfeven", RoundHalfEven},
			{"UNNECESSARY", RoundUnnecessary},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.s)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "nearest", "HALF", "HALF__EVEN", "ROUND_HALF_EVEN", " UP", "6"}
		for _, s := range tests {
			_, err := ParseRoundingMode(s)
			if !errors.Is(err, ErrInvalidRoundingMode) {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", s, err, ErrInvalidRoundingMode)
			}
		}
	})
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		m    RoundingMode
		want string
	}{
		{RoundUp, "UP"},
		{RoundDown, "DOWN"},
		{RoundCeiling, "CEILING"},
		{RoundFloor, "FLOOR"},
		{RoundHalfUp, "HALF_UP"},
		{RoundHalfDown, "HALF_DOWN"},
		{RoundHalfEven, "HALF_EVEN"},
		{RoundUnnecessary, "UNNECESSARY"},
		{RoundingMode(8), "RoundingMode(8)"},
	}
	for _, tt := range tests {
		got := tt.m.String()
		if got != tt.want {
			t.Errorf("RoundingMode(%d).String() = %q, want %q", uint8(tt.m), got, tt.want)
		}
		if !tt.m.valid() {
			continue
		}
		parsed, err := ParseRoundingMode(got)
		if err != nil || parsed != tt.m {
			t.Errorf("ParseRoundingMode(%q) = %v, %v, want %v", got, parsed, err, tt.m)
		}
	}
}

func TestRoundingMode_MarshalText(t *testing.T) {
	for m := RoundUp; m <= RoundUnnecessary; m++ {
		b, err := m.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", m, err)
			continue
		}
		var got RoundingMode
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) failed: %v", b, err)
			continue
		}
		if got != m {
			t.Errorf("UnmarshalText(%q) = %v, want %v", b, got, m)
		}
	}

	t.Run("error", func(t *testing.T) {
		_, err := RoundingMode(42).MarshalText()
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("RoundingMode(42).MarshalText() = %v, want %v", err, ErrInvalidRoundingMode)
		}
		var m RoundingMode
		err = m.UnmarshalText([]byte("SIDEWAYS"))
		if !errors.Is(err, ErrInvalidRoundingMode) {
			t.Errorf("UnmarshalText(\"SIDEWAYS\") = %v, want %v", err, ErrInvalidRoundingMode)
		}
	})
}
