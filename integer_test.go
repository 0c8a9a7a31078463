package bikdecimal

import (
	"errors"
	"testing"
)

func TestBint_prec(t *testing.T) {
	tests := []struct {
		z    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"9", 1},
		{"10", 2},
		{"99", 2},
		{"100", 3},
		{"9999999999999999999", 19},
		{"10000000000000000000", 20},
		{"999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999999", 99},
		{"1000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", 100},
		{"10000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000", 101},
	}
	for _, tt := range tests {
		z := mustParseBint(tt.z)
		got := z.prec()
		if got != tt.want {
			t.Errorf("mustParseBint(%q).prec() = %v, want %v", tt.z, got, tt.want)
		}
	}
}

func TestBint_tzeros(t *testing.T) {
	tests := []struct {
		z    string
		want int
	}{
		{"0", 0},
		{"1", 0},
		{"2", 0},
		{"5", 0},
		{"10", 1},
		{"20", 1},
		{"1000", 3},
		{"1024", 0},
		{"500", 2},
		{"123000000000000000000000000000", 27},
	}
	for _, tt := range tests {
		z := mustParseBint(tt.z)
		got := z.tzeros()
		if got != tt.want {
			t.Errorf("mustParseBint(%q).tzeros() = %v, want %v", tt.z, got, tt.want)
		}
	}
}

func TestBint_uint64(t *testing.T) {
	tests := []struct {
		z    string
		want uint64
	}{
		{"0", 0},
		{"1", 1},
		{"18446744073709551615", 18446744073709551615},
		{"18446744073709551616", 0},
		{"18446744073709551618", 2},
		{"36893488147419103233", 1},
	}
	for _, tt := range tests {
		z := mustParseBint(tt.z)
		got := z.uint64()
		if got != tt.want {
			t.Errorf("mustParseBint(%q).uint64() = %v, want %v", tt.z, got, tt.want)
		}
	}
}

func TestBint_rem5(t *testing.T) {
	tests := []struct {
		z       string
		want    int
		wantRem string
	}{
		{"1", 0, "1"},
		{"5", 1, "1"},
		{"3125", 5, "1"},
		{"75", 2, "3"},
		{"7", 0, "7"},
	}
	for _, tt := range tests {
		z := mustParseBint(tt.z)
		got := z.rem5()
		if got != tt.want || z.string() != tt.wantRem {
			t.Errorf("mustParseBint(%q).rem5() = %v, %v, want %v, %v", tt.z, got, z.string(), tt.want, tt.wantRem)
		}
	}
}

func TestBint_rshMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x     string
			shift int
			mode  RoundingMode
			neg   bool
			want  string
		}{
			{"0", 5, RoundUp, false, "0"},
			{"12345", 0, RoundUp, false, "12345"},
			{"12345", 2, RoundDown, false, "123"},
			{"12345", 2, RoundUp, false, "124"},
			{"12350", 2, RoundHalfEven, false, "124"},
			{"12450", 2, RoundHalfEven, false, "124"},
			{"12450", 2, RoundHalfUp, false, "125"},
			{"12345", 2, RoundCeiling, true, "123"},
			{"12345", 2, RoundFloor, true, "124"},
			{"5", 1, RoundHalfUp, false, "1"},
			{"5", 1, RoundHalfDown, false, "0"},
			{"5", 2, RoundHalfUp, false, "0"},
			{"5", 2, RoundUp, false, "1"},
			{"99999", 200, RoundCeiling, false, "1"},
			{"99999", 200, RoundCeiling, true, "0"},
		}
		for _, tt := range tests {
			x := mustParseBint(tt.x)
			z := new(bint)
			err := z.rshMode(x, tt.shift, tt.mode, tt.neg)
			if err != nil {
				t.Errorf("rshMode(%v, %v, %v, %v) failed: %v", tt.x, tt.shift, tt.mode, tt.neg, err)
				continue
			}
			if z.string() != tt.want {
				t.Errorf("rshMode(%v, %v, %v, %v) = %v, want %v", tt.x, tt.shift, tt.mode, tt.neg, z.string(), tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		z := new(bint)
		err := z.rshMode(mustParseBint("12345"), 2, RoundUnnecessary, false)
		if !errors.Is(err, ErrInexactRounding) {
			t.Errorf("rshMode(12345, 2, UNNECESSARY) = %v, want %v", err, ErrInexactRounding)
		}
		err = z.rshMode(mustParseBint("12300"), 2, RoundUnnecessary, false)
		if err != nil || z.string() != "123" {
			t.Errorf("rshMode(12300, 2, UNNECESSARY) = %v, %v, want 123, nil", z.string(), err)
		}
	})
}

func TestBint_lsh(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 3, "0"},
		{"7", 0, "7"},
		{"7", 3, "7000"},
		{"12", 120, "12" + "000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000"},
	}
	for _, tt := range tests {
		z := new(bint)
		z.lsh(mustParseBint(tt.x), tt.shift)
		if z.string() != tt.want {
			t.Errorf("lsh(%v, %v) = %v, want %v", tt.x, tt.shift, z.string(), tt.want)
		}
	}
}
