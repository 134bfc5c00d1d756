package cli

import (
	"math"
	"strings"
	"testing"
)

func TestFormatValueWholeDollars(t *testing.T) {
	cases := map[float64]string{
		0:        "$0.00",
		7:        "$7.00",
		999:      "$999.00",
		1234:     "$1,234.00",
		100000:   "$100,000.00",
		1234567:  "$1,234,567.00",
		-500:     "$-500.00",
		-1234567: "$-1,234,567.00",

		// Above 2^53 every digit of the exact value is printed.
		1 << 60:          "$1,152,921,504,606,846,976.00",
		-(1 << 60):       "$-1,152,921,504,606,846,976.00",
		9007199254740993: "$9,007,199,254,740,992.00",
		1e20:             "$100,000,000,000,000,000,000.00",

		// From 1e21 up the exponent form is kept.
		1e21:    "$1e+21",
		-1e21:   "$-1e+21",
		1.5e300: "$1.5e+300",
	}
	for in, want := range cases {
		got, ok := FormatValue(in)
		if !ok {
			t.Errorf("FormatValue(%v) rejected, want %q", in, want)
			continue
		}
		if got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatValueShape(t *testing.T) {
	for n := 0; n < 5_000_000; n += 4_999 {
		got, ok := FormatValue(float64(n))
		if !ok {
			t.Fatalf("FormatValue(%d) rejected", n)
		}
		if !strings.HasPrefix(got, "$") {
			t.Fatalf("FormatValue(%d) = %q, missing $", n, got)
		}
		whole, frac, found := strings.Cut(got[1:], ".")
		if !found || len(frac) != 2 {
			t.Fatalf("FormatValue(%d) = %q, want two decimals", n, got)
		}
		groups := strings.Split(whole, ",")
		if len(groups[0]) < 1 || len(groups[0]) > 3 {
			t.Fatalf("FormatValue(%d) = %q, bad leading group", n, got)
		}
		for _, g := range groups[1:] {
			if len(g) != 3 {
				t.Fatalf("FormatValue(%d) = %q, bad grouping", n, got)
			}
		}
	}
}

func TestFormatValueRejectsNonIntegers(t *testing.T) {
	for _, in := range []float64{1234.5, 0.01, -0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got, ok := FormatValue(in); ok {
			t.Errorf("FormatValue(%v) = %q, want rejection", in, got)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}
