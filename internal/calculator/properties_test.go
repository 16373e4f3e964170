package calculator

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// drawOperand builds an operand from a random sequence of Append calls,
// optionally inverting the sign.
func drawOperand(t *rapid.T, precision int) *Operand {
	o := NewOperand(precision)
	entries := rapid.SliceOfN(rapid.SampledFrom([]rune("0123456789.")), 0, precision+5).Draw(t, "entries")
	for _, ch := range entries {
		o.Append(ch)
	}
	if rapid.Bool().Draw(t, "negative") {
		o.InvertSign()
	}
	return o
}

func TestAppendNeverExceedsPrecision(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		precision := rapid.IntRange(1, 20).Draw(t, "precision")
		o := NewOperand(precision)

		entries := rapid.SliceOf(rapid.SampledFrom([]rune("0123456789.-x "))).Draw(t, "entries")
		for _, ch := range entries {
			o.Append(ch)
			if o.Len() > precision {
				t.Fatalf("operand %q exceeds precision %d", o, precision)
			}
		}

		if o.Len() == precision {
			before := o.String()
			digit := rapid.RuneFrom([]rune("123456789")).Draw(t, "digit")
			if o.Append(digit) {
				t.Fatalf("digit %q accepted beyond precision %d", digit, precision)
			}
			if o.String() != before {
				t.Fatalf("operand changed from %q to %q", before, o)
			}
		}
	})
}

func TestDeleteLastFailsOnceAtEmpty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		o := drawOperand(t, rapid.IntRange(1, 20).Draw(t, "precision"))

		want := o.Len()
		if strings.Contains(o.String(), ".") {
			want++
		}

		deleted := 0
		for o.DeleteLast() {
			deleted++
			if deleted > want {
				t.Fatalf("deleted %d entries, expected at most %d", deleted, want)
			}
		}
		if deleted != want {
			t.Fatalf("expected %d deletions, got %d", want, deleted)
		}
		if o.String() != "" {
			t.Fatalf("expected an empty operand, got %q", o)
		}
		if o.DeleteLast() {
			t.Fatal("expected DeleteLast to keep failing on an empty operand")
		}
	})
}

func TestParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		precision := rapid.IntRange(1, 20).Draw(t, "precision")
		o := drawOperand(t, precision)

		parsed, err := ParseOperand(o.String(), precision)
		if err != nil {
			t.Fatalf("parsing %q: %v", o, err)
		}
		if parsed.String() != o.String() {
			t.Fatalf("expected %q, got %q", o, parsed)
		}

		want, wantOK := o.Decimal()
		got, gotOK := parsed.Decimal()
		if wantOK != gotOK {
			t.Fatalf("presence mismatch for %q", o)
		}
		if wantOK && (!got.Equal(want) || got.Exponent() != want.Exponent()) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}

func TestDivisionByZeroNeverYieldsNumber(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dividend := drawOperand(t, DefaultPrecision)
		if dividend.Len() == 0 {
			dividend.Append('1')
		}
		zero := rapid.SampledFrom([]string{"0", "-0", "0.", "0.0", "0.00000"}).Draw(t, "zero")

		c := New(DefaultPrecision)
		if err := c.ReplaceOperand(dividend.String()); err != nil {
			t.Fatalf("replacing operand with %q: %v", dividend, err)
		}
		c.AddOperator(Divide)
		if err := c.ReplaceOperand(zero); err != nil {
			t.Fatalf("replacing operand with %q: %v", zero, err)
		}

		if _, err := c.Result(); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("%s / %s: expected ErrDivisionByZero, got %v", dividend, zero, err)
		}
	})
}
