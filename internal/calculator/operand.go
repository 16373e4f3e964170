package calculator

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the maximal number of digits an operand or a result
// holds when no precision is configured.
const DefaultPrecision = 15

const (
	decimalSeparator = '.'
	minusSign        = '-'
)

// Operand is a decimal number composed digit by digit.
//
// Digits can be appended and removed from the least significant end, the
// sign can be inverted, and the number of digits (sign and decimal point not
// counted) is capped by the precision. Methods report failure through their
// return values and leave the operand unchanged.
type Operand struct {
	negative   bool
	digits     []byte
	decimalIdx int // 0 means no decimal point
	precision  int
}

// NewOperand returns an empty operand capped at precision digits.
func NewOperand(precision int) *Operand {
	if precision < 1 {
		precision = DefaultPrecision
	}
	return &Operand{precision: precision}
}

// ParseOperand builds an operand from text such as "-12.5".
//
// Blank text yields an empty operand. The text is fed through Append one
// character at a time, so it is subject to the same rules: a second decimal
// point, a non-digit character, a bare sign or more digits than precision
// all fail with ErrInvalidNumber.
func ParseOperand(text string, precision int) (*Operand, error) {
	o := NewOperand(precision)

	text = strings.TrimSpace(text)
	if text == "" {
		return o, nil
	}

	negative := text[0] == minusSign
	if negative {
		text = text[1:]
	}
	if text == "" {
		return nil, ErrInvalidNumber
	}

	for _, ch := range text {
		if !o.Append(ch) {
			return nil, ErrInvalidNumber
		}
	}
	if negative {
		o.InvertSign()
	}
	return o, nil
}

// Append adds a digit or the decimal separator.
//
// Leading zeroes are not accepted ("00" and "01" are impossible, "0.0" is
// fine) and a separator added to an empty operand is prefixed by '0'.
func (o *Operand) Append(ch rune) bool {
	if ch == decimalSeparator {
		if o.decimalIdx != 0 {
			return false
		}
		if len(o.digits) == 0 {
			o.digits = append(o.digits, '0')
		}
		o.decimalIdx = len(o.digits)
		return true
	}

	if ch < '0' || ch > '9' {
		return false
	}
	if len(o.digits) >= o.precision {
		return false
	}
	if o.decimalIdx == 0 && len(o.digits) == 1 && o.digits[0] == '0' {
		if ch == '0' {
			return false
		}
		o.digits = o.digits[:0]
	}
	o.digits = append(o.digits, byte(ch))
	return true
}

// InvertSign toggles the sign. An empty operand has no sign to invert.
func (o *Operand) InvertSign() bool {
	if len(o.digits) == 0 {
		return false
	}
	o.negative = !o.negative
	return true
}

// DeleteLast removes the last digit, or the decimal separator when it is the
// last character.
func (o *Operand) DeleteLast() bool {
	if len(o.digits) == 0 {
		return false
	}
	if o.decimalIdx == len(o.digits) {
		o.decimalIdx = 0
	} else {
		o.digits = o.digits[:len(o.digits)-1]
	}
	if len(o.digits) == 0 {
		o.negative = false
	}
	return true
}

// Decimal returns the exact value of the operand, keeping the scale implied
// by the decimal point ("1.50" has two decimal places). ok is false for an
// empty operand.
func (o *Operand) Decimal() (d decimal.Decimal, ok bool) {
	if len(o.digits) == 0 {
		return decimal.Decimal{}, false
	}

	coef, _ := new(big.Int).SetString(string(o.digits), 10)
	if o.negative {
		coef.Neg(coef)
	}

	scale := 0
	if o.decimalIdx != 0 {
		scale = len(o.digits) - o.decimalIdx
	}
	return decimal.NewFromBigInt(coef, int32(-scale)), true
}

// Len returns the number of digits held. It is mainly an emptiness test.
func (o *Operand) Len() int {
	return len(o.digits)
}

// Precision returns the maximal number of digits the operand accepts.
func (o *Operand) Precision() int {
	return o.precision
}

// Clone returns a deep copy.
func (o *Operand) Clone() *Operand {
	c := *o
	c.digits = append([]byte(nil), o.digits...)
	return &c
}

func (o *Operand) String() string {
	var b strings.Builder
	b.Grow(len(o.digits) + 2)

	if o.negative {
		b.WriteByte(minusSign)
	}
	if o.decimalIdx == 0 {
		b.Write(o.digits)
		return b.String()
	}
	b.Write(o.digits[:o.decimalIdx])
	b.WriteByte(decimalSeparator)
	b.Write(o.digits[o.decimalIdx:])
	return b.String()
}
