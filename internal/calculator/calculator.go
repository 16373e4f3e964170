package calculator

import (
	"github.com/shopspring/decimal"
)

// divisionGuardPlaces is added to the precision to get the number of decimal
// places a quotient is computed with before it gets clamped.
const divisionGuardPlaces = 13

type slot int

const (
	firstSlot slot = iota
	secondSlot
)

// Calculator holds the operands and the operator of a single
// "<operand> <operator> [<operand>]" expression and evaluates it.
//
// Entry methods report failure through their return values; evaluation
// failures are returned as Error values.
type Calculator struct {
	precision int
	operands  [2]*Operand
	current   slot
	operator  Operator
}

// New returns a calculator whose operands and results are limited to
// precision digits. A non-positive precision selects DefaultPrecision.
func New(precision int) *Calculator {
	if precision < 1 {
		precision = DefaultPrecision
	}
	c := &Calculator{precision: precision}
	c.Clear()
	return c
}

// Precision is the maximal number of digits an operand or a result can have.
func (c *Calculator) Precision() int {
	return c.precision
}

// Clear performs a complete reset.
func (c *Calculator) Clear() {
	c.operands = [2]*Operand{NewOperand(c.precision), NewOperand(c.precision)}
	c.current = firstSlot
	c.operator = ""
}

// Operator returns the pending operator, if any.
func (c *Calculator) Operator() (Operator, bool) {
	return c.operator, c.operator != ""
}

// OperatorSymbol returns the pending operator's symbol or "" when none is set.
func (c *Calculator) OperatorSymbol() string {
	return c.operator.String()
}

// AddOperator sets the operator and switches entry to the second operand.
//
// An empty first operand becomes "0". When an operator is already set the
// call changes nothing and still succeeds, so repeated operator presses keep
// the expression intact.
func (c *Calculator) AddOperator(op Operator) bool {
	if !op.Valid() {
		return false
	}
	if c.operator == "" {
		if cur := c.currentOperand(); cur.Len() == 0 {
			cur.Append('0')
		}
		c.operator = op
		c.current = secondSlot
	}
	return true
}

// AddOperatorSymbol is AddOperator for a textual symbol such as "+".
func (c *Calculator) AddOperatorSymbol(symbol string) bool {
	op, ok := ParseOperator(symbol)
	if !ok {
		return false
	}
	return c.AddOperator(op)
}

// AddDigit appends a digit to the current operand.
func (c *Calculator) AddDigit(digit rune) bool {
	return c.currentOperand().Append(digit)
}

// AddDecimalPoint appends the decimal point to the current operand.
func (c *Calculator) AddDecimalPoint() bool {
	return c.currentOperand().Append(decimalSeparator)
}

// DeleteLastEntry removes the last digit or decimal point of the current
// operand.
func (c *Calculator) DeleteLastEntry() bool {
	return c.currentOperand().DeleteLast()
}

// InvertSign changes the sign of the current operand.
func (c *Calculator) InvertSign() {
	c.currentOperand().InvertSign()
}

// Operand returns the current operand as text.
func (c *Calculator) Operand() string {
	return c.currentOperand().String()
}

// Operands returns both operands as text.
func (c *Calculator) Operands() (first, second string) {
	return c.operands[firstSlot].String(), c.operands[secondSlot].String()
}

// ReplaceOperand sets the current operand to text. On failure the
// calculator is left untouched and ErrInvalidNumber is returned.
func (c *Calculator) ReplaceOperand(text string) error {
	o, err := ParseOperand(text, c.precision)
	if err != nil {
		return err
	}
	c.operands[c.current] = o
	return nil
}

// DecimalResult evaluates the expression. Without a second operand the
// first one is used in its place, so "5 +" gives 10.
func (c *Calculator) DecimalResult() (decimal.Decimal, error) {
	first, ok := c.operands[firstSlot].Decimal()
	if !ok || c.operator == "" {
		return decimal.Decimal{}, ErrInvalidState
	}
	second, ok := c.operands[secondSlot].Decimal()
	if !ok {
		second = first
	}

	var result decimal.Decimal
	switch c.operator {
	case Add:
		result = first.Add(second)
	case Subtract:
		result = first.Sub(second)
	case Multiply:
		result = first.Mul(second)
	case Divide:
		if second.IsZero() {
			return decimal.Decimal{}, ErrDivisionByZero
		}
		result = first.DivRound(second, int32(c.precision+divisionGuardPlaces))
	default:
		return decimal.Decimal{}, ErrInvalidState
	}
	return c.clamp(result)
}

// Result evaluates the expression and renders it without trailing zeros.
func (c *Calculator) Result() (string, error) {
	value, err := c.DecimalResult()
	if err != nil {
		return "", err
	}
	if value.IsInteger() {
		return value.BigInt().String(), nil
	}
	return value.String(), nil
}

// clamp fits number into the calculator's digit capacity, rounding half to
// even.
func (c *Calculator) clamp(number decimal.Decimal) (decimal.Decimal, error) {
	intDigits := integralDigits(number)
	if intDigits > c.precision {
		return decimal.Decimal{}, ErrResultTooLarge
	}

	rounded := number.RoundBank(int32(c.precision - intDigits))
	if integralDigits(rounded) > c.precision {
		return decimal.Decimal{}, ErrResultTooLarge
	}
	if rounded.IsZero() && !number.IsZero() {
		return decimal.Decimal{}, ErrResultTooSmall
	}
	return rounded, nil
}

// integralDigits counts the digits of d rounded to an integer. Zero has one.
func integralDigits(d decimal.Decimal) int {
	return len(d.RoundBank(0).Abs().BigInt().String())
}

func (c *Calculator) currentOperand() *Operand {
	return c.operands[c.current]
}
