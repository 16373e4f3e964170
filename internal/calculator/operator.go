package calculator

// Operator is one of the four arithmetic operations. Its value is the symbol
// shown for it.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// ParseOperator maps a symbol onto an Operator.
func ParseOperator(symbol string) (Operator, bool) {
	op := Operator(symbol)
	if !op.Valid() {
		return "", false
	}
	return op, true
}

// Valid reports whether op is one of the four supported operators.
func (op Operator) Valid() bool {
	switch op {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

func (op Operator) String() string {
	return string(op)
}
