package calculator

// Error identifies a calculator failure. Operand and Calculator never panic
// on bad input; fallible operations return one of these values instead.
type Error int

const (
	ErrInvalidNumber Error = iota + 1
	ErrInvalidState
	ErrDivisionByZero
	ErrResultTooLarge
	ErrResultTooSmall
)

var errorText = map[Error]string{
	ErrInvalidNumber:  "invalid number",
	ErrInvalidState:   "invalid calculator state",
	ErrDivisionByZero: "division by zero",
	ErrResultTooLarge: "result too large",
	ErrResultTooSmall: "result too small",
}

func (e Error) Error() string {
	if text, ok := errorText[e]; ok {
		return text
	}
	return "unknown calculator error"
}
