package keypad

import (
	"errors"

	"deskcalc/internal/calculator"
)

// DisplayError is an error message shown to the user. Messages must stay
// short enough for the display.
type DisplayError string

const (
	ErrDivisionByZero DisplayError = "Division by 0"
	ErrResultTooLarge DisplayError = "Number too large"
	ErrResultTooSmall DisplayError = "Number too small"
	ErrGeneral        DisplayError = "Unknown error"
)

// ErrDisplayTooNarrow is returned by NewController when the display cannot
// show a full precision negative decimal number.
var ErrDisplayTooNarrow = errors.New("display is incapable of showing full calculator precision")

// displayErrorFor maps a calculator failure onto the message shown for it.
func displayErrorFor(err error) DisplayError {
	switch {
	case errors.Is(err, calculator.ErrDivisionByZero):
		return ErrDivisionByZero
	case errors.Is(err, calculator.ErrResultTooLarge):
		return ErrResultTooLarge
	case errors.Is(err, calculator.ErrResultTooSmall):
		return ErrResultTooSmall
	default:
		return ErrGeneral
	}
}

func (e DisplayError) String() string {
	return string(e)
}
