package keypad

import (
	"fmt"

	"deskcalc/internal/calculator"
)

// KeyCode identifies a keypad key. Its value is the key's label.
type KeyCode string

const (
	KeyOne          KeyCode = "1"
	KeyTwo          KeyCode = "2"
	KeyThree        KeyCode = "3"
	KeyFour         KeyCode = "4"
	KeyFive         KeyCode = "5"
	KeySix          KeyCode = "6"
	KeySeven        KeyCode = "7"
	KeyEight        KeyCode = "8"
	KeyNine         KeyCode = "9"
	KeyZero         KeyCode = "0"
	KeyDecimalPoint KeyCode = "."
	KeyNegate       KeyCode = "±"
	KeyClear        KeyCode = "C"
	KeyBackspace    KeyCode = "←"
	KeyEquals       KeyCode = "="
	KeyPlus         KeyCode = "+"
	KeyMinus        KeyCode = "-"
	KeyMultiply     KeyCode = "×"
	KeyDivide       KeyCode = "÷"
)

// allKeys is the keypad order; digits come first.
var allKeys = []KeyCode{
	KeyOne, KeyTwo, KeyThree, KeyFour, KeyFive, KeySix, KeySeven, KeyEight, KeyNine, KeyZero,
	KeyDecimalPoint, KeyNegate, KeyClear, KeyBackspace, KeyEquals,
	KeyPlus, KeyMinus, KeyMultiply, KeyDivide,
}

var keyOperators = map[KeyCode]calculator.Operator{
	KeyPlus:     calculator.Add,
	KeyMinus:    calculator.Subtract,
	KeyMultiply: calculator.Multiply,
	KeyDivide:   calculator.Divide,
}

// operatorKeys lists the operator keys in keypad order.
var operatorKeys = []KeyCode{KeyPlus, KeyMinus, KeyMultiply, KeyDivide}

// keyAliases maps characters found on ordinary keyboards onto keypad keys.
var keyAliases = map[rune]KeyCode{
	'*': KeyMultiply,
	'x': KeyMultiply,
	'/': KeyDivide,
	'c': KeyClear,
}

// UnknownKeyError is returned when text contains a character that is not a key.
type UnknownKeyError struct {
	Rune     rune
	Position int
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q at position %d", e.Rune, e.Position)
}

// AllKeys returns every key in keypad order.
func AllKeys() []KeyCode {
	return append([]KeyCode(nil), allKeys...)
}

// ParseKey maps a label or keyboard alias onto a key.
func ParseKey(r rune) (KeyCode, bool) {
	if k, ok := keyAliases[r]; ok {
		return k, true
	}
	k := KeyCode(string(r))
	if !k.valid() {
		return "", false
	}
	return k, true
}

// ParseKeys maps every rune of text onto a key. Nothing is returned unless
// the whole text is valid.
func ParseKeys(text string) ([]KeyCode, error) {
	keys := make([]KeyCode, 0, len(text))
	position := 0
	for _, r := range text {
		k, ok := ParseKey(r)
		if !ok {
			return nil, &UnknownKeyError{Rune: r, Position: position}
		}
		keys = append(keys, k)
		position++
	}
	return keys, nil
}

// IsDigit reports whether k is one of the ten digit keys.
func (k KeyCode) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// IsOperator reports whether k selects an arithmetic operator.
func (k KeyCode) IsOperator() bool {
	_, ok := keyOperators[k]
	return ok
}

func (k KeyCode) valid() bool {
	for _, known := range allKeys {
		if k == known {
			return true
		}
	}
	return false
}

func (k KeyCode) String() string {
	return string(k)
}
