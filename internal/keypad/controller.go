package keypad

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"deskcalc/internal/calculator"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger makes the controller log dispatched keys and failed
// evaluations to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller turns key presses into calculator operations and keeps the
// display and the keypad in sync with the calculator state.
//
// It is not safe for concurrent use; each key press is processed completely
// before the next one.
type Controller struct {
	display DisplayView
	keypad  KeypadView
	calc    *calculator.Calculator
	logger  *zap.Logger

	err DisplayError
	// overwrite is set while the display shows a computed result that the
	// next digit, point or backspace discards instead of extending.
	overwrite bool
	blocked   map[KeyCode]struct{}
}

// NewController binds a calculator to its views. The display has to fit the
// calculator precision plus a minus sign and a decimal point.
func NewController(display DisplayView, keypad KeypadView, calc *calculator.Calculator, opts ...Option) (*Controller, error) {
	if display.MaxItems()-2 < calc.Precision() {
		return nil, fmt.Errorf("%w: display holds %d items, precision is %d",
			ErrDisplayTooNarrow, display.MaxItems(), calc.Precision())
	}

	c := &Controller{
		display: display,
		keypad:  keypad,
		calc:    calc,
		logger:  zap.NewNop(),
		blocked: make(map[KeyCode]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// KeyPressed handles a single key press. Blocked keys are ignored; every
// other key ends with a display update.
func (c *Controller) KeyPressed(key KeyCode) {
	if c.Blocked(key) {
		c.logger.Debug("key blocked", zap.Stringer("key", key))
		return
	}

	// a new number typed right after a result replaces the result
	if c.overwrite && (key.IsDigit() || key == KeyDecimalPoint || key == KeyBackspace) {
		c.calc.Clear()
		c.overwrite = false
	}

	switch {
	case key == KeyClear:
		c.clear()
	case key == KeyBackspace:
		c.calc.DeleteLastEntry()
	case key == KeyEquals:
		if _, ok := c.calc.Operator(); ok {
			c.calculateResult()
		}
	case key == KeyNegate:
		c.calc.InvertSign()
	case key.IsOperator():
		c.addOperator(key)
	case key == KeyDecimalPoint:
		c.calc.AddDecimalPoint()
	case key.IsDigit():
		c.calc.AddDigit(rune(key[0]))
	}

	c.logger.Debug("key dispatched", zap.Stringer("key", key), zap.Stringer("controller", c))
	c.updateDisplay()
}

// Err returns the error currently shown, or "" when there is none.
func (c *Controller) Err() DisplayError {
	return c.err
}

// Blocked reports whether key presses of key are currently ignored.
func (c *Controller) Blocked(key KeyCode) bool {
	_, ok := c.blocked[key]
	return ok
}

// BlockedKeys returns the ignored keys in keypad order.
func (c *Controller) BlockedKeys() []KeyCode {
	keys := make([]KeyCode, 0, len(c.blocked))
	for _, k := range allKeys {
		if c.Blocked(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// OverwritePending reports whether the displayed value is a result that the
// next entry replaces.
func (c *Controller) OverwritePending() bool {
	return c.overwrite
}

// Calculator returns the calculator driven by c.
func (c *Controller) Calculator() *calculator.Calculator {
	return c.calc
}

func (c *Controller) clear() {
	c.calc.Clear()
	c.err = ""
	c.overwrite = false
	clear(c.blocked)
	c.keypad.ReleaseAll()
}

func (c *Controller) calculateResult() {
	result, err := c.calc.Result()
	if err != nil {
		c.err = displayErrorFor(err)
		c.logger.Warn("evaluation failed",
			zap.String("operator", c.calc.OperatorSymbol()),
			zap.Error(err),
		)
	}

	c.calc.Clear()
	c.keypad.ReleaseAll()

	if c.err == "" {
		// prefer an error to a silently altered operand
		if err := c.calc.ReplaceOperand(result); err != nil {
			c.err = ErrGeneral
			c.logger.Error("result does not fit an operand", zap.String("result", result), zap.Error(err))
		}
		c.overwrite = true
		for _, k := range operatorKeys {
			delete(c.blocked, k)
		}
	}
	if c.err != "" {
		for _, k := range allKeys {
			if k != KeyClear {
				c.blocked[k] = struct{}{}
			}
		}
	}
}

func (c *Controller) addOperator(key KeyCode) {
	c.calc.AddOperator(keyOperators[key])
	c.overwrite = false
	for _, k := range operatorKeys {
		c.blocked[k] = struct{}{}
	}
	c.keypad.Press(key)
}

func (c *Controller) updateDisplay() {
	c.display.Update(c.displayText())
}

func (c *Controller) displayText() string {
	if c.err != "" {
		return c.err.String()
	}
	first, second := c.calc.Operands()
	if second != "" {
		return second
	}
	return first
}

func (c *Controller) String() string {
	blocked := make([]string, 0, len(c.blocked))
	for _, k := range c.BlockedKeys() {
		blocked = append(blocked, k.String())
	}
	return fmt.Sprintf("Controller(err=%q, blocked=[%s], overwrite=%t)",
		c.err, strings.Join(blocked, " "), c.overwrite)
}
