package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"deskcalc/internal/calculator"
	"deskcalc/internal/keypad"
)

// Options sizes the calculator and display of every session.
type Options struct {
	Precision    int
	DisplayItems int
	// HistorySize is the number of display updates a session remembers.
	HistorySize int
}

// KeyOutcome describes what a single key press did.
type KeyOutcome struct {
	Key keypad.KeyCode
	// Dispatched is false for keys the controller ignored.
	Dispatched bool
	// Evaluated is set when the key computed a result or an error.
	Evaluated bool
	Operator  string
	Err       keypad.DisplayError
	Display   string
	Started   time.Time
	Duration  time.Duration
}

// Session is one calculator with its controller and recording views.
type Session struct {
	ID      string
	Created time.Time

	mu      sync.Mutex
	calc    *calculator.Calculator
	ctrl    *keypad.Controller
	display *recordingDisplay
	keypad  *recordingKeypad
}

// New creates a session. It fails when the display cannot hold the
// configured precision.
func New(id string, opts Options, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	display := newRecordingDisplay(opts.DisplayItems, opts.HistorySize)
	pad := newRecordingKeypad()
	calc := calculator.New(opts.Precision)

	ctrl, err := keypad.NewController(display, pad, calc,
		keypad.WithLogger(logger.With(zap.String("session_id", id))))
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:      id,
		Created: time.Now().UTC(),
		calc:    calc,
		ctrl:    ctrl,
		display: display,
		keypad:  pad,
	}, nil
}

// PressKeys dispatches keys in order while holding the session lock.
// observe, when not nil, receives the outcome of every key.
func (s *Session) PressKeys(keys []keypad.KeyCode, observe func(KeyOutcome)) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		outcome := s.press(key)
		if observe != nil {
			observe(outcome)
		}
	}
	return s.snapshot()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) press(key keypad.KeyCode) KeyOutcome {
	outcome := KeyOutcome{
		Key:      key,
		Operator: s.calc.OperatorSymbol(),
		Started:  time.Now(),
	}
	_, hasOperator := s.calc.Operator()
	updates := s.display.updates

	s.ctrl.KeyPressed(key)

	outcome.Duration = time.Since(outcome.Started)
	outcome.Dispatched = s.display.updates != updates
	outcome.Evaluated = outcome.Dispatched && key == keypad.KeyEquals && hasOperator
	outcome.Err = s.ctrl.Err()
	outcome.Display = s.display.text
	return outcome
}

func (s *Session) snapshot() Snapshot {
	first, second := s.calc.Operands()

	snap := Snapshot{
		ID:               s.ID,
		Display:          s.display.text,
		Error:            s.ctrl.Err().String(),
		Operator:         s.calc.OperatorSymbol(),
		Operands:         [2]string{first, second},
		Pressed:          keyLabels(s.keypad.pressedKeys()),
		Blocked:          keyLabels(s.ctrl.BlockedKeys()),
		OverwritePending: s.ctrl.OverwritePending(),
		Recent:           s.display.recent(),
		Created:          s.Created,
	}
	return snap
}

func keyLabels(keys []keypad.KeyCode) []string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.String()
	}
	return labels
}
