package session

import (
	"errors"
	"slices"
	"testing"

	"deskcalc/internal/keypad"
)

var testOptions = Options{Precision: 15, DisplayItems: 17, HistorySize: 4}

func mustKeys(t *testing.T, text string) []keypad.KeyCode {
	t.Helper()
	keys, err := keypad.ParseKeys(text)
	if err != nil {
		t.Fatalf("parsing keys %q: %v", text, err)
	}
	return keys
}

func TestNewRejectsNarrowDisplay(t *testing.T) {
	_, err := New("s", Options{Precision: 15, DisplayItems: 10}, nil)
	if !errors.Is(err, keypad.ErrDisplayTooNarrow) {
		t.Fatalf("expected ErrDisplayTooNarrow, got %v", err)
	}
}

func TestSessionPressKeysSnapshot(t *testing.T) {
	s, err := New("s1", testOptions, nil)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}

	snap := s.PressKeys(mustKeys(t, "12×3"), nil)

	if snap.ID != "s1" || snap.Display != "3" || snap.Operator != "*" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Operands != [2]string{"12", "3"} {
		t.Fatalf("expected operands [12 3], got %q", snap.Operands)
	}
	if !slices.Equal(snap.Pressed, []string{"×"}) {
		t.Fatalf("expected × pressed, got %q", snap.Pressed)
	}
	if !slices.Equal(snap.Blocked, []string{"+", "-", "×", "÷"}) {
		t.Fatalf("expected operator keys blocked, got %q", snap.Blocked)
	}
	if !slices.Equal(snap.Recent, []string{"1", "12", "12", "3"}) {
		t.Fatalf("expected recent updates, got %q", snap.Recent)
	}
}

func TestSessionRecentIsBounded(t *testing.T) {
	s, _ := New("s", testOptions, nil)

	snap := s.PressKeys(mustKeys(t, "123456"), nil)

	if !slices.Equal(snap.Recent, []string{"123", "1234", "12345", "123456"}) {
		t.Fatalf("expected the last four updates, got %q", snap.Recent)
	}
}

func TestSessionKeyOutcomes(t *testing.T) {
	s, _ := New("s", testOptions, nil)

	var outcomes []KeyOutcome
	snap := s.PressKeys(mustKeys(t, "8÷0=1"), func(o KeyOutcome) {
		outcomes = append(outcomes, o)
	})

	if len(outcomes) != 5 {
		t.Fatalf("expected 5 outcomes, got %d", len(outcomes))
	}

	eq := outcomes[3]
	if !eq.Dispatched || !eq.Evaluated || eq.Operator != "/" || eq.Err != keypad.ErrDivisionByZero {
		t.Fatalf("unexpected outcome for '=': %+v", eq)
	}
	if outcomes[4].Dispatched {
		t.Fatal("expected the digit after an error to be blocked")
	}
	if snap.Error != keypad.ErrDivisionByZero.String() || snap.Display != "Division by 0" {
		t.Fatalf("expected error snapshot, got %+v", snap)
	}
}

func TestSessionEqualsWithoutOperatorIsNotEvaluation(t *testing.T) {
	s, _ := New("s", testOptions, nil)

	var last KeyOutcome
	s.PressKeys(mustKeys(t, "5="), func(o KeyOutcome) { last = o })

	if !last.Dispatched || last.Evaluated {
		t.Fatalf("expected a dispatched, non-evaluating '=', got %+v", last)
	}
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore(testOptions, 2, nil)

	a, err := st.Create()
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	if _, err := st.Create(); err != nil {
		t.Fatalf("creating session: %v", err)
	}
	if _, err := st.Create(); !errors.Is(err, ErrStoreFull) {
		t.Fatalf("expected ErrStoreFull, got %v", err)
	}

	if got, ok := st.Get(a.ID); !ok || got != a {
		t.Fatalf("expected to find session %s", a.ID)
	}
	if !st.Delete(a.ID) {
		t.Fatal("expected delete to succeed")
	}
	if st.Delete(a.ID) {
		t.Fatal("expected second delete to fail")
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", st.Len())
	}
}
