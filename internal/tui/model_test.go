package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"deskcalc/internal/keypad"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(15, 17, nil)
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typed(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func TestNewRejectsNarrowDisplay(t *testing.T) {
	_, err := New(15, 12, nil)
	require.ErrorIs(t, err, keypad.ErrDisplayTooNarrow)
}

func TestModelStartsAtZero(t *testing.T) {
	m := newModel(t)
	require.Equal(t, "0", m.Display())
	require.Contains(t, m.View(), "0")
}

func TestModelKeyboard(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want string
	}{
		{name: "addition", msgs: append(typed("12+3"), tea.KeyMsg{Type: tea.KeyEnter}), want: "15"},
		{name: "equals rune", msgs: typed("7*6="), want: "42"},
		{name: "x multiplies", msgs: typed("7x6="), want: "42"},
		{name: "slash divides", msgs: typed("9/4="), want: "2.25"},
		{name: "negate", msgs: typed("5n"), want: "-5"},
		{name: "underscore negates", msgs: typed("5_"), want: "-5"},
		{name: "backspace", msgs: append(typed("123"), tea.KeyMsg{Type: tea.KeyBackspace}), want: "12"},
		{name: "escape clears", msgs: append(typed("123"), tea.KeyMsg{Type: tea.KeyEscape}), want: "0"},
		{name: "delete clears", msgs: append(typed("123"), tea.KeyMsg{Type: tea.KeyDelete}), want: "0"},
		{name: "c clears", msgs: typed("123c"), want: "0"},
		{name: "unmapped keys ignored", msgs: append(typed("1z"), tea.KeyMsg{Type: tea.KeyTab}), want: "1"},
		{name: "decimal point", msgs: typed(".5"), want: "0.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := send(t, newModel(t), tc.msgs...)
			require.Equal(t, tc.want, m.Display())
		})
	}
}

func TestModelErrorBlocksUntilClear(t *testing.T) {
	m := send(t, newModel(t), typed("8/0=")...)
	require.Equal(t, "Division by 0", m.Display())

	m = send(t, m, typed("5")...)
	require.Equal(t, "Division by 0", m.Display())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	require.Equal(t, "0", m.Display())
}

func TestModelOperatorPressedUntilEquals(t *testing.T) {
	m := send(t, newModel(t), typed("2+")...)
	require.True(t, m.keypad.Pressed(keypad.KeyPlus))
	require.True(t, m.ctrl.Blocked(keypad.KeyMinus))

	m = send(t, m, typed("3=")...)
	require.False(t, m.keypad.Pressed(keypad.KeyPlus))
	require.Equal(t, "5", m.Display())
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		next, cmd := newModel(t).Update(msg)
		require.NotNil(t, cmd)
		require.Empty(t, next.View())
	}
}

func TestDisplayTrimsAndTruncates(t *testing.T) {
	d := NewDisplay(5)

	d.Update("  42  ")
	require.Equal(t, "42", d.Text())

	d.Update("1234567")
	require.Equal(t, "12345", d.Text())

	d.Update("   ")
	require.Equal(t, "0", d.Text())
}
