package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"deskcalc/internal/calculator"
	"deskcalc/internal/keypad"
)

// keypad rows as drawn on screen
var layout = [][]keypad.KeyCode{
	{keypad.KeyClear, keypad.KeyBackspace, keypad.KeyNegate, keypad.KeyDivide},
	{keypad.KeySeven, keypad.KeyEight, keypad.KeyNine, keypad.KeyMultiply},
	{keypad.KeyFour, keypad.KeyFive, keypad.KeySix, keypad.KeyMinus},
	{keypad.KeyOne, keypad.KeyTwo, keypad.KeyThree, keypad.KeyPlus},
	{keypad.KeyZero, keypad.KeyDecimalPoint, keypad.KeyEquals},
}

// named keys that have no single-rune label
var namedKeys = map[string]keypad.KeyCode{
	"enter":     keypad.KeyEquals,
	"backspace": keypad.KeyBackspace,
	"esc":       keypad.KeyClear,
	"delete":    keypad.KeyClear,
	"n":         keypad.KeyNegate,
	"_":         keypad.KeyNegate,
}

// Model is the Bubble Tea model of an interactive calculator.
type Model struct {
	ctrl     *keypad.Controller
	display  *Display
	keypad   *Keypad
	quitting bool
}

// New builds a model around a fresh calculator.
func New(precision, displayItems int, logger *zap.Logger) (Model, error) {
	display := NewDisplay(displayItems)
	pad := NewKeypad()
	ctrl, err := keypad.NewController(display, pad, calculator.New(precision), keypad.WithLogger(logger))
	if err != nil {
		return Model{}, err
	}
	return Model{ctrl: ctrl, display: display, keypad: pad}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := keyMsg.String(); s {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	default:
		if code, ok := keyFor(s); ok {
			m.ctrl.KeyPressed(code)
		}
	}
	return m, nil
}

// keyFor maps a Bubble Tea key name onto a keypad key.
func keyFor(s string) (keypad.KeyCode, bool) {
	if code, ok := namedKeys[s]; ok {
		return code, true
	}
	r := []rune(s)
	if len(r) != 1 {
		return "", false
	}
	return keypad.ParseKey(r[0])
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := displayStyle
	if m.ctrl.Err() != "" {
		style = displayErrorStyle
	}
	// room for every character plus the padding
	screen := style.Width(m.display.MaxItems() + 2).Render(m.display.Text())

	rows := make([]string, 0, len(layout))
	for _, row := range layout {
		cells := make([]string, 0, len(row))
		for _, code := range row {
			cells = append(cells, m.keyStyle(code).Render(code.String()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	var b strings.Builder
	b.WriteString(screen)
	b.WriteString("\n")
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter = · esc clear · n ± · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) keyStyle(code keypad.KeyCode) lipgloss.Style {
	switch {
	case m.keypad.Pressed(code):
		return pressedKeyStyle
	case m.ctrl.Blocked(code):
		return blockedKeyStyle
	case code == keypad.KeyEquals:
		return equalsKeyStyle
	case code.IsOperator():
		return operatorKeyStyle
	default:
		return keyStyle
	}
}

// Display returns the text currently shown.
func (m Model) Display() string {
	return m.display.Text()
}
