package tui

import (
	"strings"

	"deskcalc/internal/keypad"
)

// Display is a fixed-width text display. Blank text shows as "0".
type Display struct {
	maxItems int
	text     string
}

func NewDisplay(maxItems int) *Display {
	return &Display{maxItems: maxItems, text: "0"}
}

func (d *Display) Update(text string) {
	text = strings.TrimSpace(text)
	if r := []rune(text); len(r) > d.maxItems {
		text = string(r[:d.maxItems])
	}
	if text == "" {
		text = "0"
	}
	d.text = text
}

func (d *Display) MaxItems() int { return d.maxItems }

func (d *Display) Text() string { return d.text }

// Keypad tracks which keys are drawn pressed.
type Keypad struct {
	pressed map[keypad.KeyCode]struct{}
}

func NewKeypad() *Keypad {
	return &Keypad{pressed: make(map[keypad.KeyCode]struct{})}
}

func (k *Keypad) Press(code keypad.KeyCode) {
	k.pressed[code] = struct{}{}
}

func (k *Keypad) ReleaseAll() {
	clear(k.pressed)
}

func (k *Keypad) Pressed(code keypad.KeyCode) bool {
	_, ok := k.pressed[code]
	return ok
}
