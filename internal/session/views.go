package session

import (
	"deskcalc/internal/keypad"
)

// recordingDisplay keeps the displayed text and the last few updates.
type recordingDisplay struct {
	maxItems int
	limit    int
	text     string
	updates  int
	history  []string
}

func newRecordingDisplay(maxItems, limit int) *recordingDisplay {
	return &recordingDisplay{maxItems: maxItems, limit: limit}
}

func (d *recordingDisplay) Update(text string) {
	d.text = text
	d.updates++
	if d.limit <= 0 {
		return
	}
	if len(d.history) == d.limit {
		d.history = append(d.history[:0], d.history[1:]...)
	}
	d.history = append(d.history, text)
}

func (d *recordingDisplay) MaxItems() int {
	return d.maxItems
}

func (d *recordingDisplay) recent() []string {
	return append([]string{}, d.history...)
}

// recordingKeypad tracks which keys are shown pressed.
type recordingKeypad struct {
	pressed map[keypad.KeyCode]struct{}
}

func newRecordingKeypad() *recordingKeypad {
	return &recordingKeypad{pressed: make(map[keypad.KeyCode]struct{})}
}

func (k *recordingKeypad) Press(code keypad.KeyCode) {
	k.pressed[code] = struct{}{}
}

func (k *recordingKeypad) ReleaseAll() {
	clear(k.pressed)
}

func (k *recordingKeypad) pressedKeys() []keypad.KeyCode {
	keys := make([]keypad.KeyCode, 0, len(k.pressed))
	for _, code := range keypad.AllKeys() {
		if _, ok := k.pressed[code]; ok {
			keys = append(keys, code)
		}
	}
	return keys
}
