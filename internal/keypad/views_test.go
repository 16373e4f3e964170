package keypad

// dummyDisplay records every display update.
type dummyDisplay struct {
	maxItems int
	history  []string
}

func (d *dummyDisplay) Update(text string) {
	d.history = append(d.history, text)
}

func (d *dummyDisplay) MaxItems() int {
	return d.maxItems
}

func (d *dummyDisplay) last() string {
	if len(d.history) == 0 {
		return ""
	}
	return d.history[len(d.history)-1]
}

// dummyKeypad records pressed keys and counts releases.
type dummyKeypad struct {
	pressed  []KeyCode
	releases int
}

func (k *dummyKeypad) Press(code KeyCode) {
	k.pressed = append(k.pressed, code)
}

func (k *dummyKeypad) ReleaseAll() {
	k.releases++
}
