package keypad

// DisplayView is the calculator display the controller writes to.
type DisplayView interface {
	// Update replaces the displayed text.
	Update(text string)
	// MaxItems is the number of characters the display can show.
	MaxItems() int
}

// KeypadView renders the pressed state of keys.
type KeypadView interface {
	// Press switches the key into its pressed visual state.
	Press(code KeyCode)
	// ReleaseAll switches every key into its released visual state.
	ReleaseAll()
}
