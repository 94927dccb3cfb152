package led

// Button holds the sampled state of a push button across two frame
// boundaries.
type Button struct {
	previous bool
	current  bool
}

// Pressed reports whether the button was held when the frame started.
func (b *Button) Pressed() bool {
	return b.current
}

// JustPressed reports a rising edge since the previous frame. It stays the
// same for every tick of a frame.
func (b *Button) JustPressed() bool {
	return b.current && b.current != b.previous
}

func (b *Button) sample(pressed bool) {
	b.current = pressed
}

func (b *Button) roll() {
	b.previous = b.current
}
