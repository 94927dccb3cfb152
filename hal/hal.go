package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// Matrix drives the physical LED lines.
//
// Rows are active-high and columns active-low; implementations hide the
// electrical level so callers only deal with "active".
type Matrix interface {
	Row(i int, active bool) error
	Col(i int, active bool) error
	// Idle drives every row and column line inactive.
	Idle() error
}

// Delay blocks for a number of milliseconds.
type Delay interface {
	DelayMs(ms uint32)
}

// Entropy provides a random seed. It is read once at startup.
type Entropy interface {
	Uint64() uint64
}

// HAL is the only contact point between the firmware and the board.
//
// Button pins read low while the button is held.
type HAL interface {
	Logger() Logger
	Matrix() Matrix
	ButtonA() GPIOPin
	ButtonB() GPIOPin
	Delay() Delay
	Entropy() Entropy
}
