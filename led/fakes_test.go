package led

import (
	"errors"

	"dodgebit/hal"
)

var errBoom = errors.New("boom")

// recMatrix records the lines driven on every scan step. Idle closes a step
// and latches what was lit.
type recMatrix struct {
	row [hal.MatrixRows]bool
	col [hal.MatrixCols]bool

	idles  int
	steps  []int // active row of every closed step
	latch  [hal.MatrixRows]uint16
	failAt string
}

func (m *recMatrix) Row(i int, active bool) error {
	if m.failAt == "row" {
		return errBoom
	}
	m.row[i] = active
	return nil
}

func (m *recMatrix) Col(i int, active bool) error {
	if m.failAt == "col" {
		return errBoom
	}
	m.col[i] = active
	return nil
}

func (m *recMatrix) Idle() error {
	if m.failAt == "idle" {
		return errBoom
	}
	m.idles++
	var mask uint16
	for i, on := range m.col {
		if on {
			mask |= 1 << i
		}
	}
	for i, on := range m.row {
		if on {
			m.steps = append(m.steps, i)
			m.latch[i] = mask
		}
	}
	m.row = [hal.MatrixRows]bool{}
	m.col = [hal.MatrixCols]bool{}
	return nil
}

// fakePin is an input pin with a settable level.
type fakePin struct {
	level bool
	err   error
}

func (p *fakePin) Name() string                               { return "fake" }
func (p *fakePin) Caps() hal.GPIOCaps                         { return hal.GPIOCapInput }
func (p *fakePin) Configure(hal.GPIOMode, hal.GPIOPull) error { return nil }
func (p *fakePin) Read() (bool, error)                        { return p.level, p.err }
func (p *fakePin) Write(bool) error                           { return hal.ErrNotImplemented }

type fakeDelay struct {
	calls int
	total uint32
}

func (d *fakeDelay) DelayMs(ms uint32) {
	d.calls++
	d.total += ms
}

type fakeEntropy uint64

func (e fakeEntropy) Uint64() uint64 { return uint64(e) }

type fakeLogger struct {
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	log    fakeLogger
	matrix recMatrix
	a      fakePin
	b      fakePin
	delay  fakeDelay
	seed   fakeEntropy
}

// newFakeHAL returns a board with both buttons released (pins high).
func newFakeHAL() *fakeHAL {
	h := &fakeHAL{seed: 42}
	h.a.level = true
	h.b.level = true
	return h
}

func (h *fakeHAL) Logger() hal.Logger   { return &h.log }
func (h *fakeHAL) Matrix() hal.Matrix   { return &h.matrix }
func (h *fakeHAL) ButtonA() hal.GPIOPin { return &h.a }
func (h *fakeHAL) ButtonB() hal.GPIOPin { return &h.b }
func (h *fakeHAL) Delay() hal.Delay     { return &h.delay }
func (h *fakeHAL) Entropy() hal.Entropy { return h.seed }

// bits is a test bitmap of any size, indexed [y][x].
type bits [][]bool

func (b bits) Bounds() (w, h int) {
	if len(b) == 0 {
		return 0, 0
	}
	return len(b[0]), len(b)
}

func (b bits) On(x, y int) bool { return b[y][x] }

func block(w, h int, on bool) bits {
	b := make(bits, h)
	for y := range b {
		b[y] = make([]bool, w)
		for x := range b[y] {
			b[y][x] = on
		}
	}
	return b
}
