package dodge

import "dodgebit/hal"

type nopMatrix struct{ err error }

func (m *nopMatrix) Row(int, bool) error { return m.err }
func (m *nopMatrix) Col(int, bool) error { return m.err }
func (m *nopMatrix) Idle() error         { return m.err }

type fakePin struct{ level bool }

func (p *fakePin) Name() string                               { return "fake" }
func (p *fakePin) Caps() hal.GPIOCaps                         { return hal.GPIOCapInput }
func (p *fakePin) Configure(hal.GPIOMode, hal.GPIOPull) error { return nil }
func (p *fakePin) Read() (bool, error)                        { return p.level, nil }
func (p *fakePin) Write(bool) error                           { return hal.ErrNotImplemented }

type nopDelay struct{}

func (nopDelay) DelayMs(uint32) {}

type fixedEntropy uint64

func (e fixedEntropy) Uint64() uint64 { return uint64(e) }

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type fakeHAL struct {
	log    lineLog
	matrix nopMatrix
	a, b   fakePin
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{a: fakePin{level: true}, b: fakePin{level: true}}
}

func (h *fakeHAL) Logger() hal.Logger   { return &h.log }
func (h *fakeHAL) Matrix() hal.Matrix   { return &h.matrix }
func (h *fakeHAL) ButtonA() hal.GPIOPin { return &h.a }
func (h *fakeHAL) ButtonB() hal.GPIOPin { return &h.b }
func (h *fakeHAL) Delay() hal.Delay     { return nopDelay{} }
func (h *fakeHAL) Entropy() hal.Entropy { return fixedEntropy(7) }
