//go:build !tinygo

package hal

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger  *hostLogger
	matrix  *hostMatrix
	btnA    GPIOPin
	btnB    GPIOPin
	keyA    *virtualPin
	keyB    *virtualPin
	delay   hostDelay
	entropy hostEntropy
}

// New returns a host HAL implementation with default settings.
func New() HAL {
	h, err := newHost(DefaultHostConfig(), os.Stdout)
	if err != nil {
		panic(err)
	}
	return h
}

func newHost(cfg HostConfig, out io.Writer) (*hostHAL, error) {
	logger := &hostLogger{w: out}

	var rows [MatrixRows]GPIOPin
	var cols [MatrixCols]GPIOPin
	for i := range rows {
		rows[i] = newVirtualPin(fmt.Sprintf("ROW%d", i+1), GPIOCapOutput)
	}
	for i := range cols {
		cols[i] = newVirtualPin(fmt.Sprintf("COL%d", i+1), GPIOCapOutput)
	}
	pm, err := NewPinMatrix(rows, cols)
	if err != nil {
		return nil, err
	}

	h := &hostHAL{
		logger:  logger,
		matrix:  &hostMatrix{pins: pm},
		delay:   hostDelay{fast: cfg.Headless.Fast},
		entropy: hostEntropy{seed: cfg.Seed},
	}

	if cfg.Headless.Autoplay {
		// Buttons read low while held: mostly high with a short low pulse.
		h.btnA = newSignalPin("BTNA", 1300*time.Millisecond, 1200*time.Millisecond)
		h.btnB = newSignalPin("BTNB", 1700*time.Millisecond, 1600*time.Millisecond)
	} else {
		h.keyA = newVirtualPin("BTNA", GPIOCapInput|GPIOCapPullUp)
		h.keyB = newVirtualPin("BTNB", GPIOCapInput|GPIOCapPullUp)
		h.btnA, h.btnB = h.keyA, h.keyB
	}
	for _, p := range []GPIOPin{h.btnA, h.btnB} {
		pull := GPIOPullUp
		if p.Caps()&GPIOCapPullUp == 0 {
			pull = GPIOPullNone
		}
		if err := p.Configure(GPIOModeInput, pull); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Matrix() Matrix   { return h.matrix }
func (h *hostHAL) ButtonA() GPIOPin { return h.btnA }
func (h *hostHAL) ButtonB() GPIOPin { return h.btnB }
func (h *hostHAL) Delay() Delay     { return h.delay }
func (h *hostHAL) Entropy() Entropy { return h.entropy }

// press drives a keyboard-backed button; no-op in autoplay mode.
func (h *hostHAL) press(a, b bool) {
	if h.keyA != nil {
		h.keyA.drive(!a)
	}
	if h.keyB != nil {
		h.keyB.drive(!b)
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostDelay struct {
	fast bool
}

func (d hostDelay) DelayMs(ms uint32) {
	if d.fast {
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

type hostEntropy struct {
	seed uint64
}

func (e hostEntropy) Uint64() uint64 {
	if e.seed != 0 {
		return e.seed
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// hostMatrix latches what each row group showed before the lines go idle,
// so viewers polling at display rate see the whole scanned image.
type hostMatrix struct {
	pins  *PinMatrix
	latch frameLatch
}

func (m *hostMatrix) Row(i int, active bool) error { return m.pins.Row(i, active) }
func (m *hostMatrix) Col(i int, active bool) error { return m.pins.Col(i, active) }

func (m *hostMatrix) Idle() error {
	active, masks, err := m.pins.lit()
	if err != nil {
		return err
	}
	m.latch.store(active, masks)
	return m.pins.Idle()
}

// frameLatch holds the last lit column mask of every row group.
type frameLatch struct {
	mu   sync.Mutex
	seq  uint64
	rows [MatrixRows]uint16
}

func (l *frameLatch) store(active uint8, masks [MatrixRows]uint16) {
	if active == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.rows {
		if active&(1<<i) != 0 {
			l.rows[i] = masks[i]
		}
	}
	l.seq++
}

// Snapshot returns the number of latched scan steps and the decoded grid.
func (l *frameLatch) Snapshot() (seq uint64, grid [GridSize][GridSize]bool) {
	l.mu.Lock()
	rows := l.rows
	seq = l.seq
	l.mu.Unlock()
	return seq, DecodeRows(rows)
}
