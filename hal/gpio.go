package hal

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

type virtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	level bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
		if mode == GPIOModeInput {
			p.level = true
		}
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
		if mode == GPIOModeInput {
			p.level = false
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeInput && p.mode != GPIOModeOutput {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// drive forces the level seen by Read, the way an external circuit would.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
}

// signalPin is an input that follows a fixed square wave.
type signalPin struct {
	mu   sync.Mutex
	name string

	mode GPIOMode
	pull GPIOPull

	t0     time.Time
	now    func() time.Time
	period time.Duration
	high   time.Duration
}

func newSignalPin(name string, period, high time.Duration) GPIOPin {
	return newSignalPinWithClock(name, period, high, time.Now)
}

func newSignalPinWithClock(name string, period, high time.Duration, now func() time.Time) GPIOPin {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = 1 * time.Second
	}
	if high < 0 {
		high = 0
	}
	if high > period {
		high = period
	}
	return &signalPin{
		name:   name,
		mode:   GPIOModeInput,
		pull:   GPIOPullNone,
		t0:     now(),
		now:    now,
		period: period,
		high:   high,
	}
}

func (p *signalPin) Name() string   { return p.name }
func (p *signalPin) Caps() GPIOCaps { return GPIOCapInput }

func (p *signalPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	if pull != GPIOPullNone {
		return fmt.Errorf("gpio: pin %s: pull unsupported", p.name)
	}
	p.mode = mode
	p.pull = pull
	return nil
}

func (p *signalPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mode != GPIOModeInput {
		return false, fmt.Errorf("gpio: pin %s: not configured for input", p.name)
	}
	if p.now == nil {
		return false, fmt.Errorf("gpio: pin %s: no clock", p.name)
	}
	if p.period <= 0 {
		return false, fmt.Errorf("gpio: pin %s: invalid period", p.name)
	}

	elapsed := p.now().Sub(p.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	phase := elapsed % p.period
	return phase < p.high, nil
}

func (p *signalPin) Write(bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

// PinMatrix drives a row/column LED matrix through individual GPIO pins.
type PinMatrix struct {
	rows [MatrixRows]GPIOPin
	cols [MatrixCols]GPIOPin
}

// NewPinMatrix configures every pin as an output and leaves the matrix idle.
func NewPinMatrix(rows [MatrixRows]GPIOPin, cols [MatrixCols]GPIOPin) (*PinMatrix, error) {
	m := &PinMatrix{rows: rows, cols: cols}
	for i, p := range m.rows {
		if p == nil {
			return nil, fmt.Errorf("matrix: row %d: missing pin", i)
		}
		if err := p.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, fmt.Errorf("matrix: row %d: %w", i, err)
		}
	}
	for i, p := range m.cols {
		if p == nil {
			return nil, fmt.Errorf("matrix: col %d: missing pin", i)
		}
		if err := p.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, fmt.Errorf("matrix: col %d: %w", i, err)
		}
	}
	if err := m.Idle(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *PinMatrix) Row(i int, active bool) error {
	if i < 0 || i >= MatrixRows {
		return fmt.Errorf("matrix: row %d out of range", i)
	}
	return m.rows[i].Write(active)
}

func (m *PinMatrix) Col(i int, active bool) error {
	if i < 0 || i >= MatrixCols {
		return fmt.Errorf("matrix: col %d out of range", i)
	}
	return m.cols[i].Write(!active)
}

func (m *PinMatrix) Idle() error {
	for i := range m.rows {
		if err := m.rows[i].Write(false); err != nil {
			return err
		}
	}
	for i := range m.cols {
		if err := m.cols[i].Write(true); err != nil {
			return err
		}
	}
	return nil
}

// lit reports which row groups are active and the column mask lit on each.
func (m *PinMatrix) lit() (active uint8, rows [MatrixRows]uint16, err error) {
	var colMask uint16
	for i, p := range m.cols {
		level, err := p.Read()
		if err != nil {
			return 0, rows, err
		}
		if !level {
			colMask |= 1 << i
		}
	}
	for i, p := range m.rows {
		level, err := p.Read()
		if err != nil {
			return 0, rows, err
		}
		if level {
			active |= 1 << i
			rows[i] = colMask
		}
	}
	return active, rows, nil
}
