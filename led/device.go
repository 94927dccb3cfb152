package led

import (
	"context"
	"errors"
	"math/rand/v2"

	"dodgebit/hal"
)

const (
	// MaxAlarms is the capacity of the device alarm registry.
	MaxAlarms = 16
	// TickMs is the fixed delay of one tick.
	TickMs = 1
)

// ErrAlarmRegistryFull is returned by AddAlarm once MaxAlarms are registered.
var ErrAlarmRegistryFull = errors.New("alarm registry full")

// AlarmID is a handle to an alarm registered with a Device.
type AlarmID uint8

// Phase tells what one Step did.
type Phase uint8

const (
	// PhaseTick is a scan step inside a frame.
	PhaseTick Phase = iota
	// PhaseFrame is a scan step that also started and finished a frame.
	PhaseFrame
)

func (p Phase) String() string {
	switch p {
	case PhaseTick:
		return "tick"
	case PhaseFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// FrameFunc runs the application logic of one frame. The canvas has been
// cleared and the buttons sampled when it is called.
type FrameFunc func(d *Device) error

// Device runs the tick/frame schedule over the board.
//
// A tick is one scan step, one fixed delay and one advance of every alarm.
// A frame is MatrixRows ticks, starting when the scan cursor wraps to 0.
type Device struct {
	matrix hal.Matrix
	rawA   hal.GPIOPin
	rawB   hal.GPIOPin
	delay  hal.Delay

	canvas  Canvas
	buttonA Button
	buttonB Button
	rand    *rand.Rand
	text    *Text

	alarms  [MaxAlarms]Alarm
	nalarms int

	ticks uint
}

// NewDevice takes the board capabilities from h. The random source is seeded
// once from h.Entropy.
func NewDevice(h hal.HAL) *Device {
	seed := h.Entropy().Uint64()
	return &Device{
		matrix: h.Matrix(),
		rawA:   h.ButtonA(),
		rawB:   h.ButtonB(),
		delay:  h.Delay(),
		rand:   rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// Canvas returns the image drawn on every tick.
func (d *Device) Canvas() *Canvas { return &d.canvas }

// ButtonA returns button A as sampled at the start of the current frame.
func (d *Device) ButtonA() *Button { return &d.buttonA }

// ButtonB returns button B as sampled at the start of the current frame.
func (d *Device) ButtonB() *Button { return &d.buttonB }

// Rand returns the random source seeded from the HAL entropy at startup.
func (d *Device) Rand() *rand.Rand { return d.rand }

// Ticks returns the wrapping tick counter.
func (d *Device) Ticks() uint { return d.ticks }

// SetText installs the overlay drawn at the end of every frame; nil removes
// it. The caller keeps ownership of t.
func (d *Device) SetText(t *Text) { d.text = t }

// Text returns the current overlay, or nil.
func (d *Device) Text() *Text { return d.text }

// AddAlarm copies a into the registry and returns its handle. Registered
// alarms are ticked once per tick for the life of the device.
func (d *Device) AddAlarm(a Alarm) (AlarmID, error) {
	if d.nalarms >= MaxAlarms {
		return 0, ErrAlarmRegistryFull
	}
	id := AlarmID(d.nalarms)
	d.alarms[id] = a
	d.nalarms++
	return id, nil
}

// Alarm returns the registered alarm for id, or nil for an unknown handle.
func (d *Device) Alarm(id AlarmID) *Alarm {
	if int(id) >= d.nalarms {
		return nil
	}
	return &d.alarms[id]
}

// Step runs one loop iteration: when a frame begins it samples input, calls
// frame and draws the overlay, then it always performs one tick.
func (d *Device) Step(frame FrameFunc) (Phase, error) {
	phase := PhaseTick
	if d.newFrame() {
		phase = PhaseFrame
		if frame != nil {
			if err := frame(d); err != nil {
				return phase, err
			}
		}
		d.endFrame()
	}
	if err := d.endTick(); err != nil {
		return phase, err
	}
	return phase, nil
}

// Run calls Step until ctx is done or a step fails.
func (d *Device) Run(ctx context.Context, frame FrameFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := d.Step(frame); err != nil {
			return err
		}
	}
}

func (d *Device) newFrame() bool {
	if d.canvas.cursor != 0 {
		return false
	}
	d.canvas.Set(Grid{})
	d.buttonA.sample(readPressed(d.rawA))
	d.buttonB.sample(readPressed(d.rawB))
	return true
}

func (d *Device) endFrame() {
	if d.text != nil {
		d.text.Draw(&d.canvas)
	}
	d.buttonA.roll()
	d.buttonB.roll()
}

func (d *Device) endTick() error {
	if err := d.canvas.Clear(d.matrix); err != nil {
		return err
	}
	if err := d.canvas.PartialRender(d.matrix); err != nil {
		return err
	}

	d.delay.DelayMs(TickMs)
	d.ticks++

	if d.text != nil {
		d.text.tick()
	}
	for i := 0; i < d.nalarms; i++ {
		d.alarms[i].Tick()
	}
	return nil
}

// readPressed samples an active-low button. A failed read counts as released.
func readPressed(p hal.GPIOPin) bool {
	if p == nil {
		return false
	}
	level, err := p.Read()
	if err != nil {
		return false
	}
	return !level
}
