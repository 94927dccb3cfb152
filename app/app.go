package app

import (
	"fmt"

	"dodgebit/hal"
	"dodgebit/internal/buildinfo"
	"dodgebit/led"
	"dodgebit/tasks/dodge"
)

type system struct {
	log    hal.Logger
	device *led.Device
	game   *dodge.Task
}

// New wires the device and the game onto h and returns the step function
// that advances them by one tick.
func New(h hal.HAL) func() error {
	s, err := newSystem(h)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

// Run starts the firmware loop and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			fatal(h, err)
		}
	}
}

func newSystem(h hal.HAL) (*system, error) {
	if h == nil {
		return nil, fmt.Errorf("app: nil hal")
	}
	d := led.NewDevice(h)
	game, err := dodge.New(d, h.Logger())
	if err != nil {
		return nil, err
	}
	s := &system{log: h.Logger(), device: d, game: game}
	if s.log != nil {
		s.log.WriteLineString("dodgebit " + buildinfo.Short())
	}
	return s, nil
}

func (s *system) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("app: panic at tick %d: %v", s.device.Ticks(), r)
		}
	}()
	_, err = s.device.Step(s.game.Frame)
	return err
}
