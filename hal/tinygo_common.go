//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// machinePin adapts a TinyGo pin to GPIOPin.
type machinePin struct {
	name string
	pin  machine.Pin
}

func newMachinePin(name string, pin machine.Pin) *machinePin {
	return &machinePin{name: name, pin: pin}
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var cfg machine.PinConfig
	switch mode {
	case GPIOModeOutput:
		cfg.Mode = machine.PinOutput
	case GPIOModeInput:
		switch pull {
		case GPIOPullUp:
			cfg.Mode = machine.PinInputPullup
		case GPIOPullDown:
			cfg.Mode = machine.PinInputPulldown
		default:
			cfg.Mode = machine.PinInput
		}
	default:
		return ErrNotImplemented
	}
	p.pin.Configure(cfg)
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

type tinyGoDelay struct{}

func (tinyGoDelay) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// rngEntropy reads the on-chip random number generator.
type rngEntropy struct{}

func (rngEntropy) Uint64() uint64 {
	hi, err := machine.GetRNG()
	if err != nil {
		return uint64(time.Now().UnixNano())
	}
	lo, err := machine.GetRNG()
	if err != nil {
		return uint64(time.Now().UnixNano())
	}
	return uint64(hi)<<32 | uint64(lo)
}

type tinyGoHAL struct {
	logger  *uartLogger
	matrix  Matrix
	btnA    GPIOPin
	btnB    GPIOPin
	delay   tinyGoDelay
	entropy rngEntropy
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Matrix() Matrix   { return h.matrix }
func (h *tinyGoHAL) ButtonA() GPIOPin { return h.btnA }
func (h *tinyGoHAL) ButtonB() GPIOPin { return h.btnB }
func (h *tinyGoHAL) Delay() Delay     { return h.delay }
func (h *tinyGoHAL) Entropy() Entropy { return h.entropy }

func newUARTLogger() *uartLogger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})
	return &uartLogger{uart: uart}
}
