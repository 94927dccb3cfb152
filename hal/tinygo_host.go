//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"time"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	matrix Matrix
	btnA   GPIOPin
	btnB   GPIOPin
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New() HAL {
	var rows [MatrixRows]GPIOPin
	var cols [MatrixCols]GPIOPin
	for i := range rows {
		rows[i] = newVirtualPin(fmt.Sprintf("ROW%d", i+1), GPIOCapOutput)
	}
	for i := range cols {
		cols[i] = newVirtualPin(fmt.Sprintf("COL%d", i+1), GPIOCapOutput)
	}
	m, err := NewPinMatrix(rows, cols)
	if err != nil {
		panic(err)
	}
	btnA := newVirtualPin("BTNA", GPIOCapInput|GPIOCapPullUp)
	btnB := newVirtualPin("BTNB", GPIOCapInput|GPIOCapPullUp)
	_ = btnA.Configure(GPIOModeInput, GPIOPullUp)
	_ = btnB.Configure(GPIOModeInput, GPIOPullUp)
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		matrix: m,
		btnA:   btnA,
		btnB:   btnB,
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Matrix() Matrix   { return h.matrix }
func (h *tinyGoHostHAL) ButtonA() GPIOPin { return h.btnA }
func (h *tinyGoHostHAL) ButtonB() GPIOPin { return h.btnB }
func (h *tinyGoHostHAL) Delay() Delay     { return tinyGoHostDelay{} }
func (h *tinyGoHostHAL) Entropy() Entropy { return tinyGoHostEntropy{} }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostDelay struct{}

func (tinyGoHostDelay) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

type tinyGoHostEntropy struct{}

func (tinyGoHostEntropy) Uint64() uint64 { return uint64(time.Now().UnixNano()) }
