//go:build tinygo && baremetal && !microbit

package hal

import "fmt"

// New returns a HAL for boards without the micro:bit matrix. The matrix and
// buttons are virtual so the firmware still runs; only UART logging reaches
// the outside world.
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

	l := newUARTLogger()
	l.WriteLineString("hal: no LED matrix on this board, using virtual pins")
	return &tinyGoHAL{
		logger: l,
		matrix: m,
		btnA:   btnA,
		btnB:   btnB,
	}
}
