//go:build tinygo && baremetal && microbit

package hal

import "machine"

// New returns the micro:bit v1 HAL: a 3x9 LED matrix, buttons A and B with
// external pull-ups, UART0 at 115200 8N1.
//
// Pin setup failures panic; nothing can run without the matrix.
func New() HAL {
	rows := [MatrixRows]GPIOPin{
		newMachinePin("ROW1", machine.LED_ROW_1),
		newMachinePin("ROW2", machine.LED_ROW_2),
		newMachinePin("ROW3", machine.LED_ROW_3),
	}
	cols := [MatrixCols]GPIOPin{
		newMachinePin("COL1", machine.LED_COL_1),
		newMachinePin("COL2", machine.LED_COL_2),
		newMachinePin("COL3", machine.LED_COL_3),
		newMachinePin("COL4", machine.LED_COL_4),
		newMachinePin("COL5", machine.LED_COL_5),
		newMachinePin("COL6", machine.LED_COL_6),
		newMachinePin("COL7", machine.LED_COL_7),
		newMachinePin("COL8", machine.LED_COL_8),
		newMachinePin("COL9", machine.LED_COL_9),
	}
	m, err := NewPinMatrix(rows, cols)
	if err != nil {
		panic(err)
	}

	btnA := newMachinePin("BTNA", machine.BUTTONA)
	btnB := newMachinePin("BTNB", machine.BUTTONB)
	_ = btnA.Configure(GPIOModeInput, GPIOPullNone)
	_ = btnB.Configure(GPIOModeInput, GPIOPullNone)

	return &tinyGoHAL{
		logger: newUARTLogger(),
		matrix: m,
		btnA:   btnA,
		btnB:   btnB,
	}
}
