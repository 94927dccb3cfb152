package hal

const (
	// GridSize is the width and height of the virtual LED grid.
	GridSize = 5
	// MatrixRows is the number of physical row lines.
	MatrixRows = 3
	// MatrixCols is the number of physical column lines.
	MatrixCols = 9
)

// PhysicalLED addresses one LED by its row-group and column line.
type PhysicalLED struct {
	Row uint8
	Col uint8
}

// ledLayout maps virtual cell [y][x] to the physical lines that light it
// (micro:bit v1 wiring).
var ledLayout = [GridSize][GridSize]PhysicalLED{
	{{0, 0}, {1, 3}, {0, 1}, {1, 4}, {0, 2}},
	{{2, 3}, {2, 4}, {2, 5}, {2, 6}, {2, 7}},
	{{1, 1}, {0, 8}, {1, 2}, {2, 8}, {1, 0}},
	{{0, 7}, {0, 6}, {0, 5}, {0, 4}, {0, 3}},
	{{2, 2}, {1, 6}, {2, 0}, {1, 5}, {2, 1}},
}

// Layout returns the physical lines wired to virtual cell (x, y). It panics
// when the cell is outside the grid.
func Layout(x, y int) PhysicalLED { return ledLayout[y][x] }

// DecodeRows rebuilds the virtual image from the lit column mask of each row
// group (bit n set when column n was active).
func DecodeRows(rows [MatrixRows]uint16) (grid [GridSize][GridSize]bool) {
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			p := ledLayout[y][x]
			grid[y][x] = rows[p.Row]&(1<<p.Col) != 0
		}
	}
	return grid
}
