package hal

import "testing"

func TestLEDLayoutIsInjective(t *testing.T) {
	seen := map[PhysicalLED][2]int{}
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			p := Layout(x, y)
			if int(p.Row) >= MatrixRows || int(p.Col) >= MatrixCols {
				t.Fatalf("cell (%d,%d) -> %+v out of range", x, y, p)
			}
			if prev, ok := seen[p]; ok {
				t.Fatalf("cell (%d,%d) and (%d,%d) share %+v", x, y, prev[0], prev[1], p)
			}
			seen[p] = [2]int{x, y}
		}
	}
	if len(seen) != GridSize*GridSize {
		t.Fatalf("layout covers %d LEDs, want %d", len(seen), GridSize*GridSize)
	}
}

func TestDecodeRows(t *testing.T) {
	var rows [MatrixRows]uint16
	rows[0] = 1 << 0 // (0,0)
	rows[2] = 1 << 8 // (3,2)
	rows[1] = 1 << 5 // (3,4)

	grid := DecodeRows(rows)
	want := map[[2]int]bool{{0, 0}: true, {3, 2}: true, {3, 4}: true}
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if grid[y][x] != want[[2]int{x, y}] {
				t.Fatalf("grid[%d][%d] = %v", y, x, grid[y][x])
			}
		}
	}
}

func TestLayoutMicrobitWiring(t *testing.T) {
	cases := []struct {
		x, y int
		want PhysicalLED
	}{
		{0, 0, PhysicalLED{Row: 0, Col: 0}},
		{4, 0, PhysicalLED{Row: 0, Col: 2}},
		{2, 2, PhysicalLED{Row: 1, Col: 2}},
		{0, 4, PhysicalLED{Row: 2, Col: 2}},
		{4, 4, PhysicalLED{Row: 2, Col: 1}},
	}
	for _, c := range cases {
		if got := Layout(c.x, c.y); got != c.want {
			t.Fatalf("Layout(%d, %d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}

	// Layout hands out values; changing one leaves the wiring intact.
	p := Layout(1, 1)
	p.Row, p.Col = 0, 0
	if got := Layout(1, 1); got != (PhysicalLED{Row: 2, Col: 4}) {
		t.Fatalf("Layout(1, 1) = %+v after modifying a copy", got)
	}
}
