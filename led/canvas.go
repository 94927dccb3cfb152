package led

import (
	"fmt"

	"dodgebit/hal"
)

// Size is the width and height of the virtual grid.
const Size = hal.GridSize

// Grid is the virtual LED image, indexed [y][x].
type Grid [Size][Size]bool

// Bitmap is anything that can be pasted onto a Canvas.
type Bitmap interface {
	Bounds() (w, h int)
	On(x, y int) bool
}

// Bounds implements Bitmap.
func (g *Grid) Bounds() (w, h int) { return Size, Size }

// On implements Bitmap.
func (g *Grid) On(x, y int) bool { return g[y][x] }

// Canvas is the virtual framebuffer plus the multiplex scan cursor.
type Canvas struct {
	Grid   Grid
	cursor uint8
}

// Cursor returns the row group the next PartialRender will drive.
func (c *Canvas) Cursor() int { return int(c.cursor) }

// Set overwrites the whole grid.
func (c *Canvas) Set(g Grid) {
	c.Grid = g
}

// SetCell sets one cell; out of range positions are ignored.
func (c *Canvas) SetCell(x, y int, on bool) {
	if !inBounds(x, y) {
		return
	}
	c.Grid[y][x] = on
}

// Cell reports one cell; out of range positions read as off.
func (c *Canvas) Cell(x, y int) bool {
	if !inBounds(x, y) {
		return false
	}
	return c.Grid[y][x]
}

// Paste ORs the set bits of b onto the grid with its top-left corner at
// (x, y). Clear bits and cells off the grid are left alone.
func (c *Canvas) Paste(x, y int, b Bitmap) {
	w, h := b.Bounds()
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if inBounds(x+xx, y+yy) && b.On(xx, yy) {
				c.Grid[y+yy][x+xx] = true
			}
		}
	}
}

// SetPaste copies b onto the grid at (x, y), clear bits included.
func (c *Canvas) SetPaste(x, y int, b Bitmap) {
	w, h := b.Bounds()
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if inBounds(x+xx, y+yy) {
				c.Grid[y+yy][x+xx] = b.On(xx, yy)
			}
		}
	}
}

// Clear drives every matrix line inactive. It must run before each
// PartialRender or the previous row group bleeds into the next.
func (c *Canvas) Clear(hw hal.Matrix) error {
	if err := hw.Idle(); err != nil {
		return fmt.Errorf("canvas: clear: %w", err)
	}
	return nil
}

// PartialRender lights the cells of the current row group and advances the
// cursor. A whole image takes MatrixRows consecutive calls.
func (c *Canvas) PartialRender(hw hal.Matrix) error {
	row := int(c.cursor)
	if err := hw.Row(row, true); err != nil {
		return fmt.Errorf("canvas: row %d: %w", row, err)
	}
	for y := range c.Grid {
		for x, on := range c.Grid[y] {
			p := hal.Layout(x, y)
			if !on || int(p.Row) != row {
				continue
			}
			if err := hw.Col(int(p.Col), true); err != nil {
				return fmt.Errorf("canvas: col %d: %w", p.Col, err)
			}
		}
	}
	c.cursor++
	if c.cursor == hal.MatrixRows {
		c.cursor = 0
	}
	return nil
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}
