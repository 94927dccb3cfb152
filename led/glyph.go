package led

import (
	"errors"
	"fmt"
)

const (
	// GlyphWidth is the width of a digit glyph in cells.
	GlyphWidth = 3
	// GlyphHeight is the height of a digit glyph in cells.
	GlyphHeight = 5
)

// ErrUnsupportedGlyph is returned for characters outside '0'..'9'.
var ErrUnsupportedGlyph = errors.New("unsupported glyph")

// GlyphError reports the offending character of a rejected string.
type GlyphError struct {
	Char  byte
	Index int
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: %q at %d: %v", e.Char, e.Index, ErrUnsupportedGlyph)
}

func (e *GlyphError) Unwrap() error { return ErrUnsupportedGlyph }

// Glyph is a 3x5 digit bitmap, indexed [y][x].
type Glyph [GlyphHeight][GlyphWidth]uint8

// Bounds implements Bitmap.
func (g *Glyph) Bounds() (w, h int) { return GlyphWidth, GlyphHeight }

// On implements Bitmap.
func (g *Glyph) On(x, y int) bool { return g[y][x] != 0 }

var digits = [10]Glyph{
	{ // 0
		{0, 1, 0},
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
		{0, 1, 0},
	},
	{ // 1
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
	{ // 2
		{1, 1, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{1, 1, 1},
	},
	{ // 3
		{1, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
	},
	{ // 4
		{1, 0, 0},
		{1, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
		{0, 1, 0},
	},
	{ // 5
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 0},
		{0, 0, 1},
		{1, 1, 0},
	},
	{ // 6
		{0, 1, 1},
		{1, 0, 0},
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	},
	{ // 7
		{1, 1, 1},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{1, 0, 0},
	},
	{ // 8
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	},
	{ // 9
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 1},
		{0, 0, 1},
		{0, 1, 0},
	},
}

// GlyphFor returns the bitmap of a decimal digit.
func GlyphFor(c byte) (*Glyph, bool) {
	if c < '0' || c > '9' {
		return nil, false
	}
	return &digits[c-'0'], true
}
