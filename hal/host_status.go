//go:build !tinygo

package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var _ drivers.Displayer = (*statusDisplay)(nil)

// statusDisplay is an RGBA surface tinyfont can draw on.
type statusDisplay struct {
	img *image.RGBA
}

func newStatusDisplay(w, h int) *statusDisplay {
	return &statusDisplay{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (d *statusDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *statusDisplay) SetPixel(x, y int16, c color.RGBA) {
	if !(image.Point{X: int(x), Y: int(y)}).In(d.img.Bounds()) {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *statusDisplay) Display() error { return nil }

func (d *statusDisplay) clear(c color.RGBA) {
	pix := d.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

func (d *statusDisplay) writeLine(s string, c color.RGBA) {
	_, h := d.Size()
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 2, h-3, s, c)
}
