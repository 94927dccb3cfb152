//go:build !tinygo && cgo

package hal

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"sync/atomic"

	"dodgebit/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const statusHeight = 14

var (
	colorBoard  = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	colorLEDOn  = color.RGBA{R: 0xFF, G: 0x30, B: 0x20, A: 0xFF}
	colorLEDOff = color.RGBA{R: 0x30, G: 0x18, B: 0x18, A: 0xFF}
	colorStatus = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

// RunWindow runs the firmware loop on its own goroutine and shows the LED
// matrix in a desktop window. It blocks until the window closes or the loop
// fails.
func RunWindow(cfg HostConfig, newApp func(HAL) func() error) error {
	h, err := newHost(cfg, os.Stdout)
	if err != nil {
		return err
	}
	kbd, err := newHostKeyboard(cfg.Keys)
	if err != nil {
		return err
	}
	step := newApp(h)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = DefaultHostConfig().Window.Scale
	}
	g := &hostGame{
		h:      h,
		kbd:    kbd,
		scale:  scale,
		errc:   make(chan error, 1),
		status: newStatusDisplay(GridSize*scale, statusHeight),
	}
	go g.loop(ctx, step)

	if cfg.Stream.Addr != "" {
		s := newStreamServer(&h.matrix.latch, cfg.Stream.Hz, h.logger)
		go func() {
			if err := s.serve(ctx, cfg.Stream.Addr); err != nil {
				h.logger.WriteLineString("stream: " + err.Error())
			}
		}()
	}

	ebiten.SetWindowTitle(cfg.Window.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(GridSize*scale, GridSize*scale+statusHeight)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	kbd   *hostKeyboard
	scale int
	ticks atomic.Uint64
	errc  chan error

	status   *statusDisplay
	statusIm *ebiten.Image
}

func (g *hostGame) loop(ctx context.Context, step func() error) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if step != nil {
			if err := step(); err != nil {
				g.errc <- err
				return
			}
		}
		g.ticks.Add(1)
	}
}

func (g *hostGame) Update() error {
	g.kbd.poll(g.h)
	select {
	case err := <-g.errc:
		return err
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBoard)

	seq, grid := g.h.matrix.latch.Snapshot()
	s := float32(g.scale)
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			c := colorLEDOff
			if grid[y][x] {
				c = colorLEDOn
			}
			vector.DrawFilledCircle(screen, s*float32(x)+s/2, s*float32(y)+s/2, s*0.35, c, true)
		}
	}

	if g.statusIm == nil {
		g.statusIm = ebiten.NewImage(g.status.img.Bounds().Dx(), g.status.img.Bounds().Dy())
	}
	g.status.clear(colorBoard)
	g.status.writeLine(fmt.Sprintf("%s  tick %d  frame %d", buildinfo.Short(), g.ticks.Load(), seq/MatrixRows), colorStatus)
	g.statusIm.WritePixels(g.status.img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(GridSize*g.scale))
	screen.DrawImage(g.statusIm, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return GridSize * g.scale, GridSize*g.scale + statusHeight
}
