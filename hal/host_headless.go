//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// tapHold is how long a terminal key press holds a button down. Terminals
// only report key presses, never releases.
const tapHold = 150 * time.Millisecond

// RunHeadless runs the firmware loop without opening a window. The matrix is
// drawn to stdout with ANSI escapes and keys a/b/q are read from a cbreak
// terminal unless autoplay is enabled.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp func(HAL) func() error) error {
	h, err := newHost(cfg, os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	step := newApp(h)

	if cfg.Stream.Addr != "" {
		s := newStreamServer(&h.matrix.latch, cfg.Stream.Hz, h.logger)
		go func() {
			if err := s.serve(ctx, cfg.Stream.Addr); err != nil {
				h.logger.WriteLineString("stream: " + err.Error())
			}
		}()
	}

	if !cfg.Headless.Autoplay {
		term, err := openTerm(os.Stdin)
		if err != nil {
			h.logger.WriteLineString("term: keyboard unavailable: " + err.Error())
		} else {
			defer term.Close()
			go readKeys(term, h, cancel)
		}
	}

	var redraw time.Duration
	if cfg.Headless.Hz > 0 {
		redraw = time.Second / time.Duration(cfg.Headless.Hz)
	}

	var (
		tick uint64
		last time.Time
		buf  bytes.Buffer
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}
		tick++

		if redraw > 0 {
			if now := time.Now(); now.Sub(last) >= redraw {
				last = now
				_, grid := h.matrix.latch.Snapshot()
				buf.Reset()
				renderANSI(&buf, grid, tick)
				os.Stdout.Write(buf.Bytes())
			}
		}

		if cfg.Headless.Ticks > 0 && tick >= cfg.Headless.Ticks {
			return nil
		}
	}
}

func renderANSI(w io.Writer, grid [GridSize][GridSize]bool, tick uint64) {
	io.WriteString(w, "\x1b[H")
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			if grid[y][x] {
				io.WriteString(w, "\x1b[31m#\x1b[0m ")
			} else {
				io.WriteString(w, ". ")
			}
		}
		io.WriteString(w, "\x1b[K\r\n")
	}
	fmt.Fprintf(w, "tick %d  [a] left  [b] right  [q] quit\x1b[K\r\n", tick)
}

// readKeys taps buttons for every a/b read from r and calls quit on q or ^C.
func readKeys(r io.Reader, h *hostHAL, quit func()) {
	a := &tapper{pin: h.keyA}
	b := &tapper{pin: h.keyB}

	var buf [16]byte
	for {
		n, err := r.Read(buf[:])
		for _, c := range buf[:n] {
			switch c {
			case 'a', 'A':
				a.tap()
			case 'b', 'B':
				b.tap()
			case 'q', 'Q', 0x03:
				quit()
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// tapper holds a button pin low for tapHold after the last tap.
type tapper struct {
	mu    sync.Mutex
	pin   *virtualPin
	timer *time.Timer
}

func (t *tapper) tap() {
	if t.pin == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pin.drive(false)
	if t.timer != nil {
		t.timer.Reset(tapHold)
		return
	}
	t.timer = time.AfterFunc(tapHold, func() { t.pin.drive(true) })
}
