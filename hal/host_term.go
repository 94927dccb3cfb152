//go:build !tinygo && (linux || darwin)

package hal

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// cbreakTerm puts a terminal into cbreak mode so single key presses are
// readable, and restores canonical mode on Close.
type cbreakTerm struct {
	in         *os.File
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

func openTerm(in *os.File) (*cbreakTerm, error) {
	if in == nil {
		return nil, fmt.Errorf("term: no input file")
	}
	t := &cbreakTerm{in: in}
	if err := termios.Tcgetattr(in.Fd(), &t.canAttr); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	t.cbreakAttr = t.canAttr
	termios.Cfmakecbreak(&t.cbreakAttr)
	if err := termios.Tcsetattr(in.Fd(), termios.TCIFLUSH, &t.cbreakAttr); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return t, nil
}

func (t *cbreakTerm) Read(p []byte) (int, error) { return t.in.Read(p) }

func (t *cbreakTerm) Close() error {
	return termios.Tcsetattr(t.in.Fd(), termios.TCIFLUSH, &t.canAttr)
}
