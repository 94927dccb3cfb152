//go:build !tinygo && !linux && !darwin

package hal

import (
	"io"
	"os"
)

func openTerm(_ *os.File) (io.ReadCloser, error) {
	return nil, ErrNotImplemented
}
