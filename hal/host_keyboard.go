//go:build !tinygo && cgo

package hal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type hostKeyboard struct {
	a []ebiten.Key
	b []ebiten.Key
}

func newHostKeyboard(cfg KeyConfig) (*hostKeyboard, error) {
	a, err := parseKeys(cfg.ButtonA)
	if err != nil {
		return nil, fmt.Errorf("keys.button_a: %w", err)
	}
	b, err := parseKeys(cfg.ButtonB)
	if err != nil {
		return nil, fmt.Errorf("keys.button_b: %w", err)
	}
	return &hostKeyboard{a: a, b: b}, nil
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// poll mirrors the held keys onto the button pins.
func (k *hostKeyboard) poll(h *hostHAL) {
	h.press(anyPressed(k.a), anyPressed(k.b))
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
