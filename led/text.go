package led

import "strconv"

const (
	// TextCapacity is the most characters a Text holds.
	TextCapacity = 16
	// ScrollPeriod is the number of ticks between scroll steps.
	ScrollPeriod = 100

	glyphPitch = GlyphWidth + 1
	scrollGap  = 3
)

// Text is a scrolling line of digits drawn over the canvas.
type Text struct {
	alarm  Alarm
	scroll uint
	buf    [TextCapacity]byte
	n      int
}

// NewText returns a Text showing s. See Set for the accepted content.
func NewText(s string) (*Text, error) {
	t := &Text{}
	if err := t.Set(s); err != nil {
		return nil, err
	}
	return t, nil
}

// Set replaces the content. A string longer than TextCapacity is stored as
// the empty string. Any character other than a decimal digit is rejected
// with a *GlyphError and the content is left unchanged.
func (t *Text) Set(s string) error {
	if len(s) > TextCapacity {
		t.n = 0
		t.clampScroll()
		return nil
	}
	for i := 0; i < len(s); i++ {
		if _, ok := GlyphFor(s[i]); !ok {
			return &GlyphError{Char: s[i], Index: i}
		}
	}
	t.n = copy(t.buf[:], s)
	t.clampScroll()
	return nil
}

// SetUint shows n in decimal.
func (t *Text) SetUint(n uint64) {
	var tmp [20]byte
	b := strconv.AppendUint(tmp[:0], n, 10)
	if len(b) > TextCapacity {
		t.n = 0
	} else {
		t.n = copy(t.buf[:], b)
	}
	t.clampScroll()
}

func (t *Text) String() string { return string(t.buf[:t.n]) }

// Len returns the number of characters.
func (t *Text) Len() int { return t.n }

// Scroll returns the current horizontal scroll offset.
func (t *Text) Scroll() int { return int(t.scroll) }

// period is the scroll offset at which the text starts over.
func (t *Text) period() uint {
	return uint(glyphPitch*t.n + scrollGap)
}

func (t *Text) clampScroll() {
	if t.scroll >= t.period() {
		t.scroll = 0
	}
}

func (t *Text) tick() {
	t.alarm.Tick()
}

// Draw advances the scroll when its alarm fires and pastes the glyphs onto c.
func (t *Text) Draw(c *Canvas) {
	if t.alarm.WaitFor(ScrollPeriod) {
		t.scroll++
		if t.scroll >= t.period() {
			t.scroll = 0
		}
	}
	t.render(c)
}

func (t *Text) render(c *Canvas) {
	for i := 0; i < t.n; i++ {
		g, ok := GlyphFor(t.buf[i])
		if !ok {
			continue
		}
		c.Paste(glyphPitch+glyphPitch*i-int(t.scroll), 0, g)
	}
}
