// Package progress generates progress-bar strings, leaving the actual
// terminal manipulation (cursor movement, rewriting a line in place)
// to the caller's favorite terminal library.
package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"
)

// Bar tracks progress toward a fixed total and renders it as a
// fixed-width textual bar:
//
//	[██████████████████▊                               ] 35.70%
//
// The glyph region between the brackets is always exactly width cells
// wide no matter what the current value is. A Bar is plain in-memory
// state with no internal locking; callers sharing one across
// goroutines must synchronize access themselves.
type Bar struct {
	current float64
	total   float64
	width   int

	theme       Theme
	description string
	colorize    colorstring.Colorize
	showPercent bool
	showCount   bool

	lastTextWidth int
}

// plain strips colorstring markup; used for width measurement so ANSI
// escape sequences never count as cells.
var plain = colorstring.Colorize{
	Colors:  colorstring.DefaultColors,
	Disable: true,
	Reset:   true,
}

// New returns a Bar with current set to zero. total is the value that
// reads as 100%; width is the glyph-region width in cells, clamped to
// zero if negative. A non-positive total is tolerated and renders as
// an all-empty 0.00% bar.
func New(total float64, width int, opts ...Option) *Bar {
	if width < 0 {
		width = 0
	}
	b := &Bar{
		total:       total,
		width:       width,
		theme:       ThemeDefault,
		colorize:    plain,
		showPercent: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Set replaces the current progress value. Values outside [0, total]
// are stored as-is: rendering clamps the glyph region, never the
// stored value or the percent text.
func (b *Bar) Set(v float64) {
	b.lastTextWidth = b.TextWidth()
	b.current = v
}

// Add advances the current progress value by delta, which may be
// negative.
func (b *Bar) Add(delta float64) {
	b.lastTextWidth = b.TextWidth()
	b.current += delta
}

// Current returns the progress value as last written.
func (b *Bar) Current() float64 { return b.current }

// Total returns the value treated as 100% completion.
func (b *Bar) Total() float64 { return b.total }

// Width returns the glyph-region width in cells.
func (b *Bar) Width() int { return b.width }

// Percent returns current/total*100 without clamping, so overshoot
// reads above 100 and a negative current reads below zero. A
// non-positive total yields 0.
func (b *Bar) Percent() float64 {
	if b.total <= 0 {
		return 0
	}
	return b.current / b.total * 100
}

// String renders the bar. The glyph region is filled with full-cell
// glyphs, at most one ramp glyph for the fractional remainder, and
// empty-cell padding for the rest, always totalling exactly Width
// cells. The percent text reports the true unclamped ratio.
func (b *Bar) String() string {
	return b.render(b.colorize)
}

func (b *Bar) render(c colorstring.Colorize) string {
	var sb strings.Builder
	if b.description != "" {
		sb.WriteString(c.Color(b.description))
		sb.WriteString(" ")
	}
	sb.WriteString(b.theme.BarStart)

	ratio := 0.0
	if b.total > 0 {
		ratio = b.current / b.total
	}
	filled := math.Min(math.Max(ratio, 0), 1) * float64(b.width)
	full := int(filled)
	cells := full
	sb.WriteString(strings.Repeat(b.theme.Fill, full))
	if rem := filled - float64(full); rem > 0 && cells < b.width && len(b.theme.Partial) > 0 {
		// rem < 1, but the product can round up to len(Partial).
		idx := int(rem * float64(len(b.theme.Partial)))
		if idx >= len(b.theme.Partial) {
			idx = len(b.theme.Partial) - 1
		}
		sb.WriteString(b.theme.Partial[idx])
		cells++
	}
	sb.WriteString(strings.Repeat(b.theme.Empty, b.width-cells))
	sb.WriteString(b.theme.BarEnd)

	if b.showPercent {
		fmt.Fprintf(&sb, " %.2f%%", b.Percent())
	}
	if b.showCount {
		sb.WriteString(" " + formatCount(b.current) + "/" + formatCount(b.total))
	}
	return sb.String()
}

// TextWidth reports the display width, in terminal cells, of the
// string String would return right now. Multi-byte and double-width
// glyphs count by cells rather than bytes, and color escape sequences
// count as zero.
func (b *Bar) TextWidth() int {
	return uniseg.StringWidth(b.render(plain))
}

// LastTextWidth reports the value TextWidth had before the most recent
// Set or Add call, or zero before any mutation. Callers repainting a
// line can move the cursor left by this many cells to overwrite the
// previous render.
func (b *Bar) LastTextWidth() int {
	return b.lastTextWidth
}

// formatCount prints a progress value the way a counter reads:
// integral values without a decimal point, fractional ones in full.
func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
