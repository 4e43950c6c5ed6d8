package progress

// Theme describes the glyphs used to draw a bar. All fields are
// emitted verbatim, so glyphs may be any string, including multi-byte
// or multi-cell ones.
type Theme struct {
	// BarStart and BarEnd bracket the glyph region.
	BarStart string
	BarEnd   string
	// Fill draws a fully filled cell, Empty an unfilled one.
	Fill  string
	Empty string
	// Partial is the sub-cell ramp, ordered from emptiest to fullest.
	// It lends one extra cell of fractional precision; leave it empty
	// to render whole cells only.
	Partial []string
}

// ThemeDefault draws with Unicode block elements, e.g.
// [██████████████████▊        ].
var ThemeDefault = Theme{
	BarStart: "[",
	BarEnd:   "]",
	Fill:     "█",
	Empty:    " ",
	Partial:  []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"},
}

// ThemeASCII is a 7-bit fallback for terminals without block elements.
var ThemeASCII = Theme{
	BarStart: "[",
	BarEnd:   "]",
	Fill:     "=",
	Empty:    " ",
}
