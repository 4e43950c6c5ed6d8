package progress

// Option configures a Bar during construction.
type Option func(*Bar)

// OptionSetTheme replaces the default block-element glyph set.
func OptionSetTheme(t Theme) Option {
	return func(b *Bar) { b.theme = t }
}

// OptionSetDescription sets a label rendered before the bar. The label
// may carry colorstring markup such as "[green]syncing[reset]"; see
// OptionEnableColorCodes for how the markup is treated.
func OptionSetDescription(desc string) Option {
	return func(b *Bar) { b.description = desc }
}

// OptionEnableColorCodes controls whether colorstring markup in the
// description is compiled into ANSI escape sequences. When disabled
// (the default) the markup is stripped instead, so the visible text is
// the same either way.
func OptionEnableColorCodes(enabled bool) Option {
	return func(b *Bar) { b.colorize.Disable = !enabled }
}

// OptionShowCount appends " current/total" after the bar.
func OptionShowCount(show bool) Option {
	return func(b *Bar) { b.showCount = show }
}

// OptionShowPercent controls the percent readout after the bar.
// It is on by default.
func OptionShowPercent(show bool) Option {
	return func(b *Bar) { b.showPercent = show }
}
