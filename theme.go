package chirp

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the viewer
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Handle  int // Screen names
	Event   int // Event names
	Notice  int // Limit, warning and other stream notices
	Error   int // Errors and disconnects
	Success int // Clean stream end
	Muted   int // Status bar, timestamps
	RawBg   int // Unparsed line background
	Accent  int // Direct messages, envelope headers
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Handle:  4,
		Event:   5,
		Notice:  3,
		Error:   1,
		Success: 2,
		Muted:   8,
		RawBg:   0,
		Accent:  6,
	}
}
