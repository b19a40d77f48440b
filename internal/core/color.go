package core

// Color is a foreground color for a screen cell.
// The terminal layer maps it onto the ANSI 256-color palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// Colors returns every color that has a palette code.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ANSI returns the 256-color palette index for c.
// The terminal default and unknown colors return "".
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Dim returns the night-time shade of c.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed, ColorBrightGreen, ColorBrightYellow, ColorBrightBlue,
		ColorBrightMagenta, ColorBrightCyan:
		return c - (ColorBrightRed - ColorRed)
	case ColorBrightWhite:
		return ColorWhite
	case ColorGreen, ColorCyan:
		return ColorBlue
	case ColorWhite, ColorYellow, ColorOrange:
		return ColorGray
	}
	return c
}
