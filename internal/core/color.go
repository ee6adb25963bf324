package core

// Color represents a foreground/background color for a pad or label.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. Each pad has a dim resting shade and a bright lit one.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorGray
	ColorBrightWhite
)

// ANSI returns the 256-color code for c as a string, "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "124"
	case ColorGreen:
		return "28"
	case ColorYellow:
		return "136"
	case ColorBlue:
		return "19"
	case ColorBrightRed:
		return "196"
	case ColorBrightGreen:
		return "46"
	case ColorBrightYellow:
		return "226"
	case ColorBrightBlue:
		return "39"
	case ColorGray:
		return "241"
	case ColorBrightWhite:
		return "15"
	default:
		return ""
	}
}

// PadColors is the pair of shades a pad is drawn with.
type PadColors struct {
	Dim Color
	Lit Color
}

// padPalette is indexed by pad position (see Action.Pad).
var padPalette = [PadCount]PadColors{
	{Dim: ColorRed, Lit: ColorBrightRed},
	{Dim: ColorGreen, Lit: ColorBrightGreen},
	{Dim: ColorBlue, Lit: ColorBrightBlue},
	{Dim: ColorYellow, Lit: ColorBrightYellow},
}

// PadPalette returns the colors of the pad at index i.
// Out-of-range indexes get gray.
func PadPalette(i int) PadColors {
	if i < 0 || i >= PadCount {
		return PadColors{Dim: ColorGray, Lit: ColorBrightWhite}
	}
	return padPalette[i]
}
