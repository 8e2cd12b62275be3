package core

// Color is a foreground color as an ANSI 256-color index. The zero value is
// the terminal's default color, so black is not available.
type Color uint8

const (
	ColorDefault     Color = 0
	ColorWhite       Color = 7
	ColorRed         Color = 9
	ColorGreen       Color = 10
	ColorYellow      Color = 11
	ColorBlue        Color = 12
	ColorMagenta     Color = 13
	ColorCyan        Color = 14
	ColorBrightWhite Color = 15
	ColorBrightRed   Color = 196
	ColorOrange      Color = 208
	ColorGray        Color = 240
)

// Emphasized reports whether text in c is drawn bold.
func (c Color) Emphasized() bool {
	return c == ColorBrightWhite || c == ColorBrightRed
}
