package core

// Color is a foreground color token for a screen cell. The platform maps
// tokens to terminal colors; the engine only picks them.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightRed
	ColorBrightYellow
)
