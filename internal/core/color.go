package core

// Color is a foreground color for a screen cell. Game logic picks from
// this palette; only the platform layer knows what each entry looks like
// in a terminal.
type Color uint8

// The palette is sized to what the farm actually draws: produce and field
// tones, plus a few HUD accents.
const (
	ColorDefault Color = iota

	// Field and produce tones
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorOrange
	ColorMagenta
	ColorCyan
	ColorBrightCyan

	// HUD and overlay accents
	ColorGray
	ColorBrightRed
	ColorBrightWhite
)
