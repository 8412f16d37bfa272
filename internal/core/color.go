package core

// Color is the foreground color of a screen cell.
type Color uint8

// Colors used by the terminal rendition of the game.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
)

// ansiCodes holds the ANSI 256-color code of each color.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorGreen:        "2",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
}

// ANSI returns the ANSI 256-color code, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
