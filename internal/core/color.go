package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorIndigo
)

// rgb holds the true-color value of each palette entry.
// Neon entries match the hex values the window renderer draws with.
var rgb = [...][3]uint8{
	ColorDefault:       {0xdd, 0xdd, 0xdd},
	ColorRed:           {0xcc, 0x00, 0x00},
	ColorGreen:         {0x00, 0xcc, 0x00},
	ColorYellow:        {0xcc, 0xcc, 0x00},
	ColorBlue:          {0x00, 0x00, 0xcc},
	ColorMagenta:       {0xcc, 0x00, 0xcc},
	ColorCyan:          {0x00, 0xcc, 0xcc},
	ColorWhite:         {0xcc, 0xcc, 0xcc},
	ColorBrightRed:     {0xff, 0x00, 0x44},
	ColorBrightGreen:   {0x00, 0xff, 0x88},
	ColorBrightYellow:  {0xff, 0xff, 0x55},
	ColorBrightBlue:    {0x55, 0x55, 0xff},
	ColorBrightMagenta: {0xff, 0x00, 0xff},
	ColorBrightCyan:    {0x00, 0xea, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x88, 0x00},
	ColorGray:          {0x8a, 0x8a, 0x8a},
	ColorIndigo:        {0x22, 0x22, 0x44},
}

// RGB returns the true-color components of the color.
// Unknown values fall back to ColorDefault.
func (c Color) RGB() (r, g, b uint8) {
	if int(c) >= len(rgb) {
		c = ColorDefault
	}
	v := rgb[c]
	return v[0], v[1], v[2]
}
