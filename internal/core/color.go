package core

// Color is a palette entry. Adapters map it to whatever their surface needs:
// ANSI codes for the terminal, RGBA for a window.
type Color uint8

// Palette used by the cricket field and HUD.
const (
	ColorDefault Color = iota // Transparent / terminal default
	ColorBlack
	ColorWhite
	ColorGreen      // Outfield
	ColorDarkGreen  // Beyond the rope
	ColorBrown      // Skin, heads
	ColorLightBrown // Pitch
	ColorRed
	ColorBlue
	ColorYellow
	ColorGray
	ColorPurple // Curve ball
	ColorGold   // Milestone flash
	colorCount
)

var palette = [colorCount][3]uint8{
	ColorDefault:    {0, 0, 0},
	ColorBlack:      {0, 0, 0},
	ColorWhite:      {255, 255, 255},
	ColorGreen:      {34, 139, 34},
	ColorDarkGreen:  {0, 100, 0},
	ColorBrown:      {139, 69, 19},
	ColorLightBrown: {205, 133, 63},
	ColorRed:        {220, 20, 60},
	ColorBlue:       {0, 100, 200},
	ColorYellow:     {255, 255, 0},
	ColorGray:       {128, 128, 128},
	ColorPurple:     {255, 0, 255},
	ColorGold:       {255, 215, 0},
}

// ansi256 approximates the palette for 256-colour terminals.
var ansi256 = [colorCount]string{
	ColorDefault:    "",
	ColorBlack:      "16",
	ColorWhite:      "15",
	ColorGreen:      "28",
	ColorDarkGreen:  "22",
	ColorBrown:      "94",
	ColorLightBrown: "173",
	ColorRed:        "161",
	ColorBlue:       "25",
	ColorYellow:     "11",
	ColorGray:       "244",
	ColorPurple:     "13",
	ColorGold:       "220",
}

// RGB returns the 8-bit red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	if c >= colorCount {
		return 255, 255, 255
	}
	p := palette[c]
	return p[0], p[1], p[2]
}

// ANSI returns the 256-colour terminal code, or "" for the default colour.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}
