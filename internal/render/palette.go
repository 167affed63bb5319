package render

import "image/color"

// agentPalette holds ten distinguishable path colors; agents beyond
// ten cycle. Hues follow the usual categorical plotting order.
var agentPalette = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff}, // blue
	{0xff, 0x7f, 0x0e, 0xff}, // orange
	{0x2c, 0xa0, 0x2c, 0xff}, // green
	{0xd6, 0x27, 0x28, 0xff}, // red
	{0x94, 0x67, 0xbd, 0xff}, // purple
	{0x8c, 0x56, 0x4b, 0xff}, // brown
	{0xe3, 0x77, 0xc2, 0xff}, // pink
	{0x7f, 0x7f, 0x7f, 0xff}, // gray
	{0xbc, 0xbd, 0x22, 0xff}, // olive
	{0x17, 0xbe, 0xcf, 0xff}, // cyan
}

// AgentColor returns the path color for the i-th agent in first-seen
// order.
func AgentColor(i int) color.RGBA {
	return agentPalette[i%len(agentPalette)]
}

// fade blends a color halfway toward the background, used for trails.
func fade(c, bg color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((uint16(c.R) + uint16(bg.R)) / 2),
		G: uint8((uint16(c.G) + uint16(bg.G)) / 2),
		B: uint8((uint16(c.B) + uint16(bg.B)) / 2),
		A: 0xff,
	}
}
