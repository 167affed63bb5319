package render

import "image/color"

// Theme defines the color scheme for rendered figures.
type Theme struct {
	Name       string
	Background color.RGBA
	Grid       color.RGBA
	Obstacle   color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Good       color.RGBA
	Warn       color.RGBA
	Bad        color.RGBA
}

// Available themes.
var (
	ThemeDark = Theme{
		Name:       "dark",
		Background: color.RGBA{0x12, 0x12, 0x16, 0xff},
		Grid:       color.RGBA{0x2e, 0x2e, 0x38, 0xff},
		Obstacle:   color.RGBA{0x8b, 0x5a, 0x2b, 0xff},
		Text:       color.RGBA{0xe8, 0xe8, 0xf0, 0xff},
		Muted:      color.RGBA{0x80, 0x80, 0x90, 0xff},
		Good:       color.RGBA{0x2e, 0xcc, 0x71, 0xff},
		Warn:       color.RGBA{0xf3, 0x9c, 0x12, 0xff},
		Bad:        color.RGBA{0xe7, 0x4c, 0x3c, 0xff},
	}

	ThemeLight = Theme{
		Name:       "light",
		Background: color.RGBA{0xfa, 0xfa, 0xfa, 0xff},
		Grid:       color.RGBA{0xd0, 0xd0, 0xd0, 0xff},
		Obstacle:   color.RGBA{0xa0, 0x52, 0x2d, 0xff},
		Text:       color.RGBA{0x20, 0x20, 0x20, 0xff},
		Muted:      color.RGBA{0x90, 0x90, 0x90, 0xff},
		Good:       color.RGBA{0x1e, 0x8e, 0x3e, 0xff},
		Warn:       color.RGBA{0xc0, 0x76, 0x00, 0xff},
		Bad:        color.RGBA{0xc0, 0x28, 0x1c, 0xff},
	}

	ThemePaper = Theme{
		Name:       "paper",
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Grid:       color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
		Obstacle:   color.RGBA{0x55, 0x55, 0x55, 0xff},
		Text:       color.RGBA{0x00, 0x00, 0x00, 0xff},
		Muted:      color.RGBA{0x77, 0x77, 0x77, 0xff},
		Good:       color.RGBA{0x00, 0x66, 0x00, 0xff},
		Warn:       color.RGBA{0x99, 0x66, 0x00, 0xff},
		Bad:        color.RGBA{0x99, 0x00, 0x00, 0xff},
	}
)

var themes = map[string]Theme{
	"dark":  ThemeDark,
	"light": ThemeLight,
	"paper": ThemePaper,
}

// ThemeByName looks up a theme, falling back to dark.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return ThemeDark
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	return []string{"dark", "light", "paper"}
}
