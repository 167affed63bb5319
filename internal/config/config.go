package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCellSize = 24
	DefaultMargin   = 16
	DefaultPanel    = 360
	DefaultFPS      = 5
	DefaultTheme    = "dark"
)

// Config holds the render settings for both the static figure and the
// animated GIF. Zero values fall back to the defaults above.
type Config struct {
	// CellSize is the pixel edge length of one grid cell.
	CellSize int `yaml:"cell_size"`
	// Margin is the pixel border around the plot area.
	Margin int `yaml:"margin"`
	// PanelWidth is the width of the metrics panel on the static figure.
	PanelWidth int `yaml:"panel_width"`
	// FPS is the GIF playback rate in frames per second.
	FPS int `yaml:"fps"`
	// Theme names a color preset; see Themes.
	Theme string `yaml:"theme"`
	// TrailFade thins trail lines in animation frames when set.
	TrailFade bool `yaml:"trail_fade"`
}

func DefaultConfig() *Config {
	return &Config{
		CellSize:   DefaultCellSize,
		Margin:     DefaultMargin,
		PanelWidth: DefaultPanel,
		FPS:        DefaultFPS,
		Theme:      DefaultTheme,
		TrailFade:  true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Margin < 0 {
		c.Margin = DefaultMargin
	}
	if c.PanelWidth <= 0 {
		c.PanelWidth = DefaultPanel
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// FrameDelay converts FPS to GIF delay units (hundredths of a second).
// A non-positive FPS, possible via flags that bypass applyDefaults,
// falls back to the default rate.
func (c *Config) FrameDelay() int {
	fps := c.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	d := 100 / fps
	if d < 2 {
		d = 2
	}
	return d
}
