package svgembed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 648
	DefaultHeight = 648
)

// RenderConfig holds the options used to compose the SVG document.
type RenderConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Invert    bool   `yaml:"invert"`
	Mime      string `yaml:"mime"`
	ViewBox   string `yaml:"viewbox"`
	Label     string `yaml:"label"`
	UniqueIDs bool   `yaml:"unique_ids"`
}

// DefaultConfig returns a 648x648 configuration with the mask inversion enabled.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Invert: true,
	}
}

// LoadConfig reads a YAML preset. Keys missing from the file keep their default value.
func LoadConfig(path string) (RenderConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: unable to read the config file: %v", ErrUsage, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: unable to parse the config file %s: %v", ErrUsage, path, err)
	}
	return cfg, nil
}

// Validate checks the canvas dimensions.
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height should be positive, got %dx%d", ErrUsage, c.Width, c.Height)
	}
	return nil
}

// viewBox returns the explicit view box or the one covering the whole canvas.
func (c RenderConfig) viewBox() string {
	if c.ViewBox != "" {
		return c.ViewBox
	}
	return fmt.Sprintf("0 0 %d %d", c.Width, c.Height)
}
