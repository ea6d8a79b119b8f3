package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-viewcube/common"
	"github.com/Carmen-Shannon/oxy-viewcube/engine"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/window"
	"gopkg.in/yaml.v3"
)

// Config is the viewer configuration read from a YAML file and overridden by flags.
type Config struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Background string  `yaml:"background"`
	VSync      bool    `yaml:"vsync"`
	MSAA       int     `yaml:"msaa"`
	Profile    bool    `yaml:"profile"`
	FrameLimit float64 `yaml:"frame_limit"`
}

// DefaultConfig returns the configuration used when no file or flag says otherwise.
func DefaultConfig() Config {
	return Config{
		Title:      "Viewcube",
		Width:      1280,
		Height:     720,
		Background: "#202020",
		VSync:      true,
		MSAA:       4,
	}
}

// LoadConfig reads path as YAML over the defaults. Keys missing from the file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.MSAA != 1 && c.MSAA != 4 {
		return fmt.Errorf("invalid msaa %d: must be 1 or 4", c.MSAA)
	}
	if c.FrameLimit < 0 {
		return fmt.Errorf("invalid frame_limit %v", c.FrameLimit)
	}
	if _, err := common.ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	return nil
}

// WindowOptions converts the configuration into window options.
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Title),
		window.WithSize(c.Width, c.Height),
	}
}

// EngineOptions converts the configuration into engine options. The surface is added by the caller.
func (c Config) EngineOptions() ([]engine.EngineBuilderOption, error) {
	bg, err := common.ParseHexColor(c.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	mode := renderer.PresentModeUncapped
	if c.VSync {
		mode = renderer.PresentModeVSync
	}
	return []engine.EngineBuilderOption{
		engine.WithBackgroundColor(bg),
		engine.WithPresentMode(mode),
		engine.WithMSAA(renderer.MSAASampleCount(c.MSAA)),
		engine.WithProfiling(c.Profile),
		engine.WithRenderFrameLimit(c.FrameLimit),
	}, nil
}
