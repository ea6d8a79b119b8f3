// Command viewcube opens a 3D viewport with a ground grid, an orbiting camera and a view-cube
// gizmo in the top-right corner. Clicking a gizmo face snaps the camera to that axis.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-viewcube/engine"
	"github.com/Carmen-Shannon/oxy-viewcube/engine/window"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(run).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. start receives the resolved configuration.
func newRootCommand(start func(Config) error) *cobra.Command {
	var (
		configPath string
		flagCfg    = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "viewcube",
		Short: "3D viewport with a view-cube gizmo",
		Long: `viewcube - 3D viewport with a view-cube gizmo

Controls:
  Left drag         - Orbit
  Right/middle drag - Pan
  Scroll            - Zoom
  Click cube face   - Snap to axis view
  Esc               - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flagCfg)
			if err != nil {
				return err
			}
			return start(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Path to a YAML config file")
	f.StringVar(&flagCfg.Title, "title", flagCfg.Title, "Window title")
	f.IntVar(&flagCfg.Width, "width", flagCfg.Width, "Window width in logical pixels")
	f.IntVar(&flagCfg.Height, "height", flagCfg.Height, "Window height in logical pixels")
	f.StringVar(&flagCfg.Background, "background", flagCfg.Background, "Background color (#rrggbb)")
	f.BoolVar(&flagCfg.VSync, "vsync", flagCfg.VSync, "Wait for vertical blank before presenting")
	f.IntVar(&flagCfg.MSAA, "msaa", flagCfg.MSAA, "MSAA sample count (1 or 4)")
	f.BoolVar(&flagCfg.Profile, "profile", flagCfg.Profile, "Log frame rate and memory once per second")
	f.Float64Var(&flagCfg.FrameLimit, "frame-limit", flagCfg.FrameLimit, "Maximum frames per second (0 = uncapped)")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file (or the defaults).
func resolveConfig(cmd *cobra.Command, configPath string, flagCfg Config) (Config, error) {
	cfg := DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("title") {
		cfg.Title = flagCfg.Title
	}
	if f.Changed("width") {
		cfg.Width = flagCfg.Width
	}
	if f.Changed("height") {
		cfg.Height = flagCfg.Height
	}
	if f.Changed("background") {
		cfg.Background = flagCfg.Background
	}
	if f.Changed("vsync") {
		cfg.VSync = flagCfg.VSync
	}
	if f.Changed("msaa") {
		cfg.MSAA = flagCfg.MSAA
	}
	if f.Changed("profile") {
		cfg.Profile = flagCfg.Profile
	}
	if f.Changed("frame-limit") {
		cfg.FrameLimit = flagCfg.FrameLimit
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func run(cfg Config) error {
	win, err := window.NewWindow(cfg.WindowOptions()...)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			log.Printf("[Viewcube] failed to close window: %v", err)
		}
	}()

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}
	eng, err := engine.NewEngine(append(opts, engine.WithSurface(win))...)
	if err != nil {
		return fmt.Errorf("start engine: %w", err)
	}
	defer eng.Close()

	log.Printf("[Viewcube] %s %dx%d (pixel ratio %.2f)", cfg.Title, win.Width(), win.Height(), win.PixelRatio())
	eng.Run()
	return nil
}
