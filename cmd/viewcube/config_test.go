package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewcube.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "title: Demo\nwidth: 1920\nframe_limit: 30\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "Demo" || cfg.Width != 1920 || cfg.FrameLimit != 30 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Height != 720 || cfg.Background != "#202020" || !cfg.VSync || cfg.MSAA != 4 {
		t.Fatalf("missing keys must keep defaults, cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := LoadConfig(writeConfig(t, "width: [1, 2\n")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"msaa 2", func(c *Config) { c.MSAA = 2 }, true},
		{"msaa off", func(c *Config) { c.MSAA = 1 }, false},
		{"bad background", func(c *Config) { c.Background = "blue" }, true},
		{"negative frame limit", func(c *Config) { c.FrameLimit = -1 }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "title: FromFile\nwidth: 1024\nheight: 768\nvsync: false\n")

	var got Config
	cmd := newRootCommand(func(cfg Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{"--config", path, "--width", "640", "--background", "0x101010"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got.Title != "FromFile" || got.Height != 768 || got.VSync {
		t.Fatalf("file values lost: %+v", got)
	}
	if got.Width != 640 || got.Background != "0x101010" {
		t.Fatalf("flag values not applied: %+v", got)
	}
}

func TestInvalidFlagRejected(t *testing.T) {
	called := false
	cmd := newRootCommand(func(Config) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"--msaa", "8"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation error for --msaa 8")
	}
	if called {
		t.Fatal("an invalid configuration must not start the viewer")
	}
}

func TestEngineOptions(t *testing.T) {
	opts, err := DefaultConfig().EngineOptions()
	if err != nil {
		t.Fatalf("EngineOptions: %v", err)
	}
	if len(opts) != 5 {
		t.Fatalf("len(opts) = %d, want 5", len(opts))
	}
	bad := DefaultConfig()
	bad.Background = "nope"
	if _, err := bad.EngineOptions(); err == nil {
		t.Fatal("expected error for invalid background")
	}
}
