package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robot.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg=%+v; want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoad_OverridesOnlyGivenFields(t *testing.T) {
	path := writeFile(t, `
window:
  width: 1280
tick_rate: 30
camera:
  radius: 12
audio:
  enabled: false
show_path: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Window.Width != 1280 || cfg.Window.Height != def.Window.Height || cfg.Window.Title != def.Window.Title {
		t.Fatalf("window=%+v", cfg.Window)
	}
	if cfg.TickRate != 30 || cfg.Camera.Radius != 12 || cfg.Camera.Phi != def.Camera.Phi {
		t.Fatalf("tick=%d camera=%+v", cfg.TickRate, cfg.Camera)
	}
	if cfg.Audio.Enabled || !cfg.ShowPath || !cfg.ShowAxes {
		t.Fatalf("audio=%+v path=%v axes=%v", cfg.Audio, cfg.ShowPath, cfg.ShowAxes)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeFile(t, "window: [oops\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "config: parse") {
		t.Fatalf("Load malformed err=%v; want parse error", err)
	}
}

func TestResolve(t *testing.T) {
	off := false
	cfg := Default()
	cfg.Resolve(Flags{Width: 1024, TickRate: 120, Mute: true, Axes: &off})
	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Fatalf("window=%+v", cfg.Window)
	}
	if cfg.TickRate != 120 || cfg.Audio.Enabled || cfg.ShowAxes {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.ShowPath {
		t.Fatal("nil path flag changed show_path")
	}
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"negative tick", func(c *Config) { c.TickRate = -1 }, false},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, false},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }, false},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }, false},
	}
	for _, tc := range tcs {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); (err == nil) != tc.ok {
			t.Fatalf("%s: Validate()=%v; want ok=%v", tc.name, err, tc.ok)
		}
	}
}
