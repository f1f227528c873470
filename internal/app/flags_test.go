package app

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	w, h := cfg.WindowSize()
	if w != 960 || h != 960 {
		t.Fatalf("window %dx%d, want 960x960", w, h)
	}
	if cfg.FPS != 8 || cfg.Density != 0.1 || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "40", "-h", "20", "-cell", "16", "-fps", "12", "-seed", "7", "-mode", "center", "-renderer", "cpu", "-quiet"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 40 || cfg.Height != 20 || cfg.CellSize != 16 || cfg.FPS != 12 || cfg.Seed != 7 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Mode != ModeCenter || cfg.Renderer != RendererCPU || !cfg.Quiet {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Logger().Writer() != io.Discard {
		t.Fatal("quiet logger still writes")
	}
}

func TestConfigValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":   func(c *Config) { c.Width = 0 },
		"huge height":  func(c *Config) { c.Height = 1 << 16 },
		"cell size":    func(c *Config) { c.CellSize = -1 },
		"fps":          func(c *Config) { c.FPS = 0 },
		"density":      func(c *Config) { c.Density = 1.5 },
		"mode":         func(c *Config) { c.Mode = "glider" },
		"renderer":     func(c *Config) { c.Renderer = "vulkan" },
		"negative dim": func(c *Config) { c.Height = -3 },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrConfig) {
			t.Fatalf("%s: Validate returned %v, want ErrConfig", name, err)
		}
	}
}
