package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Breakpoint != 768 {
		t.Errorf("expected default breakpoint 768, got %d", cfg.Breakpoint)
	}
	if cfg.HideThreshold != 10 {
		t.Errorf("expected default hide_threshold 10, got %d", cfg.HideThreshold)
	}
	if cfg.AnimationStagger != 200*time.Millisecond {
		t.Errorf("expected default animation_stagger 200ms, got %s", cfg.AnimationStagger)
	}
	if cfg.LandingPage != "home" {
		t.Errorf("expected default landing_page %q, got %q", "home", cfg.LandingPage)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte("breakpoint: 1024\nhide_threshold: 24\nanimation_stagger: 150ms\nlanding_page: search\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("EOMARKET_HIDE_THRESHOLD", "32")
	t.Setenv("EOMARKET_FRAME_DELAY", "40ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Breakpoint != 1024 {
		t.Errorf("breakpoint: got %d, want %d", cfg.Breakpoint, 1024)
	}
	if cfg.HideThreshold != 32 {
		t.Errorf("hide_threshold: got %d, want %d (env wins)", cfg.HideThreshold, 32)
	}
	if cfg.AnimationStagger != 150*time.Millisecond {
		t.Errorf("animation_stagger: got %s, want %s", cfg.AnimationStagger, 150*time.Millisecond)
	}
	if cfg.FrameDelay != 40*time.Millisecond {
		t.Errorf("frame_delay: got %s, want %s", cfg.FrameDelay, 40*time.Millisecond)
	}
	if cfg.LandingPage != "search" {
		t.Errorf("landing_page: got %q, want %q", cfg.LandingPage, "search")
	}
	if cfg.BottomNavHeight != 48 {
		t.Errorf("bottom_nav_height: got %d, want default %d", cfg.BottomNavHeight, 48)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("breakpoint: [\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"breakpoint":  func(c *Config) { c.Breakpoint = 0 },
		"threshold":   func(c *Config) { c.HideThreshold = -1 },
		"stagger":     func(c *Config) { c.AnimationStagger = -time.Second },
		"bottom nav":  func(c *Config) { c.BottomNavHeight = 0 },
		"cell width":  func(c *Config) { c.CellWidthPx = 0 },
		"cell height": func(c *Config) { c.CellHeightPx = -2 },
		"frame delay": func(c *Config) { c.FrameDelay = -time.Millisecond },
		"landing":     func(c *Config) { c.LandingPage = "  " },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("EOMARKET_LANDING_PAGE=favorites\nEOMARKET_BREAKPOINT=900\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("EOMARKET_BREAKPOINT", "800")
	t.Setenv("EOMARKET_LANDING_PAGE", "")
	os.Unsetenv("EOMARKET_LANDING_PAGE")

	if err := LoadDotEnv(path, filepath.Join(dir, ".env.local")); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	if got := os.Getenv("EOMARKET_BREAKPOINT"); got != "800" {
		t.Errorf("EOMARKET_BREAKPOINT: got %q, want %q", got, "800")
	}
	if got := os.Getenv("EOMARKET_LANDING_PAGE"); got != "favorites" {
		t.Errorf("EOMARKET_LANDING_PAGE: got %q, want %q", got, "favorites")
	}
}

func TestLoadDotEnvMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("EOMARKET-BREAKPOINT=900\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	err := LoadDotEnv(path)
	if err == nil {
		t.Fatal("expected an error for a malformed .env file")
	}
	if !strings.Contains(err.Error(), "failed to load "+path) {
		t.Errorf("error: got %q, want it to name %s", err, path)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := DefaultConfig()
	cfg.LandingPage = "favorites"
	cfg.AnimationStagger = 350 * time.Millisecond
	cfg.TraceDB = "/tmp/eomarket-trace.db"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}
