package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. EOMARKET_BREAKPOINT.
const EnvPrefix = "EOMARKET_"

// DefaultPath returns ~/.eomarket/config.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".eomarket", "config.yml"), nil
}

// LoadDotEnv loads .env files from the working directory. Variables already
// set in the environment win; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to access config %s: %w", path, err)
		}
	}

	// EOMARKET_HIDE_THRESHOLD -> hide_threshold
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %d", c.Breakpoint)
	}
	if c.HideThreshold < 0 {
		return fmt.Errorf("hide_threshold must not be negative, got %d", c.HideThreshold)
	}
	if c.AnimationStagger < 0 {
		return fmt.Errorf("animation_stagger must not be negative, got %s", c.AnimationStagger)
	}
	if c.BottomNavHeight <= 0 {
		return fmt.Errorf("bottom_nav_height must be positive, got %d", c.BottomNavHeight)
	}
	if c.CellWidthPx <= 0 || c.CellHeightPx <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidthPx, c.CellHeightPx)
	}
	if c.FrameDelay < 0 {
		return fmt.Errorf("frame_delay must not be negative, got %s", c.FrameDelay)
	}
	if strings.TrimSpace(c.LandingPage) == "" {
		return fmt.Errorf("landing_page is required")
	}
	return nil
}

// Save writes cfg to path as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	data, err := yaml.Parser().Marshal(map[string]interface{}{
		"breakpoint":        cfg.Breakpoint,
		"hide_threshold":    cfg.HideThreshold,
		"animation_stagger": cfg.AnimationStagger.String(),
		"bottom_nav_height": cfg.BottomNavHeight,
		"cell_width_px":     cfg.CellWidthPx,
		"cell_height_px":    cfg.CellHeightPx,
		"frame_delay":       cfg.FrameDelay.String(),
		"landing_page":      cfg.LandingPage,
		"notice_text":       cfg.NoticeText,
		"log_file":          cfg.LogFile,
		"debug":             cfg.Debug,
		"trace_db":          cfg.TraceDB,
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
