package config

import "time"

// Config holds every tunable of the program.
type Config struct {
	Breakpoint       int           `koanf:"breakpoint" yaml:"breakpoint"`
	HideThreshold    int           `koanf:"hide_threshold" yaml:"hide_threshold"`
	AnimationStagger time.Duration `koanf:"animation_stagger" yaml:"animation_stagger"`
	BottomNavHeight  int           `koanf:"bottom_nav_height" yaml:"bottom_nav_height"`
	CellWidthPx      int           `koanf:"cell_width_px" yaml:"cell_width_px"`
	CellHeightPx     int           `koanf:"cell_height_px" yaml:"cell_height_px"`
	FrameDelay       time.Duration `koanf:"frame_delay" yaml:"frame_delay"`
	LandingPage      string        `koanf:"landing_page" yaml:"landing_page"`
	NoticeText       string        `koanf:"notice_text" yaml:"notice_text"`
	LogFile          string        `koanf:"log_file" yaml:"log_file"`
	Debug            bool          `koanf:"debug" yaml:"debug"`
	TraceDB          string        `koanf:"trace_db" yaml:"trace_db"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		Breakpoint:       768,
		HideThreshold:    10,
		AnimationStagger: 200 * time.Millisecond,
		BottomNavHeight:  48,
		CellWidthPx:      8,
		CellHeightPx:     16,
		FrameDelay:       16 * time.Millisecond,
		LandingPage:      "home",
		NoticeText:       "This page is under development!",
	}
}
