package config

import (
	"fmt"
	"time"
)

type Config struct {
	// ContentDir overrides the embedded dialog script and page content when set.
	ContentDir string `env:"LANDING_CONTENT_DIR"`

	FPS           int     `env:"LANDING_FPS"`
	ParticleCount int     `env:"LANDING_PARTICLES"`
	SphereRadius  float64 `env:"LANDING_SPHERE_RADIUS"`
	Seed          uint64  `env:"LANDING_SEED"`

	// Terminal cells are mapped to pixels so the pixel-based layout rules
	// (canvas size, width breakpoint) keep their original meaning.
	CellWidthPx  int `env:"LANDING_CELL_WIDTH_PX"`
	CellHeightPx int `env:"LANDING_CELL_HEIGHT_PX"`
	BreakpointPx int `env:"LANDING_BREAKPOINT_PX"`

	LogFile  string `env:"LANDING_LOG_FILE"`
	LogLevel string `env:"LANDING_LOG_LEVEL"`
}

func New(contentDir string) (Config, error) {
	cfg := Config{
		ContentDir:    contentDir,
		FPS:           30,
		ParticleCount: 1000,
		SphereRadius:  150,
		Seed:          uint64(time.Now().UnixNano()),
		CellWidthPx:   8,
		CellHeightPx:  16,
		BreakpointPx:  1000,
		LogLevel:      "info",
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 120 {
		return fmt.Errorf("fps must be in 1..120, got %d", c.FPS)
	}
	if c.ParticleCount <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", c.ParticleCount)
	}
	if c.SphereRadius <= 0 {
		return fmt.Errorf("sphere radius must be positive, got %g", c.SphereRadius)
	}
	if c.CellWidthPx <= 0 || c.CellHeightPx <= 0 {
		return fmt.Errorf("cell size must be positive, got %dx%d", c.CellWidthPx, c.CellHeightPx)
	}
	if c.BreakpointPx <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %d", c.BreakpointPx)
	}
	return nil
}

// FramePeriod is the interval between animation ticks.
func (c Config) FramePeriod() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
