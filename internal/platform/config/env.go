package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overlays LANDING_* environment variables onto target. Fields whose
// variable is unset keep their current value.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
