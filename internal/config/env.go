package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overrides the fields of target that carry an env tag and whose
// variable is set.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
