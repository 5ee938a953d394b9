package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the `env` and
// `envPrefix` tags of [StructuredConfig]. Unset variables leave their fields
// zero so that later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading environment configs: %w", err)
	}

	return nil
}
