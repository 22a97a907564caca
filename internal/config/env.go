// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseDotEnv reads the dotenv file at path and maps it through the same
// env tags. The process environment is left untouched. A missing file is
// an error only when the path was set explicitly; otherwise nil is
// returned.
func parseDotEnv(path string, explicit bool) (*StructuredConfig, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	cfg := &StructuredConfig{}
	if err = env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("error getting env file configs: %w", err)
	}
	// a dotenv file cannot point at another one
	cfg.EnvFilePath = ""

	return cfg, nil
}
