package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected configs. Earlier configs take precedence:
// mergo only fills fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, rest, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.args = rest
	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	path, explicit := DefaultEnvFile, false
	if p := b.firstSet(func(c *StructuredConfig) string { return c.EnvFilePath }); p != "" {
		path, explicit = p, true
	}

	dotEnvCfg, err := parseDotEnv(path, explicit)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotEnvCfg != nil {
		b.configs = append(b.configs, dotEnvCfg)
	}
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.firstSet(func(c *StructuredConfig) string { return c.JSONFilePath })
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) firstSet(get func(*StructuredConfig) string) string {
	for _, cfg := range b.configs {
		if v := get(cfg); v != "" {
			return v
		}
	}
	return ""
}
