package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in precedence order. Earlier
// layers win: mergo only fills fields still at their zero value, so a value
// set by the environment is never overwritten by flags or JSON.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) add(layer *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merge config layers: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	if err := parseEnv(layer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(layer)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	layer, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(layer)
}

// jsonPath returns the JSON config path supplied by the highest-precedence
// layer, or "" when no layer named one.
func (b *configBuilder) jsonPath() string {
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			return layer.JSONFilePath
		}
	}
	return ""
}
