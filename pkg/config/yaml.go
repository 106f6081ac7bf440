package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// ToYAML serializes the configuration. A nil config encodes to nothing.
func (c *Config) ToYAML() ([]byte, error) {
	return c.ToYAMLWithHeader("")
}

// ToYAMLWithHeader serializes the configuration below a comment header,
// separated from it by a blank line.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if header != "" {
		buf.WriteString(header)
		if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration document. Unknown top-level keys are
// rejected so typos surface instead of being ignored; an empty document
// yields an empty config.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Assists == nil {
		cfg.Assists = make(map[string]AssistConfig)
	}
	return cfg, nil
}

// Clone returns a deep copy of c. Nested values inside assist options
// are shared.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.EnableAssists = slices.Clone(c.EnableAssists)
	clone.DisableAssists = slices.Clone(c.DisableAssists)

	if c.Assists != nil {
		clone.Assists = make(map[string]AssistConfig, len(c.Assists))
		for id, ac := range c.Assists {
			if ac.Enabled != nil {
				enabled := *ac.Enabled
				ac.Enabled = &enabled
			}
			ac.Options = maps.Clone(ac.Options)
			clone.Assists[id] = ac
		}
	}

	return &clone
}
