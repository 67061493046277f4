package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/commentstyle/commentstyle/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.ConfigLoader by reading a YAML rule list.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads and validates the rule list at path. Unknown keys are rejected
// so that typos do not silently disable a rule.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read '%s': %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse '%s': %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML rule list.
func Parse(data []byte) (domain.Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg domain.Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
