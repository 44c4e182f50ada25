package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseGlobalConfig parses YAML data into a GlobalConfig struct.
// It returns an error if the YAML is malformed, contains unknown fields,
// or has type mismatches. Missing optional fields become zero values.
// Empty input returns a zero-value GlobalConfig.
func ParseGlobalConfig(data []byte) (*GlobalConfig, error) {
	var cfg GlobalConfig
	if err := strictUnmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse global config: %w", err)
	}
	return &cfg, nil
}

// ParseProjectConfig parses YAML data into a ProjectConfig struct.
// It returns an error if the YAML is malformed, contains unknown fields,
// or has type mismatches. Missing optional fields become zero values.
// Empty input returns a zero-value ProjectConfig.
func ParseProjectConfig(data []byte) (*ProjectConfig, error) {
	var cfg ProjectConfig
	if err := strictUnmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse project config: %w", err)
	}
	return &cfg, nil
}

// strictUnmarshal unmarshals YAML data into v, rejecting unknown fields.
// This helps catch typos in configuration files early.
// Empty input is treated as valid, leaving v at its zero value.
func strictUnmarshal(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(v)
	if errors.Is(err, io.EOF) {
		// Empty input: leave v at zero value
		return nil
	}
	return err
}
