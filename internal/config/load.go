package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/flotilla/internal/pathutil"
)

// LoadGlobalConfig loads the global configuration from the default config
// path. If the config file doesn't exist, it returns DefaultGlobalConfig().
// If the file exists but cannot be read or parsed, it returns an error.
// Paths containing ~ are expanded to the actual home directory.
func LoadGlobalConfig() (*GlobalConfig, error) {
	path := GlobalConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return nil, fmt.Errorf("read global config: %w", err)
	}

	cfg, err := ParseGlobalConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	if err := ValidateGlobalConfig(cfg); err != nil {
		return nil, fmt.Errorf("load global config: %w", err)
	}

	cfg.Log.File = pathutil.ExpandHome(cfg.Log.File)
	return cfg, nil
}

// LoadProjectConfig loads the project configuration from dir. If no
// project file exists there, it returns a zero-value ProjectConfig.
// If the file exists but cannot be read or parsed, it returns an error.
// Compose file paths containing ~ are expanded to the home directory.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	path := ProjectConfigPath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("read project config %q: %w", path, err)
	}

	cfg, err := ParseProjectConfig(data)
	if err != nil {
		return nil, fmt.Errorf("load project config %q: %w", path, err)
	}

	if err := ValidateProjectConfig(cfg); err != nil {
		return nil, fmt.Errorf("load project config %q: %w", path, err)
	}

	for i, f := range cfg.Files {
		cfg.Files[i] = pathutil.ExpandHome(f)
	}
	return cfg, nil
}
