// Package config provides configuration types for flotilla global and
// per-project settings. These types map to YAML configuration files.
package config

// GlobalConfig represents the top-level global configuration for flotilla.
// It is typically stored at ~/.config/flotilla/config.yaml.
type GlobalConfig struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Log      LogConfig      `yaml:"log,omitempty"`
}

// DefaultsConfig specifies default settings applied when a project config
// or command-line flag does not override them.
type DefaultsConfig struct {
	// Machine is the docker-machine host to target by default.
	Machine string `yaml:"machine,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `yaml:"level,omitempty"`
	// File is the log file path. Empty disables file logging.
	File string `yaml:"file,omitempty"`
}

// ProjectConfig represents a per-project configuration, stored as
// flotilla.yaml in the project directory.
type ProjectConfig struct {
	// Files lists the compose files applied to every invocation, in order.
	Files []string `yaml:"files,omitempty"`
	// Machine is the docker-machine host to target for this project.
	Machine string `yaml:"machine,omitempty"`
	// Env adds environment variables to every spawned subprocess.
	Env map[string]string `yaml:"env,omitempty"`
}
