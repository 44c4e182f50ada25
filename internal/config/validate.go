package config

import "fmt"

// validLogLevels are the accepted log.level values.
var validLogLevels = map[string]bool{
	"":      true, // unset, defaults to info
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateGlobalConfig checks a parsed global configuration for values
// that parse but cannot work.
func ValidateGlobalConfig(cfg *GlobalConfig) error {
	if !validLogLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be debug, info, warn, or error", cfg.Log.Level)
	}
	return nil
}

// ValidateProjectConfig checks a parsed project configuration.
func ValidateProjectConfig(cfg *ProjectConfig) error {
	for i, f := range cfg.Files {
		if f == "" {
			return fmt.Errorf("files[%d] is empty", i)
		}
	}
	for k := range cfg.Env {
		if k == "" {
			return fmt.Errorf("env contains an empty variable name")
		}
	}
	return nil
}
