package config

// DefaultGlobalConfig returns the global configuration used when no
// config file exists.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Log: LogConfig{
			Level: "info",
		},
	}
}
