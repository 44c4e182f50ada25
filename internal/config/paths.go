package config

import (
	"os"
	"path/filepath"

	"github.com/xdg/flotilla/internal/pathutil"
)

// ProjectFileName is the per-project configuration file name, looked up
// in the project directory.
const ProjectFileName = "flotilla.yaml"

// Dir returns the flotilla configuration directory path.
// By default, this is ~/.config/flotilla/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/flotilla/ instead.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return filepath.Join(pathutil.ExpandHome(base), "flotilla")
}

// GlobalConfigPath returns the full path to the global configuration file.
func GlobalConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// ProjectConfigPath returns the path to a project's configuration file in
// the given project directory.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectFileName)
}
