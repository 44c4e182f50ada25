// Package cmd implements the CLI commands for flotilla.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/config"
	"github.com/xdg/flotilla/internal/flog"
	"github.com/xdg/flotilla/internal/term"
	"github.com/xdg/flotilla/internal/version"
)

var (
	flagFiles      []string
	flagMachine    string
	flagProjectDir string
	flagSilent     bool
	flagDebug      bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flotilla",
	Short: "Drive docker-compose and docker-machine from one place",
	Long: `Flotilla wraps the docker-compose and docker-machine command-line tools.

It merges per-project configuration (compose files, environment variables,
a bound docker-machine host) into every invocation, so day-to-day service
operations don't need the full flag soup repeated each time.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		term.SetSilent(flagSilent)

		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return err
		}

		if err := flog.Configure(cfg.Log.File, flagDebug); err != nil {
			return err
		}
		if !flagDebug {
			flog.SetLevel(flog.ParseLevel(cfg.Log.Level))
		}
		return nil
	},
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringArrayVarP(&flagFiles, "file", "f", nil, "compose file (repeatable, overrides project config)")
	pf.StringVar(&flagMachine, "machine", "", "docker-machine host to target")
	pf.StringVar(&flagProjectDir, "project-dir", "", "project directory (default: current directory)")
	pf.BoolVar(&flagSilent, "silent", false, "suppress normal output")
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
}
