package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/term"
	"github.com/xdg/flotilla/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show flotilla and docker-compose versions",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	term.Printf("flotilla %s\n", version.Version)

	c, err := newCompose()
	if err != nil {
		return err
	}
	v, err := c.Version()
	if err != nil {
		term.Warn("docker-compose version unavailable: %v", err)
		return nil
	}
	term.Printf("docker-compose %s\n", v)
	return nil
}
