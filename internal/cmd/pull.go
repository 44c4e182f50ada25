package cmd

import (
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull [services...]",
	Short: "Pull service images",
	RunE:  runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}
	return waitHandle(c.Pull(nil, args...))
}
