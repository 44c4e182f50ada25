package cmd

import (
	"github.com/spf13/cobra"
)

var psCmd = &cobra.Command{
	Use:   "ps [services...]",
	Short: "List project containers",
	RunE:  runPs,
}

func init() {
	rootCmd.AddCommand(psCmd)
}

func runPs(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}
	return waitHandle(c.Ps(nil, args...))
}
