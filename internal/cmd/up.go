package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/flags"
)

var (
	upDetach bool
	upBuild  bool
)

var upCmd = &cobra.Command{
	Use:   "up [services...]",
	Short: "Create and start services",
	Long: `Create and start the project's services, or only the named ones.

Without --detach the command stays attached and streams service output
until interrupted.`,
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
	upCmd.Flags().BoolVarP(&upDetach, "detach", "d", false, "run services in the background")
	upCmd.Flags().BoolVar(&upBuild, "build", false, "build images before starting")
}

func runUp(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}

	var opts flags.Options
	if upDetach {
		opts = append(opts, flags.Opt("detach", flags.Bool(true)))
	}
	if upBuild {
		opts = append(opts, flags.Opt("build", flags.Bool(true)))
	}
	return waitHandle(c.Up(opts, args...))
}
