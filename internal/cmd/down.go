package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/prompt"
	"github.com/xdg/flotilla/internal/term"
)

var (
	downVolumes bool
	downYes     bool
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Stop services and remove their containers",
	Long: `Stop the project's services and remove their containers and networks.

With --volumes, named volumes declared by the project are removed as well.
Volume removal is irreversible, so it asks for confirmation unless --yes
is given.`,
	Args: cobra.NoArgs,
	RunE: runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)
	downCmd.Flags().BoolVar(&downVolumes, "volumes", false, "also remove named volumes")
	downCmd.Flags().BoolVar(&downYes, "yes", false, "skip the volume removal confirmation")
}

func runDown(cmd *cobra.Command, args []string) error {
	if downVolumes && !downYes {
		if !prompt.Interactive() {
			return fmt.Errorf("refusing to remove volumes without --yes in a non-interactive session")
		}
		ok, err := prompt.New().Confirm("Remove named volumes? This cannot be undone.", false)
		if err != nil {
			return err
		}
		if !ok {
			term.Println("Aborted.")
			return nil
		}
	}

	c, err := newCompose()
	if err != nil {
		return err
	}

	var opts flags.Options
	if downVolumes {
		opts = append(opts, flags.Opt("volumes", flags.Bool(true)))
	}
	return waitHandle(c.Down(opts))
}
