package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/flags"
)

var (
	logsFollow bool
	logsTail   int
)

var logsCmd = &cobra.Command{
	Use:   "logs [services...]",
	Short: "Show service log output",
	RunE:  runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().BoolVar(&logsFollow, "follow", false, "follow log output")
	logsCmd.Flags().IntVar(&logsTail, "tail", 0, "number of lines from the end of the logs (0 = all)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}

	var opts flags.Options
	if logsFollow {
		opts = append(opts, flags.Opt("follow", flags.Bool(true)))
	}
	if logsTail > 0 {
		opts = append(opts, flags.Opt("tail", flags.Int(logsTail)))
	}
	return waitHandle(c.Logs(opts, args...))
}
