package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/term"
)

var eventsCmd = &cobra.Command{
	Use:   "events [services...]",
	Short: "Stream container events for the project",
	Long: `Subscribe to the project's container event stream and print one line
per event. The stream runs until interrupted.`,
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}

	s, err := c.Events(nil, args...)
	if err != nil {
		return err
	}

	for ev := range s.C {
		term.Printf("%s %s %s %s (%s)\n", ev.Time, ev.Type, ev.Action, ev.Service, ev.ID)
	}
	return exitCodeError(s.Wait())
}
