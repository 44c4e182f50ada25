package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/term"
)

var imagesCmd = &cobra.Command{
	Use:   "images [services...]",
	Short: "List the image IDs used by the project's services",
	RunE:  runImages,
}

func init() {
	rootCmd.AddCommand(imagesCmd)
}

func runImages(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}

	ids, err := c.Images(nil, true, args...)
	if err != nil {
		return exitCodeError(err)
	}
	for _, id := range ids {
		term.Println(id)
	}
	return nil
}
