package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/flags"
)

var (
	buildPull    bool
	buildNoCache bool
)

var buildCmd = &cobra.Command{
	Use:   "build [services...]",
	Short: "Build or rebuild service images",
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVar(&buildPull, "pull", false, "always pull newer base images")
	buildCmd.Flags().BoolVar(&buildNoCache, "no-cache", false, "build without using the cache")
}

func runBuild(cmd *cobra.Command, args []string) error {
	c, err := newCompose()
	if err != nil {
		return err
	}

	var opts flags.Options
	if buildPull {
		opts = append(opts, flags.Opt("pull", flags.Bool(true)))
	}
	if buildNoCache {
		opts = append(opts, flags.Opt("noCache", flags.Bool(true)))
	}
	return waitHandle(c.Build(opts, args...))
}
