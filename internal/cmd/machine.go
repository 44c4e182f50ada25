package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/machine"
	"github.com/xdg/flotilla/internal/term"
)

var machineCmd = &cobra.Command{
	Use:   "machine",
	Short: "Manage docker-machine hosts",
}

var machineEnvCmd = &cobra.Command{
	Use:   "env <name>",
	Short: "Show the connection environment of a host",
	Args:  cobra.ExactArgs(1),
	RunE:  runMachineEnv,
}

var (
	machineCreateDriver string
	machineCreateOpts   []string
)

var machineCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Provision a new host",
	Long: `Provision a new docker-machine host with the given driver and wait for
its connection environment to resolve.

Driver options are given as repeated --driver-opt key=value pairs, named
without the driver prefix: for --driver virtualbox, "memory=2048" becomes
--virtualbox-memory 2048.`,
	Args: cobra.ExactArgs(1),
	RunE: runMachineCreate,
}

var machineLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List configured hosts",
	Args:  cobra.NoArgs,
	RunE:  runMachineLs,
}

func init() {
	rootCmd.AddCommand(machineCmd)
	machineCmd.AddCommand(machineEnvCmd)
	machineCmd.AddCommand(machineCreateCmd)
	machineCmd.AddCommand(machineLsCmd)

	machineCreateCmd.Flags().StringVar(&machineCreateDriver, "driver", "", "driver to provision with (required)")
	_ = machineCreateCmd.MarkFlagRequired("driver")
	machineCreateCmd.Flags().StringArrayVar(&machineCreateOpts, "driver-opt", nil, "driver option as key=value (repeatable)")
}

func runMachineEnv(cmd *cobra.Command, args []string) error {
	env, err := machine.New().Env(args[0], nil)
	if err != nil {
		return exitCodeError(err)
	}
	printEnv(env)
	return nil
}

func runMachineCreate(cmd *cobra.Command, args []string) error {
	driverOpts, err := parseDriverOpts(machineCreateOpts)
	if err != nil {
		return err
	}

	host, err := machine.New().Create(args[0], machineCreateDriver, driverOpts)
	if err != nil {
		return exitCodeError(err)
	}

	term.Printf("Created machine %q\n", host.Name())
	printEnv(host.Env())
	return nil
}

func runMachineLs(cmd *cobra.Command, args []string) error {
	names, err := machine.New().List()
	if err != nil {
		return exitCodeError(err)
	}
	for _, name := range names {
		term.Println(name)
	}
	return nil
}

// parseDriverOpts converts repeated key=value pairs into an ordered
// options list, preserving the order they were supplied.
func parseDriverOpts(pairs []string) (flags.Options, error) {
	var opts flags.Options
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --driver-opt %q: expected key=value", p)
		}
		opts = append(opts, flags.Opt(key, flags.String(value)))
	}
	return opts, nil
}

// printEnv prints an environment mapping as sorted NAME=value lines.
func printEnv(env map[string]string) {
	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		term.Printf("%s=%s\n", name, env[name])
	}
}
