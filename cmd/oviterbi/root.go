package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	verbose    bool

	logger *slog.Logger
}

func (g *globalFlags) setup() {
	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}

	g.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

const rootHelp = `oviterbi runs the online Viterbi decoder against an HMM
config file (YAML, JSON, or TOML), either decoding a single window, or
benchmarking the online decoder against the standard offline decoder
across many windows.`

// Execute builds and runs the root command, returning a process exit
// code.
func Execute() int {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "oviterbi",
		Short: "Online Viterbi decoder runner",
		Long:  rootHelp,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gf.setup()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&gf.configPath, "config", "c", "", "path to the run config file")
	pf.BoolVarP(&gf.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(gf))
	root.AddCommand(newBenchCmd(gf))
	root.AddCommand(newCompareCmd(gf))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}
