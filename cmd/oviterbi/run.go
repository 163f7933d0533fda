package main

import (
	"fmt"
	"math/rand"

	"github.com/mlanger/oviterbi/internal/config"
	"github.com/mlanger/oviterbi/oviterbi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRunCmd(gf *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Decode one synthetic window and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(gf)
		},
	}

	return cmd
}

func runRun(gf *globalFlags) error {
	run, err := config.Load(gf.configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	d, err := oviterbi.New(run.Model.K, run.Window)
	if err != nil {
		return errors.Wrap(err, "constructing decoder")
	}
	if err := d.Initialization(0, run.Model.Pi); err != nil {
		return errors.Wrap(err, "initializing decoder")
	}

	obs := syntheticObservations(run.Window, run.Model.M, rand.New(rand.NewSource(1)))
	for t, o := range obs {
		if err := d.Update(t, o, run.Model.A, run.Model.E); err != nil {
			return errors.Wrapf(err, "updating at t=%d", t)
		}
	}
	if err := d.TracebackLastPart(); err != nil {
		return errors.Wrap(err, "flushing final window")
	}

	gf.logger.Info("decode complete", "nodes", d.NodeCount(), "window", run.Window)
	fmt.Println(d.DecodedStream())

	return nil
}
