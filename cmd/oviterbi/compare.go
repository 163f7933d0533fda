package main

import (
	"math/rand"

	"github.com/mlanger/oviterbi/internal/config"
	"github.com/mlanger/oviterbi/internal/report"
	"github.com/mlanger/oviterbi/oviterbi"
	"github.com/mlanger/oviterbi/reference"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCompareCmd(gf *globalFlags) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Decode one synthetic window with both decoders and report whether they agree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(gf, seed)
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 1, "random seed for the synthetic observation sequence")

	return cmd
}

func runCompare(gf *globalFlags, seed int64) error {
	run, err := config.Load(gf.configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	obs := syntheticObservations(run.Window, run.Model.M, rand.New(rand.NewSource(seed)))

	online, err := oviterbi.New(run.Model.K, run.Window)
	if err != nil {
		return errors.Wrap(err, "constructing online decoder")
	}
	if err := online.Initialization(0, run.Model.Pi); err != nil {
		return errors.Wrap(err, "initializing online decoder")
	}
	for t, o := range obs {
		if err := online.Update(t, o, run.Model.A, run.Model.E); err != nil {
			return errors.Wrapf(err, "t=%d", t)
		}
	}
	if err := online.TracebackLastPart(); err != nil {
		return errors.Wrap(err, "flushing final window")
	}

	offline := reference.New(run.Model.K, run.Window)
	offline.Viterbi(obs, run.Model.Pi, run.Model.A, run.Model.E)

	agreed := report.PathsAgree(offline.OptimalPath(), online.DecodedStream())
	gf.logger.Info("comparison complete",
		"agreed", agreed,
		"nodes", online.NodeCount(),
		"observations", obs,
	)

	return nil
}
