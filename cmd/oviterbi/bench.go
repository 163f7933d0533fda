package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/mlanger/oviterbi/internal/config"
	"github.com/mlanger/oviterbi/internal/report"
	"github.com/mlanger/oviterbi/oviterbi"
	"github.com/mlanger/oviterbi/reference"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newBenchCmd(gf *globalFlags) *cobra.Command {
	var outPath string
	var windows int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the online decoder against the reference decoder over many windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(gf, outPath, windows)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "viterbi_performance.csv", "CSV output path")
	cmd.Flags().IntVarP(&windows, "windows", "n", 100, "number of windows to benchmark")

	return cmd
}

func runBench(gf *globalFlags, outPath string, windows int) error {
	run, err := config.Load(gf.configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	defer f.Close()

	csvWriter := report.NewCSVWriter(f)
	rng := rand.New(rand.NewSource(1))

	online, err := oviterbi.New(run.Model.K, run.Window)
	if err != nil {
		return errors.Wrap(err, "constructing online decoder")
	}
	offline := reference.New(run.Model.K, run.Window)

	for iter := 0; iter < windows; iter++ {
		obs := syntheticObservations(run.Window, run.Model.M, rng)

		if err := online.Initialization(0, run.Model.Pi); err != nil {
			return errors.Wrap(err, "initializing online decoder")
		}

		onlineStart := time.Now()
		for t, o := range obs {
			if err := online.Update(t, o, run.Model.A, run.Model.E); err != nil {
				return errors.Wrapf(err, "window %d, t=%d", iter, t)
			}
		}
		if err := online.TracebackLastPart(); err != nil {
			return errors.Wrapf(err, "window %d, final flush", iter)
		}
		onlineTime := time.Since(onlineStart)

		offlineStart := time.Now()
		offline.Viterbi(obs, run.Model.Pi, run.Model.A, run.Model.E)
		offlineTime := time.Since(offlineStart)

		result := report.WindowResult{
			Iteration:    iter,
			Observations: obs,
			StandardTime: offlineTime,
			OnlineTime:   onlineTime,
			Nodes:        online.NodeCount(),
			Agreed:       report.PathsAgree(offline.OptimalPath(), online.DecodedStream()),
		}

		report.LogSummary(gf.logger, result)
		if err := csvWriter.WriteRow(result); err != nil {
			return errors.Wrap(err, "writing CSV row")
		}
	}

	return nil
}
