package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evenflow/batch"
	"github.com/katalvlaran/evenflow/instance"
	"github.com/katalvlaran/evenflow/internal/config"
	"github.com/katalvlaran/evenflow/minrange"
)

const (
	solveCmdUse     = "solve [file]"
	solveCmdShort   = "Solve data sets from a file or stdin (\"-\")"
	workersFlag     = "workers"
	formatFlag      = "format"
	exhaustiveFlag  = "exhaustive"
	metricsFileFlag = "metrics-file"
)

// NewSolveCommand creates the solve subcommand.
func NewSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   solveCmdUse,
		Short: solveCmdShort,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}

	cmd.Flags().IntP(workersFlag, "w", config.DefaultWorkers, "number of data sets solved concurrently")
	cmd.Flags().StringP(formatFlag, "f", config.DefaultFormat, "output format: plain, json, table")
	cmd.Flags().Bool(exhaustiveFlag, false, "examine every weight window (no early stop)")
	cmd.Flags().String(metricsFileFlag, "", "write Prometheus metrics to this file after solving")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"solve.workers":      workersFlag,
		"solve.format":       formatFlag,
		"solve.exhaustive":   exhaustiveFlag,
		"solve.metrics_file": metricsFileFlag,
	})
	if err != nil {
		return err
	}

	l, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	format, err := instance.ParseFormat(cfg.Solve.Format)
	if err != nil {
		return err
	}

	src := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return fmt.Errorf("open input: %w", openErr)
		}
		defer f.Close()
		src = f
	}

	insts, err := readInstances(src)
	if err != nil {
		return err
	}
	l.Debug("read data sets", "count", len(insts))

	var searchOpts []minrange.Option
	if cfg.Solve.Exhaustive {
		searchOpts = append(searchOpts, minrange.WithExhaustive())
	}
	solver := batch.New(
		batch.WithWorkers(cfg.Solve.Workers),
		batch.WithLogger(l),
		batch.WithSearchOptions(searchOpts...),
	)

	start := time.Now()
	results, err := solver.Solve(cmd.Context(), insts)
	if err != nil {
		return err
	}
	l.Info("solved", "datasets", len(insts), "workers", cfg.Solve.Workers, "elapsed", time.Since(start))

	if err = instance.Write(cmd.OutOrStdout(), format, insts, results); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if cfg.Solve.MetricsFile != "" {
		if err = solver.Metrics().WriteFile(cfg.Solve.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		l.Debug("wrote metrics", "path", cfg.Solve.MetricsFile)
	}

	return nil
}

func readInstances(src io.Reader) ([]minrange.Instance, error) {
	insts, err := instance.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return insts, nil
}
