package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/evenflow/gen"
	"github.com/katalvlaran/evenflow/instance"
	"github.com/katalvlaran/evenflow/internal/config"
	"github.com/katalvlaran/evenflow/minrange"
)

const (
	countFlag     = "count"
	junctionsFlag = "junctions"
	densityFlag   = "density"
	seedFlag      = "seed"
	minWeightFlag = "min-weight"
	maxWeightFlag = "max-weight"
)

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Emit random data sets terminated by \"0 0\"",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}

	cmd.Flags().IntP(countFlag, "n", config.DefaultGenCount, "number of data sets")
	cmd.Flags().IntP(junctionsFlag, "j", config.DefaultGenJunctions, "junctions per data set")
	cmd.Flags().Float64P(densityFlag, "p", config.DefaultGenDensity, "probability that a junction pair has a pipe")
	cmd.Flags().Int64(seedFlag, config.DefaultGenSeed, "seed of the first data set; data set i uses seed+i")
	cmd.Flags().Int(minWeightFlag, config.DefaultGenMinWeight, "smallest pipe capacity")
	cmd.Flags().Int(maxWeightFlag, config.DefaultGenMaxWeight, "largest pipe capacity")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		"generate.count":      countFlag,
		"generate.junctions":  junctionsFlag,
		"generate.density":    densityFlag,
		"generate.seed":       seedFlag,
		"generate.min_weight": minWeightFlag,
		"generate.max_weight": maxWeightFlag,
	})
	if err != nil {
		return err
	}

	l, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	g := cfg.Generate
	insts := make([]minrange.Instance, 0, g.Count)
	for i := 0; i < g.Count; i++ {
		inst, genErr := gen.RandomSparse(g.Junctions, g.Density,
			gen.WithSeed(g.Seed+int64(i)),
			gen.WithWeightRange(g.MinWeight, g.MaxWeight),
		)
		if genErr != nil {
			return fmt.Errorf("generate data set %d: %w", i+1, genErr)
		}
		insts = append(insts, inst)
	}
	l.Debug("generated data sets", "count", len(insts), "junctions", g.Junctions, "density", g.Density)

	return instance.Encode(cmd.OutOrStdout(), insts)
}
