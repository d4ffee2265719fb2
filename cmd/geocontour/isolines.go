package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/grid"
)

var (
	isolinesInput  inputFlags
	isolinesLevels []float64
)

var isolinesCmd = &cobra.Command{
	Use:   "isolines",
	Short: "Trace the lines where the field equals each level",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, "isolines", &isolinesInput, isolinesLevels,
			func(ctx context.Context, g *grid.Grid) (result, error) {
				lines, err := contour.Isolines(ctx, g, isolinesLevels, cfg.Contour.Options(zap.L())...)
				return result{lines: lines}, err
			})
	},
}

func init() {
	isolinesInput.register(isolinesCmd)
	isolinesCmd.Flags().Float64SliceVar(&isolinesLevels, "levels", nil, "one or more levels")
	_ = isolinesCmd.MarkFlagRequired("levels")
	rootCmd.AddCommand(isolinesCmd)
}
