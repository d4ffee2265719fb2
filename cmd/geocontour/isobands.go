package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/grid"
)

var (
	isobandsInput      inputFlags
	isobandsThresholds []float64
)

var isobandsCmd = &cobra.Command{
	Use:   "isobands",
	Short: "Fill the regions between consecutive thresholds",
	Long:  "Computes one MultiPolygon per band [t_i, t_i+1). Bands that cover no area are omitted.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd, "isobands", &isobandsInput, isobandsThresholds,
			func(ctx context.Context, g *grid.Grid) (result, error) {
				bands, err := contour.Isobands(ctx, g, isobandsThresholds, cfg.Contour.Options(zap.L())...)
				return result{bands: bands}, err
			})
	},
}

func init() {
	isobandsInput.register(isobandsCmd)
	isobandsCmd.Flags().Float64SliceVar(&isobandsThresholds, "thresholds", nil, "ascending thresholds, at least two")
	_ = isobandsCmd.MarkFlagRequired("thresholds")
	rootCmd.AddCommand(isobandsCmd)
}
