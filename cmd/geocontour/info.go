package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/geocontour/grid"
)

var (
	infoInput string
	infoField string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe a grid file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		g, err := grid.LoadFile(infoInput, infoField)
		if err != nil {
			return err
		}
		b := g.Bounds()
		lo, hi := g.ValueRange()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows:   %d\n", g.Rows())
		fmt.Fprintf(out, "cols:   %d\n", g.Cols())
		fmt.Fprintf(out, "bounds: lon [%g, %g] lat [%g, %g]\n", b.Min(0), b.Max(0), b.Min(1), b.Max(1))
		fmt.Fprintf(out, "values: [%g, %g]\n", lo, hi)
		return nil
	},
}

func init() {
	infoCmd.Flags().StringVar(&infoInput, "input", "", "grid file (.yaml, .yml or .shp)")
	infoCmd.Flags().StringVar(&infoField, "field", "VALUE", "shapefile attribute holding the sample value")
	_ = infoCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(infoCmd)
}
