package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "geocontour",
	Short: "Isolines and isobands from lon/lat grids",
	Long: "Runs marching squares over a regular lon/lat sample grid and writes the contours " +
		"as GeoJSON, WKT or shapefiles, optionally loading them into PostGIS.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cmd.Flags())
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return eris.Wrap(err, "validate config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("method", "cosine", "interpolation method: cosine or great_circle")
	f.Float64("smoothing", 0.999, "centre-bias factor in [0,1]")
	f.Int("concurrency", 0, "bands or levels computed at once (0 = GOMAXPROCS)")
	f.Int("max-iterations", 10000, "edge ceiling per traced ring")
	f.Int("precision", 6, "decimals kept in output coordinates")
	f.String("format", "geojson", "output format: geojson, wkt or shp")
	f.String("out", "", "output path (default: stdout; required for shp)")
	f.String("log-level", "info", "log level")
	f.String("log-format", "console", "log format: console or json")
	f.String("postgres-dsn", "", "PostGIS connection string")
	f.String("redis-addr", "", "Redis address for the result cache")
}
