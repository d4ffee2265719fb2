package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/encode"
	"github.com/katalvlaran/geocontour/grid"
	"github.com/katalvlaran/geocontour/store"
)

// inputFlags are shared by the contouring subcommands.
type inputFlags struct {
	path     string
	field    string
	postgres bool
	run      string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "input", "", "grid file (.yaml, .yml or .shp)")
	cmd.Flags().StringVar(&f.field, "field", "VALUE", "shapefile attribute holding the sample value")
	cmd.Flags().BoolVar(&f.postgres, "postgres", false, "also load the result into PostGIS")
	cmd.Flags().StringVar(&f.run, "run", "", "run label stored with PostGIS rows (default: current UTC time)")
	_ = cmd.MarkFlagRequired("input")
}

func (f *inputFlags) runLabel() string {
	if f.run != "" {
		return f.run
	}
	return time.Now().UTC().Format(time.RFC3339)
}

// result is what one subcommand computed.
type result struct {
	bands []contour.Band
	lines []contour.Line
}

// cacheKey digests everything that shapes the encoded output. Shapefile
// values live in the sibling .dbf, so it is hashed too.
func cacheKey(kind string, in *inputFlags, values []float64) (string, error) {
	raw, err := os.ReadFile(in.path)
	if err != nil {
		return "", eris.Wrapf(err, "read %s", in.path)
	}
	parts := []string{kind, in.field, string(raw)}
	if ext := filepath.Ext(in.path); strings.EqualFold(ext, ".shp") {
		dbf := strings.TrimSuffix(in.path, ext) + ".dbf"
		attrs, err := os.ReadFile(dbf)
		if err != nil {
			return "", eris.Wrapf(err, "read %s", dbf)
		}
		parts = append(parts, string(attrs))
	}
	parts = append(parts, fmt.Sprint(values),
		cfg.Contour.Method, fmt.Sprint(cfg.Contour.Smoothing), fmt.Sprint(cfg.Contour.MaxIterations),
		fmt.Sprint(cfg.Output.Precision), cfg.Output.Format)
	return store.Key(parts...), nil
}

// execute loads the grid, consults the cache, computes, encodes and stores.
func execute(cmd *cobra.Command, kind string, in *inputFlags, values []float64,
	compute func(ctx context.Context, g *grid.Grid) (result, error)) error {
	ctx := cmd.Context()
	log := zap.L().With(zap.String("component", "cmd."+kind))

	format, err := cfg.Output.Encoding()
	if err != nil {
		return err
	}
	if format == encode.ShapefileFormat && cfg.Output.Path == "" {
		return eris.New("shapefile output needs --out")
	}

	cache := store.NewCache(store.OpenRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), cfg.Redis.TTL)
	defer func() { _ = cache.Close() }()

	key, err := cacheKey(kind, in, values)
	if err != nil {
		return err
	}
	cacheable := format != encode.ShapefileFormat && !in.postgres
	if cacheable {
		data, ok, err := cache.Get(ctx, key)
		if err != nil {
			log.Warn("cache unavailable", zap.Error(err))
		} else if ok {
			return writeOutput(cmd, data)
		}
	}

	g, err := grid.LoadFile(in.path, in.field)
	if err != nil {
		return err
	}
	res, err := compute(ctx, g)
	if err != nil {
		return err
	}
	log.Info("contours computed",
		zap.Int("bands", len(res.bands)),
		zap.Int("lines", len(res.lines)),
	)

	if in.postgres {
		if err := load(ctx, in.runLabel(), res); err != nil {
			return err
		}
	}

	var data []byte
	switch format {
	case encode.ShapefileFormat:
		return encode.WriteShapefile(cfg.Output.Path, res.bands, res.lines, cfg.Output.Precision)
	case encode.WKTFormat:
		var buf bytes.Buffer
		if err := encode.WriteWKT(&buf, res.bands, res.lines, cfg.Output.Precision); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		if data, err = encode.GeoJSON(res.bands, res.lines, cfg.Output.Precision); err != nil {
			return err
		}
	}

	if cacheable {
		if err := cache.Set(ctx, key, data); err != nil {
			log.Warn("cache write failed", zap.Error(err))
		}
	}
	return writeOutput(cmd, data)
}

func load(ctx context.Context, run string, res result) error {
	pool, err := store.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := store.EnsureTable(ctx, pool, cfg.Postgres.Schema, cfg.Postgres.Table); err != nil {
		return err
	}
	n, err := store.WriteBands(ctx, pool, cfg.Postgres.Schema, cfg.Postgres.Table, run, res.bands, cfg.Output.Precision)
	if err != nil {
		return err
	}
	m, err := store.WriteLines(ctx, pool, cfg.Postgres.Schema, cfg.Postgres.Table, run, res.lines, cfg.Output.Precision)
	if err != nil {
		return err
	}
	zap.L().Info("loaded into postgis", zap.String("run", run), zap.Int64("rows", n+m))
	return nil
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if cfg.Output.Path != "" {
		return writeFile(cfg.Output.Path, data)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return eris.Wrap(err, "write output")
	}
	return nil
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "close %s", path)
	}
	return nil
}
