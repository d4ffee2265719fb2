package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/katalvlaran/geocontour/contour"
	"github.com/katalvlaran/geocontour/encode"
)

// Row kinds.
const (
	KindBand = "isoband"
	KindLine = "isoline"
)

// Pool is the subset of *pgxpool.Pool used here.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var (
	bandColumns = []string{"run", "kind", "lower_level", "upper_level", "geom"}
	lineColumns = []string{"run", "kind", "isovalue", "geom"}
)

// Connect opens and pings a pool for dsn.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, eris.New("store: no postgres dsn configured")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, eris.Wrap(err, "store: create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "store: ping database")
	}
	return pool, nil
}

// EnsureTable creates schema.table when missing. Band rows fill lower_level
// and upper_level, line rows fill isovalue.
func EnsureTable(ctx context.Context, pool Pool, schema, table string) error {
	ident := pgx.Identifier{schema, table}.Sanitize()
	sql := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id          bigserial PRIMARY KEY,
	run         text NOT NULL,
	kind        text NOT NULL,
	lower_level double precision,
	upper_level double precision,
	isovalue    double precision,
	geom        geometry(Geometry, %d) NOT NULL
)`, ident, encode.SRID)
	if _, err := pool.Exec(ctx, sql); err != nil {
		return eris.Wrapf(err, "store: create table %s", ident)
	}
	return nil
}

// WriteBands loads one row per band tagged with run and returns the row count.
func WriteBands(ctx context.Context, pool Pool, schema, table, run string, bands []contour.Band, precision int) (int64, error) {
	rows := make([][]any, 0, len(bands))
	for _, b := range bands {
		g, err := encode.BandGeometry(b, precision)
		if err != nil {
			return 0, err
		}
		data, err := encode.EWKB(g)
		if err != nil {
			return 0, err
		}
		rows = append(rows, []any{run, KindBand, b.Lower, b.Upper, data})
	}
	return copyRows(ctx, pool, schema, table, bandColumns, rows)
}

// WriteLines loads one row per isoline level tagged with run.
func WriteLines(ctx context.Context, pool Pool, schema, table, run string, lines []contour.Line, precision int) (int64, error) {
	rows := make([][]any, 0, len(lines))
	for _, l := range lines {
		g, err := encode.LineGeometry(l, precision)
		if err != nil {
			return 0, err
		}
		data, err := encode.EWKB(g)
		if err != nil {
			return 0, err
		}
		rows = append(rows, []any{run, KindLine, l.Level, data})
	}
	return copyRows(ctx, pool, schema, table, lineColumns, rows)
}

func copyRows(ctx context.Context, pool Pool, schema, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := pool.CopyFrom(ctx, pgx.Identifier{schema, table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, eris.Wrapf(err, "store: COPY INTO %s.%s", schema, table)
	}
	zap.L().With(zap.String("component", "store.postgis")).Debug("rows loaded",
		zap.String("table", schema+"."+table),
		zap.Int64("rows", n),
	)
	return n, nil
}
