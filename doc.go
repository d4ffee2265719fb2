// Package geocontour computes isolines and isobands over regular lon/lat
// sample grids with marching squares, producing geographic geometry.
//
// The pipeline is split into small packages, each usable on its own:
//
//	core/        shared value types: GridPoint, Point, Edge, Ring, Polygon, CellShape
//	interpolate/ crossing placement on a cell side (cosine or great-circle)
//	cellshape/   per-cell classification: isoline segments and the isoband catalog
//	trace/       edge tracer joining per-cell edges into closed rings
//	polygon/     ring containment and exterior/hole organization
//	grid/        validated sample grid, YAML and shapefile loaders
//	contour/     Isobands and Isolines over a whole grid, bands in parallel
//	encode/      go-geom geometries, GeoJSON, EWKB, WKT and shapefile output
//	store/       PostGIS COPY sink and Redis result cache
//	config/      viper configuration and zap logger setup
//	cmd/geocontour command-line front end
//
// Quick example:
//
//	g, _ := grid.FromAxes(lons, lats, values)
//	bands, _ := contour.Isobands(ctx, g, []float64{0, 10, 20})
//	data, _ := encode.GeoJSON(bands, nil, encode.DefaultPrecision)
//
// Band [lower, upper) includes its lower threshold and excludes its upper
// one. Ring closure uses exact coordinate equality; rounding happens only at
// encoding time.
package geocontour
