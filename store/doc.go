// Package store persists contour results.
//
// Bands and lines are bulk-loaded into a PostGIS table through the COPY
// protocol, one row per band or level with its geometry as EWKB (SRID 4326).
// Cache memoizes encoded output in Redis, keyed by a digest of the inputs.
package store
