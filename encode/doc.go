// Package encode turns contour output into go-geom geometries and the formats
// built on them: GeoJSON, EWKB, WKT and ESRI shapefiles.
//
// Rounding to a fixed number of decimals happens here and only here, after
// ring closure, so a closed ring stays closed after rounding.
//
// Polygons are written with RFC 7946 winding (exterior counter-clockwise,
// holes clockwise) in every format except shapefiles, which use the ESRI
// convention (exterior clockwise). Geometries carry SRID 4326.
package encode
