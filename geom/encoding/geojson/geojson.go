// Package geojson encodes and decodes geometry objects to and from the
// GeoJSON format. Only the geometry portion of the format is handled;
// features and feature collections are not.
package geojson

// InvalidGeometryError is returned when GeoJSON input is structurally
// invalid.
type InvalidGeometryError struct{}

func (e InvalidGeometryError) Error() string {
	return "geojson: invalid geometry"
}

// UnsupportedGeometryError is returned for GeoJSON geometry types this
// package does not handle.
type UnsupportedGeometryError struct {
	Type string
}

func (e UnsupportedGeometryError) Error() string {
	return "geojson: unsupported geometry type " + e.Type
}
