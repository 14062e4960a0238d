/*
Copyright © 2018 the GeoRel authors.
This file is part of GeoRel.

GeoRel is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GeoRel is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GeoRel.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package shp decodes and encodes shapefiles to and from geometry
// objects. Z and M data in the shapefile geometry is ignored, as are
// attribute fields.
package shp

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"github.com/spatialmodel/georel/geom"
)

// Decoder is a wrapper around the github.com/jonas-p/go-shp shapefile
// reader that yields geometry objects.
type Decoder struct {
	shp.Reader
	row int
	err error
}

// NewDecoder creates a new Decoder for the given file name, with or
// without the .shp extension.
func NewDecoder(filename string) (*Decoder, error) {
	fname := strings.TrimSuffix(filename, ".shp")
	r, err := shp.Open(fname + ".shp")
	if err != nil {
		return nil, err
	}
	d := &Decoder{Reader: *r}
	return d, nil
}

// DecodeRow decodes the geometry in the next shapefile row. It returns
// false when there are no more rows to decode or an error occurs;
// check Error afterwards.
func (d *Decoder) DecodeRow() (geom.Geom, bool) {
	if d.err != nil || !d.Next() {
		return nil, false
	}
	_, shape := d.Shape()
	g, err := shp2Geom(shape)
	if err != nil {
		d.err = fmt.Errorf("shp: while decoding row %d: %v", d.row, err)
		return nil, false
	}
	d.row++
	return g, true
}

// Error returns the error, if any, that was encountered during
// decoding.
func (d *Decoder) Error() error {
	return d.err
}

// Close closes the underlying shapefile reader.
func (d *Decoder) Close() {
	d.Reader.Close()
}

// ReadAll decodes every geometry in the named shapefile.
func ReadAll(filename string) ([]geom.Geom, error) {
	d, err := NewDecoder(filename)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	var out []geom.Geom
	for {
		g, ok := d.DecodeRow()
		if !ok {
			break
		}
		out = append(out, g)
	}
	if err := d.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

// Encoder writes geometry objects to a shapefile. All of the
// geometries written through one Encoder must convert to the shape
// type it was created with.
type Encoder struct {
	w *shp.Writer
}

// NewEncoder creates a new encoder for the given file name, using
// archetype to determine the shapefile geometry type.
func NewEncoder(filename string, archetype geom.Geom) (*Encoder, error) {
	var t shp.ShapeType
	switch archetype.(type) {
	case geom.Point:
		t = shp.POINT
	case geom.MultiPoint:
		t = shp.MULTIPOINT
	case geom.LineString, geom.MultiLineString:
		t = shp.POLYLINE
	case geom.Polygon, geom.MultiPolygon:
		t = shp.POLYGON
	default:
		return nil, fmt.Errorf("shp: unsupported archetype %T", archetype)
	}
	w, err := shp.Create(filename, t)
	if err != nil {
		return nil, err
	}
	return &Encoder{w: w}, nil
}

// Encode writes g to the shapefile.
func (e *Encoder) Encode(g geom.Geom) error {
	shape, err := geom2Shp(g)
	if err != nil {
		return err
	}
	e.w.Write(shape)
	return nil
}

// Close closes the underlying shapefile writer.
func (e *Encoder) Close() {
	e.w.Close()
}
