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

package geojson

import (
	"encoding/json"
	"fmt"

	"github.com/spatialmodel/georel/geom"
)

// Encode converts a geometry object to GeoJSON geometry data.
func Encode(g geom.Geom) ([]byte, error) {
	v, err := encodeGeometry(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func encodeGeometry(g geom.Geom) (interface{}, error) {
	type object struct {
		Type        string      `json:"type"`
		Coordinates interface{} `json:"coordinates,omitempty"`
		Geometries  interface{} `json:"geometries,omitempty"`
	}
	switch g := g.(type) {
	case geom.Point:
		return object{Type: "Point", Coordinates: position(g)}, nil
	case geom.MultiPoint:
		return object{Type: "MultiPoint", Coordinates: positions(g)}, nil
	case geom.LineString:
		return object{Type: "LineString", Coordinates: positions(g)}, nil
	case geom.MultiLineString:
		c := make([][][]float64, len(g))
		for i, l := range g {
			c[i] = positions(l)
		}
		return object{Type: "MultiLineString", Coordinates: c}, nil
	case geom.Polygon:
		return object{Type: "Polygon", Coordinates: positionSets(g)}, nil
	case geom.MultiPolygon:
		c := make([][][][]float64, len(g))
		for i, p := range g {
			c[i] = positionSets(p)
		}
		return object{Type: "MultiPolygon", Coordinates: c}, nil
	case geom.GeometryCollection:
		gs := make([]interface{}, len(g))
		for i, gg := range g {
			v, err := encodeGeometry(gg)
			if err != nil {
				return nil, err
			}
			gs[i] = v
		}
		return object{Type: "GeometryCollection", Geometries: gs}, nil
	}
	return nil, UnsupportedGeometryError{Type: fmt.Sprintf("%T", g)}
}

func position(p geom.Point) []float64 {
	return []float64{p.X, p.Y}
}

func positions(points []geom.Point) [][]float64 {
	c := make([][]float64, len(points))
	for i, p := range points {
		c[i] = position(p)
	}
	return c
}

func positionSets(sets [][]geom.Point) [][][]float64 {
	c := make([][][]float64, len(sets))
	for i, s := range sets {
		c[i] = positions(s)
	}
	return c
}
