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

	"github.com/spatialmodel/georel/geom"
)

type geometry struct {
	Type        string            `json:"type"`
	Coordinates json.RawMessage   `json:"coordinates,omitempty"`
	Geometries  []json.RawMessage `json:"geometries,omitempty"`
}

// Decode converts GeoJSON geometry data to a geometry object, checking
// its structural validity in the process.
func Decode(data []byte) (geom.Geom, error) {
	var gj geometry
	if err := json.Unmarshal(data, &gj); err != nil {
		return nil, InvalidGeometryError{}
	}
	g, err := decodeGeometry(gj)
	if err != nil {
		return nil, err
	}
	if err := geom.Validate(g); err != nil {
		return nil, err
	}
	return g, nil
}

func decodeGeometry(gj geometry) (geom.Geom, error) {
	switch gj.Type {
	case "Point":
		var c []float64
		if err := json.Unmarshal(gj.Coordinates, &c); err != nil || len(c) < 2 {
			return nil, InvalidGeometryError{}
		}
		return geom.Point{X: c[0], Y: c[1]}, nil
	case "MultiPoint":
		c, err := decodePositions(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		return geom.MultiPoint(c), nil
	case "LineString":
		c, err := decodePositions(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		return geom.LineString(c), nil
	case "MultiLineString":
		c, err := decodePositionSets(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		ml := make(geom.MultiLineString, len(c))
		for i, l := range c {
			ml[i] = geom.LineString(l)
		}
		return ml, nil
	case "Polygon":
		c, err := decodePositionSets(gj.Coordinates)
		if err != nil {
			return nil, err
		}
		return geom.Polygon(c), nil
	case "MultiPolygon":
		var raw []json.RawMessage
		if err := json.Unmarshal(gj.Coordinates, &raw); err != nil {
			return nil, InvalidGeometryError{}
		}
		mp := make(geom.MultiPolygon, len(raw))
		for i, r := range raw {
			c, err := decodePositionSets(r)
			if err != nil {
				return nil, err
			}
			mp[i] = geom.Polygon(c)
		}
		return mp, nil
	case "GeometryCollection":
		gc := make(geom.GeometryCollection, len(gj.Geometries))
		for i, raw := range gj.Geometries {
			var sub geometry
			if err := json.Unmarshal(raw, &sub); err != nil {
				return nil, InvalidGeometryError{}
			}
			g, err := decodeGeometry(sub)
			if err != nil {
				return nil, err
			}
			gc[i] = g
		}
		return gc, nil
	}
	return nil, UnsupportedGeometryError{Type: gj.Type}
}

func decodePositions(data json.RawMessage) ([]geom.Point, error) {
	var c [][]float64
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, InvalidGeometryError{}
	}
	points := make([]geom.Point, len(c))
	for i, pos := range c {
		if len(pos) < 2 {
			return nil, InvalidGeometryError{}
		}
		points[i] = geom.Point{X: pos[0], Y: pos[1]}
	}
	return points, nil
}

func decodePositionSets(data json.RawMessage) ([][]geom.Point, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, InvalidGeometryError{}
	}
	sets := make([][]geom.Point, len(raw))
	for i, r := range raw {
		points, err := decodePositions(r)
		if err != nil {
			return nil, err
		}
		sets[i] = points
	}
	return sets, nil
}
