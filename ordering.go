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

package georel

import "github.com/spatialmodel/georel/geom"

// OrderingEquals returns whether a and b are the same geometry variant
// with identical coordinate sequences in identical order, including the
// order of components in multi-geometries and of rings in polygons.
// Unlike Equals it bypasses the intersection matrix: two geometries
// that trace the same shape with a different starting vertex or winding
// direction are topologically equal but not ordering-equal. Coordinates
// are compared exactly, without tolerance.
func (e Evaluator) OrderingEquals(a, b geom.Geom) (bool, error) {
	if err := checkOperands(a, b); err != nil {
		return false, err
	}
	return orderingEqual(a, b), nil
}

// OrderingEquals evaluates the predicate with the default tolerance.
func OrderingEquals(a, b geom.Geom) (bool, error) { return std.OrderingEquals(a, b) }

func orderingEqual(a, b geom.Geom) bool {
	switch a := a.(type) {
	case geom.Point:
		b, ok := b.(geom.Point)
		return ok && a.Equals(b)
	case geom.MultiPoint:
		b, ok := b.(geom.MultiPoint)
		return ok && pointsEqual(a, b)
	case geom.LineString:
		b, ok := b.(geom.LineString)
		return ok && pointsEqual(a, b)
	case geom.MultiLineString:
		b, ok := b.(geom.MultiLineString)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !pointsEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	case geom.Polygon:
		b, ok := b.(geom.Polygon)
		return ok && ringsEqual(a, b)
	case geom.MultiPolygon:
		b, ok := b.(geom.MultiPolygon)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !ringsEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	case geom.GeometryCollection:
		b, ok := b.(geom.GeometryCollection)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !orderingEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func pointsEqual(a, b []geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func ringsEqual(a, b [][]geom.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !pointsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
