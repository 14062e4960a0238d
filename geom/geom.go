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

// Package geom holds the geometry objects that the predicate engine
// operates on. Geometries are plain coordinate slices; once constructed
// they are treated as immutable. They can be encoded and decoded by the
// packages in the encoding directory.
package geom

// Geom is an interface for generic geometry types.
type Geom interface {
	Bounds() *Bounds
}

// Dimension returns the topological dimension of g: 0 for point
// geometries, 1 for linear geometries, and 2 for polygonal geometries.
// For a GeometryCollection it returns the maximum dimension of the
// members, and for an empty geometry it returns -1.
func Dimension(g Geom) int {
	switch g := g.(type) {
	case Point:
		return 0
	case MultiPoint:
		if len(g) == 0 {
			return -1
		}
		return 0
	case LineString:
		if len(g) == 0 {
			return -1
		}
		return 1
	case MultiLineString:
		d := -1
		for _, l := range g {
			if len(l) > 0 {
				d = 1
			}
		}
		return d
	case Polygon:
		if Empty(g) {
			return -1
		}
		return 2
	case MultiPolygon:
		d := -1
		for _, p := range g {
			if !Empty(p) {
				d = 2
			}
		}
		return d
	case GeometryCollection:
		d := -1
		for _, gg := range g {
			if dd := Dimension(gg); dd > d {
				d = dd
			}
		}
		return d
	}
	return -1
}

// Empty returns whether g contains no coordinates at all.
func Empty(g Geom) bool {
	switch g := g.(type) {
	case nil:
		return true
	case Point:
		return false
	case MultiPoint:
		return len(g) == 0
	case LineString:
		return len(g) == 0
	case MultiLineString:
		for _, l := range g {
			if len(l) > 0 {
				return false
			}
		}
		return true
	case Polygon:
		for _, r := range g {
			if len(r) > 0 {
				return false
			}
		}
		return true
	case MultiPolygon:
		for _, p := range g {
			if !Empty(p) {
				return false
			}
		}
		return true
	case GeometryCollection:
		for _, gg := range g {
			if !Empty(gg) {
				return false
			}
		}
		return true
	}
	return true
}
