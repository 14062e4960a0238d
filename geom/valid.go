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

package geom

import (
	"fmt"
	"math"
)

// Validate checks the structural validity of g, returning a
// NullGeometryError if g is nil and a MalformedGeometryError if any
// coordinate is not finite, any LineString has fewer than two points,
// or any polygon ring has fewer than four points or is not closed.
// Geometries with zero coordinates are structurally valid but are
// rejected by the predicate kernel with an UnsupportedGeometryError.
func Validate(g Geom) error {
	switch g := g.(type) {
	case nil:
		return NullGeometryError{}
	case Point:
		return validPoint(g)
	case MultiPoint:
		return validPoints(g)
	case LineString:
		return validLineString(g)
	case MultiLineString:
		for _, l := range g {
			if err := validLineString(l); err != nil {
				return err
			}
		}
	case Polygon:
		return validPolygon(g)
	case MultiPolygon:
		for _, p := range g {
			if err := validPolygon(p); err != nil {
				return err
			}
		}
	case GeometryCollection:
		for _, gg := range g {
			if err := Validate(gg); err != nil {
				return err
			}
		}
	default:
		return UnsupportedGeometryError{G: g}
	}
	return nil
}

func validPoint(p Point) error {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return MalformedGeometryError{
			Reason: fmt.Sprintf("non-finite coordinate (%g, %g)", p.X, p.Y),
		}
	}
	return nil
}

func validPoints(points []Point) error {
	for _, p := range points {
		if err := validPoint(p); err != nil {
			return err
		}
	}
	return nil
}

func validLineString(l LineString) error {
	if len(l) == 1 {
		return MalformedGeometryError{
			Reason: "LineString with fewer than 2 points",
		}
	}
	return validPoints(l)
}

func validPolygon(p Polygon) error {
	for _, r := range p {
		if len(r) == 0 {
			continue
		}
		if len(r) < 4 {
			return MalformedGeometryError{
				Reason: fmt.Sprintf("polygon ring with %d points", len(r)),
			}
		}
		if !r[0].Equals(r[len(r)-1]) {
			return MalformedGeometryError{
				Reason: fmt.Sprintf("polygon ring is not closed: (%g, %g) != (%g, %g)",
					r[0].X, r[0].Y, r[len(r)-1].X, r[len(r)-1].Y),
			}
		}
		if err := validPoints(r); err != nil {
			return err
		}
	}
	return nil
}
