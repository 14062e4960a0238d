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

package relate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/georel/geom"
)

// segment is an edge of a linework feature.
type segment struct {
	start, end geom.Point
}

func (s segment) length() float64 {
	return math.Hypot(s.end.X-s.start.X, s.end.Y-s.start.Y)
}

func (s segment) bounds() *geom.Bounds {
	b := geom.NewBoundsPoint(s.start)
	b.Extend(geom.NewBoundsPoint(s.end))
	return b
}

// at returns the point at parameter t along s, where t=0 is the start
// and t=1 is the end.
func (s segment) at(t float64) geom.Point {
	return geom.Point{
		X: s.start.X + t*(s.end.X-s.start.X),
		Y: s.start.Y + t*(s.end.Y-s.start.Y),
	}
}

// param returns the parameter along s of the projection of p onto the
// line through s.
func (s segment) param(p geom.Point) float64 {
	dx, dy := s.end.X-s.start.X, s.end.Y-s.start.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((p.X-s.start.X)*dx + (p.Y-s.start.Y)*dy) / den
}

func pointsCoincide(p1, p2 geom.Point, tol float64) bool {
	return floats.EqualWithinAbs(p1.X, p2.X, tol) && floats.EqualWithinAbs(p1.Y, p2.Y, tol)
}

// distPointToSegment returns the distance from p to the closest point
// on the segment from segStart to segEnd.
func distPointToSegment(p, segStart, segEnd geom.Point) float64 {
	v := geom.Point{X: segEnd.X - segStart.X, Y: segEnd.Y - segStart.Y}
	w := geom.Point{X: p.X - segStart.X, Y: p.Y - segStart.Y}

	c1 := w.X*v.X + w.Y*v.Y
	if c1 <= 0 {
		return math.Hypot(p.X-segStart.X, p.Y-segStart.Y)
	}
	c2 := v.X*v.X + v.Y*v.Y
	if c2 <= c1 {
		return math.Hypot(p.X-segEnd.X, p.Y-segEnd.Y)
	}
	b := c1 / c2
	pb := geom.Point{X: segStart.X + b*v.X, Y: segStart.Y + b*v.Y}
	return math.Hypot(p.X-pb.X, p.Y-pb.Y)
}

func pointOnSegment(p, segStart, segEnd geom.Point, tol float64) bool {
	return distPointToSegment(p, segStart, segEnd) < tol
}

// segIntersect computes the intersection of two segments. It returns
// the number of intersection endpoints found: 0 for no intersection,
// 1 for a single crossing or touching point p0, and 2 for a collinear
// overlap extending from p0 to p1. Adapted from the Martinez et al.
// polygon clipping algorithm
// (http://wwwdi.ujaen.es/~fmartin/bool_op.html).
func segIntersect(seg0, seg1 segment, tol float64) (n int, p0, p1 geom.Point) {
	d0 := geom.Point{X: seg0.end.X - seg0.start.X, Y: seg0.end.Y - seg0.start.Y}
	d1 := geom.Point{X: seg1.end.X - seg1.start.X, Y: seg1.end.Y - seg1.start.Y}
	e := geom.Point{X: seg1.start.X - seg0.start.X, Y: seg1.start.Y - seg0.start.Y}

	kross := d0.X*d1.Y - d0.Y*d1.X
	sqrKross := kross * kross
	sqrLen0 := d0.X*d0.X + d0.Y*d0.Y
	sqrLen1 := d1.X*d1.X + d1.Y*d1.Y
	sqrTol := tol * tol

	if sqrKross > sqrTol*sqrLen0*sqrLen1 {
		// The lines through the segments are not parallel.
		s := (e.X*d1.Y - e.Y*d1.X) / kross
		if s < 0 || s > 1 {
			return 0, p0, p1
		}
		t := (e.X*d0.Y - e.Y*d0.X) / kross
		if t < 0 || t > 1 {
			return 0, p0, p1
		}
		return 1, seg0.at(s), p1
	}

	// The lines through the segments are parallel.
	sqrLenE := e.X*e.X + e.Y*e.Y
	kross = e.X*d0.Y - e.Y*d0.X
	sqrKross = kross * kross
	if sqrKross > sqrTol*sqrLen0*sqrLenE {
		// The lines are parallel but distinct.
		return 0, p0, p1
	}

	// The segments are collinear; test for overlap.
	s0 := (d0.X*e.X + d0.Y*e.Y) / sqrLen0
	s1 := s0 + (d0.X*d1.X+d0.Y*d1.Y)/sqrLen0
	smin := math.Min(s0, s1)
	smax := math.Max(s0, s1)

	lo := math.Max(0, smin)
	hi := math.Min(1, smax)
	if lo > hi {
		return 0, p0, p1
	}
	if lo == hi {
		return 1, seg0.at(lo), p1
	}
	return 2, seg0.at(lo), seg0.at(hi)
}
