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

	"github.com/spatialmodel/georel/geom"
)

// locate determines which part of the geometry described by f the point
// p falls in. Interior beats boundary when p lies in the interior of
// any component, matching the union semantics of multi-geometries.
func (f *features) locate(p geom.Point, tol float64) Position {
	best := Exterior

	// Area components. A point on a ring is on the boundary; a point
	// inside an odd number of polygons is in the interior.
	if len(f.polys) > 0 {
		switch pointInPolygons(p, f.polys, tol) {
		case inside:
			return Interior
		case onEdge:
			best = Boundary
		}
	}

	// Line components. Odd-valence endpoints are boundary points; any
	// other point on the linework is interior.
	if len(f.lines) > 0 && f.onLinework(p, tol) {
		if f.onLineBoundary(p, tol) {
			if best == Exterior {
				best = Boundary
			}
		} else {
			return Interior
		}
	}

	// Point components.
	for _, fp := range f.points {
		if pointsCoincide(p, fp, tol) {
			return Interior
		}
	}

	return best
}

func (f *features) onLinework(p geom.Point, tol float64) bool {
	for _, l := range f.lines {
		for i := 1; i < len(l); i++ {
			if pointOnSegment(p, l[i-1], l[i], tol) {
				return true
			}
		}
	}
	return false
}

func (f *features) onLineBoundary(p geom.Point, tol float64) bool {
	for _, bp := range f.boundary {
		if pointsCoincide(p, bp, tol) {
			return true
		}
	}
	return false
}

// withinStatus gives the status of a point relative to a polygon:
// whether it is inside, outside, or on the edge.
type withinStatus int

const (
	outside withinStatus = iota
	inside
	onEdge
)

func (w withinStatus) invert() withinStatus {
	if w == outside {
		return inside
	}
	return outside
}

// pointInPolygons determines whether pt is within any of the polygons
// in polys. Points that lie on an edge are reported as onEdge. Adapted
// from https://rosettacode.org/wiki/Ray-casting_algorithm#Go.
func pointInPolygons(pt geom.Point, polys []geom.Polygon, tol float64) withinStatus {
	in := outside
	for _, poly := range polys {
		switch pointInPolygon(pt, poly, tol) {
		case onEdge:
			return onEdge
		case inside:
			in = in.invert()
		}
	}
	return in
}

// pointInPolygon determines whether pt is within pg, with points on the
// edge of the polygon reported separately.
func pointInPolygon(pt geom.Point, pg geom.Polygon, tol float64) withinStatus {
	in := outside
	ptBounds := geom.NewBoundsPoint(pt).Buffer(tol)
	for _, ring := range pg {
		if len(ring) < 3 {
			continue
		}
		rb := geom.NewBounds()
		for _, p := range ring {
			rb.Extend(geom.NewBoundsPoint(p))
		}
		if !rb.Overlaps(ptBounds) {
			continue
		}
		// The ring is stored closed, but guard against an open one.
		if !ring[len(ring)-1].Equals(ring[0]) {
			if pointOnSegment(pt, ring[len(ring)-1], ring[0], tol) {
				return onEdge
			}
			if rayIntersectsSegment(pt, ring[len(ring)-1], ring[0]) {
				in = in.invert()
			}
		}
		for i := 1; i < len(ring); i++ {
			if pointOnSegment(pt, ring[i-1], ring[i], tol) {
				return onEdge
			}
			if rayIntersectsSegment(pt, ring[i-1], ring[i]) {
				in = in.invert()
			}
		}
	}
	return in
}

// rayIntersectsSegment reports whether a ray cast from p in the +X
// direction crosses the segment from a to b. The point is nudged off
// vertex Y values so that vertices are not counted twice.
func rayIntersectsSegment(p, a, b geom.Point) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = math.Nextafter(p.Y, math.Inf(1))
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	if a.X > b.X {
		if p.X >= a.X {
			return false
		}
		if p.X < b.X {
			return true
		}
	} else {
		if p.X > b.X {
			return false
		}
		if p.X < a.X {
			return true
		}
	}
	return (p.Y-a.Y)/(p.X-a.X) >= (b.Y-a.Y)/(b.X-a.X)
}
