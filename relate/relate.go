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

// Package relate computes dimensionally extended nine-intersection
// (DE-9IM) matrices for pairs of geometries. The matrix records the
// dimension of intersection between the interiors, boundaries, and
// exteriors of the two inputs, and is the shared basis for all of the
// topological predicates in the parent package.
package relate

import (
	"math"
	"sort"

	polyclip "github.com/ctessum/polyclip-go"

	"github.com/spatialmodel/georel/geom"
)

// Relate computes the DE-9IM intersection matrix for the geometry pair
// (a, b). tol is the distance within which points are considered
// coincident; coincident points are treated as intersecting, never
// disjoint. Inputs must be structurally valid; a nil operand returns a
// NullGeometryError and an empty geometry an UnsupportedGeometryError.
//
// Relate is a pure function over its inputs and may be called from any
// number of goroutines concurrently.
func Relate(a, b geom.Geom, tol float64) (Matrix, error) {
	for _, g := range []geom.Geom{a, b} {
		if g == nil {
			return Matrix{}, geom.NullGeometryError{}
		}
		if err := geom.Validate(g); err != nil {
			return Matrix{}, err
		}
		if geom.Empty(g) {
			return Matrix{}, geom.UnsupportedGeometryError{G: g}
		}
	}
	if tol < 0 {
		tol = 0
	}

	fa := newFeatures(a, tol)
	fb := newFeatures(b, tol)

	// If the bounding boxes are farther apart than the tolerance no
	// feature pair can intersect, and the matrix only depends on the
	// dimensions of the two inputs.
	if !fa.bounds.Buffer(tol).Overlaps(fb.bounds) {
		return disjointMatrix(fa, fb), nil
	}

	m := NewMatrix()
	m[Exterior][Exterior] = DimArea
	relatePoints(&m, fa, fb, tol)
	relateLinework(&m, fa, fb, tol)
	relateAreas(&m, fa, fb, tol)
	return m, nil
}

// disjointMatrix is the matrix for two geometries that cannot touch.
func disjointMatrix(fa, fb *features) Matrix {
	m := NewMatrix()
	m[Interior][Exterior] = fa.interiorDim()
	m[Boundary][Exterior] = fa.boundaryDim()
	m[Exterior][Interior] = fb.interiorDim()
	m[Exterior][Boundary] = fb.boundaryDim()
	m[Exterior][Exterior] = DimArea
	return m
}

// relatePoints records the positions of the zero-dimensional features
// of each geometry: isolated points (interiors) and the odd-valence
// line endpoints (boundaries).
func relatePoints(m *Matrix, fa, fb *features, tol float64) {
	for _, p := range fa.points {
		m.upgrade(Interior, fb.locate(p, tol), DimPoint)
	}
	for _, p := range fa.boundary {
		m.upgrade(Boundary, fb.locate(p, tol), DimPoint)
	}
	for _, p := range fb.points {
		m.upgrade(fa.locate(p, tol), Interior, DimPoint)
	}
	for _, p := range fb.boundary {
		m.upgrade(fa.locate(p, tol), Boundary, DimPoint)
	}
}

// relateLinework splits the linework of each geometry at its
// intersections with the other geometry, classifies a representative
// midpoint of each resulting piece against the other geometry, and
// classifies every intersection point against both geometries.
func relateLinework(m *Matrix, fa, fb *features, tol float64) {
	var crossings []geom.Point

	fa.segments(tol, func(sa segment, ring bool) {
		row := Interior
		if ring {
			row = Boundary
		}
		cuts, pts := cutSegment(sa, fb, tol)
		crossings = append(crossings, pts...)
		classifyPieces(m, sa, row, true, cuts, fb, tol)
	})
	fb.segments(tol, func(sb segment, ring bool) {
		col := Interior
		if ring {
			col = Boundary
		}
		cuts, _ := cutSegment(sb, fa, tol) // crossing points already collected
		classifyPieces(m, sb, col, false, cuts, fa, tol)
	})

	for _, p := range crossings {
		m.upgrade(fa.locate(p, tol), fb.locate(p, tol), DimPoint)
	}
}

// cutSegment finds the parameters along s where it intersects the
// features of other, along with the isolated intersection points.
func cutSegment(s segment, other *features, tol float64) (cuts []float64, pts []geom.Point) {
	sb := s.bounds().Buffer(tol)
	other.segments(tol, func(so segment, _ bool) {
		if !sb.Overlaps(so.bounds()) {
			return
		}
		n, p0, p1 := segIntersect(s, so, tol)
		if n >= 1 {
			cuts = append(cuts, s.param(p0))
			pts = append(pts, p0)
		}
		if n == 2 {
			cuts = append(cuts, s.param(p1))
			pts = append(pts, p1)
		}
	})
	// Isolated points of the other geometry also cut the segment, so
	// that a piece midpoint can never coincide with one of them.
	for _, p := range other.points {
		if pointOnSegment(p, s.start, s.end, tol) {
			cuts = append(cuts, s.param(p))
		}
	}
	return cuts, pts
}

// classifyPieces divides s at the sorted cut parameters and records the
// dimension-1 contribution of each piece according to the position of
// its midpoint relative to other. rowIsSelf selects whether the feature
// belongs to the first geometry (contributing at [pos][loc]) or the
// second (contributing at [loc][pos]).
func classifyPieces(m *Matrix, s segment, pos Position, rowIsSelf bool, cuts []float64, other *features, tol float64) {
	length := s.length()
	tolParam := 1.
	if length > tol {
		tolParam = tol / length
	}

	params := make([]float64, 0, len(cuts)+2)
	params = append(params, 0)
	for _, t := range cuts {
		if t > 0 && t < 1 {
			params = append(params, t)
		}
	}
	params = append(params, 1)
	sort.Float64s(params)

	prev := params[0]
	for _, t := range params[1:] {
		if t-prev < tolParam {
			continue // A piece shorter than the tolerance.
		}
		mid := s.at((prev + t) / 2)
		loc := other.locate(mid, tol)
		if rowIsSelf {
			m.upgrade(pos, loc, DimLine)
		} else {
			m.upgrade(loc, pos, DimLine)
		}
		prev = t
	}
}

// relateAreas records the area-dimension entries using polygon
// clipping. The lower-dimension entries for area boundaries are
// produced by relateLinework from the polygon rings.
func relateAreas(m *Matrix, fa, fb *features, tol float64) {
	// Clipping results below the tolerance are slivers, not areas.
	minArea := math.Max(tol, 1e-300)

	switch {
	case len(fa.polys) > 0 && len(fb.polys) > 0:
		if clipArea(fa.polys, fb.polys, polyclip.INTERSECTION) > minArea {
			m.upgrade(Interior, Interior, DimArea)
		}
		if clipArea(fa.polys, fb.polys, polyclip.DIFFERENCE) > minArea {
			m.upgrade(Interior, Exterior, DimArea)
		}
		if clipArea(fb.polys, fa.polys, polyclip.DIFFERENCE) > minArea {
			m.upgrade(Exterior, Interior, DimArea)
		}
	case len(fa.polys) > 0:
		// A two-dimensional interior always extends beyond a lower-
		// dimensional geometry.
		m.upgrade(Interior, Exterior, DimArea)
	case len(fb.polys) > 0:
		m.upgrade(Exterior, Interior, DimArea)
	}
}
