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

import "github.com/spatialmodel/georel/geom"

// features is the decomposition of a geometry into the primitive parts
// the kernel works with: isolated points, the linework of line
// components, the rings of area components, and the area components
// themselves. boundary holds the odd-valence endpoints of the line
// components (the SFS mod-2 rule), which form the boundary of the
// linear part of the geometry.
type features struct {
	points   []geom.Point
	lines    [][]geom.Point
	rings    [][]geom.Point
	polys    []geom.Polygon
	boundary []geom.Point
	bounds   *geom.Bounds
	dim      int
}

func newFeatures(g geom.Geom, tol float64) *features {
	f := &features{bounds: geom.NewBounds(), dim: -1}
	f.gather(g)
	f.findLineBoundary(tol)
	return f
}

func (f *features) gather(g geom.Geom) {
	switch g := g.(type) {
	case geom.Point:
		f.points = append(f.points, g)
		f.bounds.Extend(g.Bounds())
		f.upgradeDim(0)
	case geom.MultiPoint:
		for _, p := range g {
			f.gather(p)
		}
	case geom.LineString:
		if len(g) < 2 {
			return
		}
		f.lines = append(f.lines, g)
		f.bounds.Extend(g.Bounds())
		f.upgradeDim(1)
	case geom.MultiLineString:
		for _, l := range g {
			f.gather(l)
		}
	case geom.Polygon:
		nonEmpty := false
		for _, r := range g {
			if len(r) == 0 {
				continue
			}
			f.rings = append(f.rings, r)
			nonEmpty = true
		}
		if nonEmpty {
			f.polys = append(f.polys, g)
			f.bounds.Extend(g.Bounds())
			f.upgradeDim(2)
		}
	case geom.MultiPolygon:
		for _, p := range g {
			f.gather(p)
		}
	case geom.GeometryCollection:
		for _, gg := range g {
			f.gather(gg)
		}
	}
}

func (f *features) upgradeDim(d int) {
	if d > f.dim {
		f.dim = d
	}
}

// findLineBoundary collects the endpoints of the line components that
// occur an odd number of times. A closed LineString contributes its
// shared start/end point twice, so it has no boundary.
func (f *features) findLineBoundary(tol float64) {
	var endpoints []geom.Point
	for _, l := range f.lines {
		endpoints = append(endpoints, l[0], l[len(l)-1])
	}
	used := make([]bool, len(endpoints))
	for i, p := range endpoints {
		if used[i] {
			continue
		}
		n := 1
		for j := i + 1; j < len(endpoints); j++ {
			if !used[j] && pointsCoincide(p, endpoints[j], tol) {
				used[j] = true
				n++
			}
		}
		if n%2 == 1 {
			f.boundary = append(f.boundary, p)
		}
	}
}

// segments calls fn for each non-degenerate segment of the linework,
// with ring reporting whether the segment belongs to an area boundary.
func (f *features) segments(tol float64, fn func(s segment, ring bool)) {
	for _, l := range f.lines {
		eachSegment(l, tol, func(s segment) { fn(s, false) })
	}
	for _, r := range f.rings {
		eachSegment(r, tol, func(s segment) { fn(s, true) })
	}
}

func eachSegment(pts []geom.Point, tol float64, fn func(segment)) {
	for i := 1; i < len(pts); i++ {
		s := segment{start: pts[i-1], end: pts[i]}
		if s.length() < tol {
			continue
		}
		fn(s)
	}
}

// boundaryDim is the dimension of the geometry's boundary: the rings of
// its area components, or failing that the endpoints of its line
// components.
func (f *features) boundaryDim() Dim {
	if len(f.rings) > 0 {
		return DimLine
	}
	if len(f.boundary) > 0 {
		return DimPoint
	}
	return DimEmpty
}

// interiorDim is the dimension of the geometry's interior.
func (f *features) interiorDim() Dim {
	return Dim(f.dim)
}
