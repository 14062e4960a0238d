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

import "math"

// A Polygon is a series of closed rings. The first ring is the outer
// boundary and any further rings should be holes nested inside of it.
// Each ring must be explicitly closed (the first and last points equal)
// and have at least four points.
type Polygon [][]Point

// NewPolygon creates a Polygon from rings, returning a
// MalformedGeometryError if any ring is degenerate or not closed.
func NewPolygon(rings [][]Point) (Polygon, error) {
	p := Polygon(rings)
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Bounds gives the rectangular extents of the polygon.
func (p Polygon) Bounds() *Bounds {
	b := NewBounds()
	for _, r := range p {
		b.extendPoints(r)
	}
	return b
}

// Polygons returns []{p} to allow uniform handling with MultiPolygon.
func (p Polygon) Polygons() []Polygon {
	return []Polygon{p}
}

// Area returns the area of p. It assumes that holes are wound in the
// opposite direction from the outer ring, and will give the wrong
// result for self-intersecting polygons.
func (p Polygon) Area() float64 {
	a := 0.
	for _, r := range p {
		a += ringArea(r)
	}
	return math.Abs(a)
}

// ringArea returns the signed area of ring r, adapted from
// http://www.mathopenref.com/coordpolygonarea2.html.
func ringArea(r []Point) float64 {
	if len(r) < 3 {
		return 0
	}
	highI := len(r) - 1
	a := (r[highI].X + r[0].X) * (r[0].Y - r[highI].Y)
	for i := 0; i < highI; i++ {
		a += (r[i].X + r[i+1].X) * (r[i+1].Y - r[i].Y)
	}
	return a / 2.
}

func (p Polygon) ringBounds() []*Bounds {
	bounds := make([]*Bounds, len(p))
	for i, r := range p {
		b := NewBounds()
		b.extendPoints(r)
		bounds[i] = b
	}
	return bounds
}

// MultiPolygon is a holder for multiple related polygons.
type MultiPolygon []Polygon

// Bounds gives the rectangular extents of the MultiPolygon.
func (mp MultiPolygon) Bounds() *Bounds {
	b := NewBounds()
	for _, p := range mp {
		b.Extend(p.Bounds())
	}
	return b
}

// Polygons returns the polygons that make up mp.
func (mp MultiPolygon) Polygons() []Polygon {
	return mp
}

// Area returns the combined area of the polygons in mp, assuming that
// they do not overlap each other.
func (mp MultiPolygon) Area() float64 {
	a := 0.
	for _, p := range mp {
		a += p.Area()
	}
	return a
}
