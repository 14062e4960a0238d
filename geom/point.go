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

// Point is a holder for 2D coordinates X and Y.
type Point struct {
	X, Y float64
}

// Bounds gives the rectangular extents of the Point.
func (p Point) Bounds() *Bounds {
	return NewBoundsPoint(p)
}

// Equals returns whether p is exactly equal to p2.
func (p Point) Equals(p2 Point) bool {
	return p.X == p2.X && p.Y == p2.Y
}

// MultiPoint is a holder for multiple related points.
type MultiPoint []Point

// Bounds gives the rectangular extents of the MultiPoint.
func (mp MultiPoint) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints(mp)
	return b
}

// Points returns the points that make up mp.
func (mp MultiPoint) Points() []Point {
	return mp
}
