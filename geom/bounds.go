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

// Bounds holds the axis-aligned spatial extent of a geometry.
type Bounds struct {
	Min, Max Point
}

// NewBounds initializes a new, empty bounds object.
func NewBounds() *Bounds {
	return &Bounds{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// NewBoundsPoint creates a bounds object from a single point.
func NewBoundsPoint(p Point) *Bounds {
	return &Bounds{Min: p, Max: p}
}

// Empty returns true if b does not contain any points.
func (b *Bounds) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Copy returns a copy of b.
func (b *Bounds) Copy() *Bounds {
	return &Bounds{Min: b.Min, Max: b.Max}
}

// Extend increases the extent of b to include b2.
func (b *Bounds) Extend(b2 *Bounds) {
	if b2 == nil {
		return
	}
	b.extendPoint(b2.Min)
	b.extendPoint(b2.Max)
}

func (b *Bounds) extendPoint(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

func (b *Bounds) extendPoints(points []Point) {
	for _, p := range points {
		b.extendPoint(p)
	}
}

// Overlaps returns whether b and b2 share any area, edge, or corner.
func (b *Bounds) Overlaps(b2 *Bounds) bool {
	return b.Min.X <= b2.Max.X && b.Min.Y <= b2.Max.Y &&
		b.Max.X >= b2.Min.X && b.Max.Y >= b2.Min.Y
}

// Buffer returns a copy of b expanded by distance d on all sides.
func (b *Bounds) Buffer(d float64) *Bounds {
	return &Bounds{
		Min: Point{X: b.Min.X - d, Y: b.Min.Y - d},
		Max: Point{X: b.Max.X + d, Y: b.Max.Y + d},
	}
}

// Bounds returns b.
func (b *Bounds) Bounds() *Bounds {
	return b
}
