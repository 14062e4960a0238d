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

// LineString is a number of points that make up a path or line.
type LineString []Point

// NewLineString creates a LineString from points, returning a
// MalformedGeometryError for a single-point input. A LineString with no
// points is structurally valid but empty.
func NewLineString(points []Point) (LineString, error) {
	l := LineString(points)
	if err := Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Bounds gives the rectangular extents of the LineString.
func (l LineString) Bounds() *Bounds {
	b := NewBounds()
	b.extendPoints(l)
	return b
}

// Length calculates the length of l.
func (l LineString) Length() float64 {
	length := 0.
	for i := 0; i < len(l)-1; i++ {
		length += math.Hypot(l[i+1].X-l[i].X, l[i+1].Y-l[i].Y)
	}
	return length
}

// Closed returns whether the first and last points of l coincide.
func (l LineString) Closed() bool {
	return len(l) > 2 && l[0].Equals(l[len(l)-1])
}

// MultiLineString is a holder for multiple related LineStrings.
type MultiLineString []LineString

// Bounds gives the rectangular extents of the MultiLineString.
func (ml MultiLineString) Bounds() *Bounds {
	b := NewBounds()
	for _, l := range ml {
		b.Extend(l.Bounds())
	}
	return b
}

// Length calculates the combined length of the linestrings in ml.
func (ml MultiLineString) Length() float64 {
	length := 0.
	for _, l := range ml {
		length += l.Length()
	}
	return length
}
