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

import "fmt"

// MalformedGeometryError is returned when a coordinate sequence does not
// form a structurally valid geometry, for example a polygon ring with
// fewer than four points or a ring that is not closed.
type MalformedGeometryError struct {
	Reason string
}

func (e MalformedGeometryError) Error() string {
	return "geom: malformed geometry: " + e.Reason
}

// UnsupportedGeometryError is returned when an operation is given a
// geometry variant it cannot evaluate, such as an empty geometry.
type UnsupportedGeometryError struct {
	G Geom
}

func (e UnsupportedGeometryError) Error() string {
	if e.G == nil || Empty(e.G) {
		return fmt.Sprintf("geom: unsupported geometry: empty %T", e.G)
	}
	return fmt.Sprintf("geom: unsupported geometry type %T", e.G)
}

// NullGeometryError is returned when a geometry operand is missing.
type NullGeometryError struct{}

func (e NullGeometryError) Error() string {
	return "geom: null geometry operand"
}
