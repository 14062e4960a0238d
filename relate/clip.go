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

	polyclip "github.com/ctessum/polyclip-go"

	"github.com/spatialmodel/georel/geom"
)

func toPolyClip(polys []geom.Polygon) polyclip.Polygon {
	var o polyclip.Polygon
	for _, p := range polys {
		for _, r := range p {
			c := make(polyclip.Contour, len(r))
			for i, pt := range r {
				c[i] = polyclip.Point(pt)
			}
			o = append(o, c)
		}
	}
	return o
}

// clipArea returns the total area of the boolean operation op applied
// to the area components of two geometries. Degenerate zero-width
// output contours contribute nothing.
func clipArea(a, b []geom.Polygon, op polyclip.Op) float64 {
	result := toPolyClip(a).Construct(op, toPolyClip(b))
	area := 0.
	for _, c := range result {
		area += math.Abs(contourArea(c))
	}
	return area
}

// contourArea is the signed area of c, adapted from
// http://www.mathopenref.com/coordpolygonarea2.html.
func contourArea(c polyclip.Contour) float64 {
	if len(c) < 3 {
		return 0
	}
	highI := len(c) - 1
	a := (c[highI].X + c[0].X) * (c[0].Y - c[highI].Y)
	for i := 0; i < highI; i++ {
		a += (c[i].X + c[i+1].X) * (c[i+1].Y - c[i].Y)
	}
	return a / 2.
}
