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
	"testing"

	"github.com/spatialmodel/georel/geom"
)

// square returns a counterclockwise closed square ring polygon.
func square(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}}
}

// reverse returns pg with every ring in the opposite direction.
func reverse(pg geom.Polygon) geom.Polygon {
	out := make(geom.Polygon, len(pg))
	for i, r := range pg {
		rr := make([]geom.Point, len(r))
		for j, p := range r {
			rr[len(r)-1-j] = p
		}
		out[i] = rr
	}
	return out
}

func TestRelate(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Geom
		want string
	}{
		{
			name: "disjoint squares",
			a:    square(0, 0, 1, 1),
			b:    square(5, 5, 6, 6),
			want: "FF2FF1212",
		},
		{
			name: "overlapping squares",
			a:    square(0, 0, 2, 2),
			b:    square(1, 1, 3, 3),
			want: "212101212",
		},
		{
			name: "square contains point",
			a:    square(0, 0, 2, 2),
			b:    geom.Point{X: 1, Y: 1},
			want: "0F2FF1FF2",
		},
		{
			name: "point within square",
			a:    geom.Point{X: 1, Y: 1},
			b:    square(0, 0, 2, 2),
			want: "0FFFFF212",
		},
		{
			name: "point on square edge",
			a:    geom.Point{X: 1, Y: 0},
			b:    square(0, 0, 2, 2),
			want: "F0FFFF212",
		},
		{
			name: "crossing lines",
			a:    geom.LineString{{X: 0, Y: 0}, {X: 2, Y: 2}},
			b:    geom.LineString{{X: 0, Y: 2}, {X: 2, Y: 0}},
			want: "0F1FF0102",
		},
		{
			name: "squares sharing an edge",
			a:    square(0, 0, 2, 2),
			b:    square(2, 0, 4, 2),
			want: "FF2F11212",
		},
		{
			name: "equal squares with reversed winding",
			a:    square(0, 0, 2, 2),
			b:    reverse(square(0, 0, 2, 2)),
			want: "2FFF1FFF2",
		},
		{
			name: "collinear overlapping lines",
			a:    geom.LineString{{X: 0, Y: 0}, {X: 2, Y: 0}},
			b:    geom.LineString{{X: 1, Y: 0}, {X: 3, Y: 0}},
			want: "1010F0102",
		},
		{
			name: "line endpoint touching line interior",
			a:    geom.LineString{{X: 0, Y: 0}, {X: 2, Y: 0}},
			b:    geom.LineString{{X: 1, Y: 0}, {X: 1, Y: 1}},
			want: "F01FF0102",
		},
		{
			name: "line within square",
			a:    geom.LineString{{X: 0.5, Y: 1}, {X: 1.5, Y: 1}},
			b:    square(0, 0, 2, 2),
			want: "1FF0FF212",
		},
		{
			name: "square within square",
			a:    square(1, 1, 2, 2),
			b:    square(0, 0, 3, 3),
			want: "2FF1FF212",
		},
		{
			name: "identical points",
			a:    geom.Point{X: 1, Y: 2},
			b:    geom.Point{X: 1, Y: 2},
			want: "0FFFFFFF2",
		},
		{
			name: "distinct points",
			a:    geom.Point{X: 1, Y: 2},
			b:    geom.Point{X: 3, Y: 4},
			want: "FF0FFF0F2",
		},
		{
			name: "multipoint straddling square",
			a:    geom.MultiPoint{{X: 1, Y: 1}, {X: 5, Y: 5}},
			b:    square(0, 0, 2, 2),
			want: "0F0FFF212",
		},
	}
	for _, test := range tests {
		m, err := Relate(test.a, test.b, testTol)
		if err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
			continue
		}
		if s := m.String(); s != test.want {
			t.Errorf("%s: want %s but have %s", test.name, test.want, s)
		}
	}
}

// A matrix for the pair (b, a) must be the transpose of the matrix for
// (a, b).
func TestRelateSymmetry(t *testing.T) {
	geoms := []geom.Geom{
		geom.Point{X: 1, Y: 1},
		geom.LineString{{X: 0, Y: 0}, {X: 2, Y: 2}},
		geom.LineString{{X: 0, Y: 2}, {X: 2, Y: 0}},
		square(0, 0, 2, 2),
		square(1, 1, 3, 3),
		square(5, 5, 6, 6),
	}
	for i, a := range geoms {
		for j, b := range geoms {
			mab, err := Relate(a, b, testTol)
			if err != nil {
				t.Fatal(err)
			}
			mba, err := Relate(b, a, testTol)
			if err != nil {
				t.Fatal(err)
			}
			if mab.Transpose() != mba {
				t.Errorf("%d,%d: %s is not the transpose of %s", i, j, mba.String(), mab.String())
			}
		}
	}
}

func TestRelateTolerance(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 0, Y: 5e-10}
	m, err := Relate(a, b, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	if s := m.String(); s != "0FFFFFFF2" {
		t.Errorf("within tolerance: want 0FFFFFFF2 but have %s", s)
	}
	m, err = Relate(a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s := m.String(); s != "FF0FFF0F2" {
		t.Errorf("exact: want FF0FFF0F2 but have %s", s)
	}
}

func TestRelateErrors(t *testing.T) {
	sq := square(0, 0, 1, 1)
	if _, err := Relate(nil, sq, testTol); err != (geom.NullGeometryError{}) {
		t.Errorf("nil operand: want NullGeometryError but have %v", err)
	}
	if _, err := Relate(sq, geom.MultiPoint{}, testTol); err == nil {
		t.Error("empty operand should give an error")
	} else if _, ok := err.(geom.UnsupportedGeometryError); !ok {
		t.Errorf("empty operand: want UnsupportedGeometryError but have %v", err)
	}
	bad := geom.LineString{{X: 0, Y: 0}}
	if _, err := Relate(bad, sq, testTol); err == nil {
		t.Error("malformed operand should give an error")
	} else if _, ok := err.(geom.MalformedGeometryError); !ok {
		t.Errorf("malformed operand: want MalformedGeometryError but have %v", err)
	}
}

func TestLocate(t *testing.T) {
	f := newFeatures(geom.GeometryCollection{
		square(0, 0, 2, 2),
		geom.LineString{{X: 3, Y: 0}, {X: 4, Y: 0}},
		geom.Point{X: 5, Y: 5},
	}, testTol)

	tests := []struct {
		p    geom.Point
		want Position
	}{
		{geom.Point{X: 1, Y: 1}, Interior},   // inside the square
		{geom.Point{X: 2, Y: 1}, Boundary},   // on the square edge
		{geom.Point{X: 0, Y: 0}, Boundary},   // square corner
		{geom.Point{X: 3.5, Y: 0}, Interior}, // mid-line
		{geom.Point{X: 3, Y: 0}, Boundary},   // line endpoint
		{geom.Point{X: 5, Y: 5}, Interior},   // isolated point
		{geom.Point{X: 10, Y: 10}, Exterior},
		{geom.Point{X: 2.5, Y: 0}, Exterior}, // between components
	}
	for _, test := range tests {
		if have := f.locate(test.p, testTol); have != test.want {
			t.Errorf("%v: want %v but have %v", test.p, test.want, have)
		}
	}
}

func TestFindLineBoundary(t *testing.T) {
	// Two lines sharing an endpoint: the shared point has even valence
	// and is not part of the boundary.
	f := newFeatures(geom.MultiLineString{
		{{X: 0, Y: 0}, {X: 1, Y: 0}},
		{{X: 1, Y: 0}, {X: 2, Y: 1}},
	}, testTol)
	want := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}}
	if len(f.boundary) != len(want) {
		t.Fatalf("want boundary %v but have %v", want, f.boundary)
	}
	for i, p := range want {
		if !pointsCoincide(f.boundary[i], p, testTol) {
			t.Errorf("boundary[%d]: want %v but have %v", i, p, f.boundary[i])
		}
	}

	// A closed line has no boundary.
	f = newFeatures(geom.LineString{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0},
	}, testTol)
	if len(f.boundary) != 0 {
		t.Errorf("closed line should have no boundary but has %v", f.boundary)
	}
}
