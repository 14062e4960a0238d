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

import (
	"math"
	"reflect"
	"testing"
)

func TestDimension(t *testing.T) {
	square := Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}
	tests := []struct {
		g    Geom
		want int
	}{
		{Point{1, 2}, 0},
		{MultiPoint{{1, 2}, {3, 4}}, 0},
		{LineString{{0, 0}, {1, 1}}, 1},
		{MultiLineString{{{0, 0}, {1, 1}}}, 1},
		{square, 2},
		{MultiPolygon{square}, 2},
		{GeometryCollection{Point{0, 0}, square}, 2},
		{GeometryCollection{Point{0, 0}, LineString{{0, 0}, {1, 1}}}, 1},
		{GeometryCollection{}, -1},
		{MultiPoint{}, -1},
	}
	for i, test := range tests {
		if d := Dimension(test.g); d != test.want {
			t.Errorf("%d: want dimension %d but have %d", i, test.want, d)
		}
	}
}

func TestEmpty(t *testing.T) {
	if Empty(Point{0, 0}) {
		t.Error("a point is never empty")
	}
	for _, g := range []Geom{
		MultiPoint{},
		LineString{},
		MultiLineString{},
		Polygon{},
		MultiPolygon{},
		GeometryCollection{},
		GeometryCollection{MultiPoint{}},
	} {
		if !Empty(g) {
			t.Errorf("%#v should be empty", g)
		}
	}
	if Empty(GeometryCollection{MultiPoint{}, Point{1, 1}}) {
		t.Error("a collection with a point member is not empty")
	}
}

func TestBounds(t *testing.T) {
	l := LineString{{-1, 2}, {3, -4}, {0, 0}}
	want := &Bounds{Min: Point{-1, -4}, Max: Point{3, 2}}
	if have := l.Bounds(); !reflect.DeepEqual(want, have) {
		t.Errorf("want %+v but have %+v", want, have)
	}

	b := NewBounds()
	if !b.Empty() {
		t.Error("new bounds should be empty")
	}
	b.Extend(l.Bounds())
	b.Extend(Point{10, 10}.Bounds())
	want = &Bounds{Min: Point{-1, -4}, Max: Point{10, 10}}
	if !reflect.DeepEqual(want, b) {
		t.Errorf("want %+v but have %+v", want, b)
	}
}

func TestBoundsOverlaps(t *testing.T) {
	a := &Bounds{Min: Point{0, 0}, Max: Point{1, 1}}
	b := &Bounds{Min: Point{1, 1}, Max: Point{2, 2}} // corner contact
	c := &Bounds{Min: Point{1.5, 1.5}, Max: Point{3, 3}}
	if !a.Overlaps(b) {
		t.Error("touching bounds overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c should not overlap")
	}
	if !a.Buffer(0.75).Overlaps(c) {
		t.Error("buffered a should overlap c")
	}
}

func TestValidate(t *testing.T) {
	valid := []Geom{
		Point{1, 2},
		LineString{{0, 0}, {1, 1}},
		Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		MultiPoint{},
		GeometryCollection{Point{0, 0}, MultiPoint{}},
	}
	for _, g := range valid {
		if err := Validate(g); err != nil {
			t.Errorf("%#v: unexpected error %v", g, err)
		}
	}

	malformed := []Geom{
		Point{math.NaN(), 0},
		Point{0, math.Inf(1)},
		LineString{{0, 0}},
		Polygon{{{0, 0}, {1, 0}, {0, 0}}},           // too few points
		Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}},   // unclosed
		GeometryCollection{LineString{{0, 0}}},      // invalid member
	}
	for _, g := range malformed {
		err := Validate(g)
		if _, ok := err.(MalformedGeometryError); !ok {
			t.Errorf("%#v: want MalformedGeometryError but have %v", g, err)
		}
	}

	if _, ok := Validate(nil).(NullGeometryError); !ok {
		t.Error("nil geometry should give NullGeometryError")
	}
}

func TestNewLineString(t *testing.T) {
	if _, err := NewLineString([]Point{{0, 0}}); err == nil {
		t.Error("a one-point line should be rejected")
	}
	l, err := NewLineString([]Point{{0, 0}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if l.Length() != 5 {
		t.Errorf("want length 5 but have %g", l.Length())
	}
	if l.Closed() {
		t.Error("line should not be closed")
	}
}

func TestPolygonArea(t *testing.T) {
	square := Polygon{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}}
	if a := square.Area(); a != 4 {
		t.Errorf("want area 4 but have %g", a)
	}
	// A hole wound opposite to the shell subtracts from it.
	holed := Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {1, 1}},
	}
	if a := holed.Area(); a != 15 {
		t.Errorf("want area 15 but have %g", a)
	}
}
