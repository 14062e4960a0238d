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

package join

import (
	"reflect"
	"testing"

	"github.com/dhconnelly/rtreego"

	"github.com/spatialmodel/georel"
	"github.com/spatialmodel/georel/geom"
)

// Index items must satisfy the r-tree's value-typed item interface.
var _ rtreego.Spatial = &indexItem{}

func square(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}}
}

func testSets() (left, right []geom.Geom) {
	left = []geom.Geom{
		square(0, 0, 2, 2),
		geom.Point{X: 1, Y: 1},
		square(10, 10, 11, 11),
	}
	right = []geom.Geom{
		square(1, 1, 3, 3),
		geom.Point{X: 5, Y: 5},
		square(0.5, 0.5, 0.6, 0.6),
	}
	return left, right
}

func TestJoin(t *testing.T) {
	left, rightGeoms := testSets()
	right, err := NewIndex(rightGeoms)
	if err != nil {
		t.Fatal(err)
	}

	pairs, err := Join(left, right, georel.PredIntersects, georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{0, 0}, {0, 2}, {1, 0}}
	if !reflect.DeepEqual(want, pairs) {
		t.Errorf("intersects: want %v but have %v", want, pairs)
	}

	pairs, err = Join(left, right, georel.PredContains, georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	want = []Pair{{0, 2}}
	if !reflect.DeepEqual(want, pairs) {
		t.Errorf("contains: want %v but have %v", want, pairs)
	}
}

// A Disjoint join must consider pairs whose bounding boxes do not
// overlap, so it cannot use the index prefilter.
func TestJoinDisjoint(t *testing.T) {
	left, rightGeoms := testSets()
	right, err := NewIndex(rightGeoms)
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := Join(left, right, georel.PredDisjoint, georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{0, 1}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	if !reflect.DeepEqual(want, pairs) {
		t.Errorf("want %v but have %v", want, pairs)
	}
}

func TestJoinErrors(t *testing.T) {
	right, err := NewIndex([]geom.Geom{square(0, 0, 1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Join([]geom.Geom{nil}, right, georel.PredIntersects, georel.DefaultTolerance); err == nil {
		t.Error("a nil left geometry should give an error")
	}
	if _, err := NewIndex([]geom.Geom{nil}); err == nil {
		t.Error("a nil indexed geometry should give an error")
	}
	if _, err := NewIndex([]geom.Geom{geom.LineString{{X: 0, Y: 0}}}); err == nil {
		t.Error("a malformed indexed geometry should give an error")
	}
}

func TestIndexSearch(t *testing.T) {
	geoms := []geom.Geom{
		square(0, 0, 1, 1),
		square(10, 10, 11, 11),
		geom.Point{X: 0.5, Y: 0.5},
		geom.MultiPoint{}, // not indexed
	}
	ix, err := NewIndex(geoms)
	if err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 4 {
		t.Errorf("want length 4 but have %d", ix.Len())
	}
	hits := ix.Search(&geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 2, Y: 2}})
	want := []int{0, 2}
	if !reflect.DeepEqual(want, hits) {
		t.Errorf("want %v but have %v", want, hits)
	}
}

func TestFilter(t *testing.T) {
	f, err := NewFilter("within || touches", georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	inside := geom.Point{X: 1, Y: 1}
	onEdge := geom.Point{X: 0, Y: 1}
	outside := geom.Point{X: 5, Y: 5}
	sq := square(0, 0, 2, 2)
	for _, test := range []struct {
		p    geom.Point
		want bool
	}{
		{inside, true},
		{onEdge, true},
		{outside, false},
	} {
		have, err := f.Evaluate(test.p, sq)
		if err != nil {
			t.Fatal(err)
		}
		if have != test.want {
			t.Errorf("%v: want %v but have %v", test.p, test.want, have)
		}
	}

	if !f.prefilterSafe() {
		t.Error("a filter without Disjoint should allow the prefilter")
	}
	f, err = NewFilter("disjoint || equals", georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	if f.prefilterSafe() {
		t.Error("a filter mentioning Disjoint must disable the prefilter")
	}
	for _, expr := range []string{
		"!intersects",
		"intersects && !touches",
		"intersects == false",
		"true",
	} {
		f, err = NewFilter(expr, georel.DefaultTolerance)
		if err != nil {
			if expr == "true" {
				continue // no predicates; rejected at parse time
			}
			t.Fatal(err)
		}
		if f.prefilterSafe() {
			t.Errorf("%q: a non-monotone filter must disable the prefilter", expr)
		}
	}
}

// A filter that can hold for geometries far apart must consider pairs
// whose bounding boxes never overlap.
func TestJoinFilterNegation(t *testing.T) {
	left := []geom.Geom{geom.Point{X: 0, Y: 0}}
	right, err := NewIndex([]geom.Geom{geom.Point{X: 100, Y: 100}})
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFilter("!intersects", georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := JoinFilter(left, right, f)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{0, 0}}
	if !reflect.DeepEqual(want, pairs) {
		t.Errorf("want %v but have %v", want, pairs)
	}
}

// Geometries separated by less than the tolerance intersect, so the
// bounding-box prefilter must not drop them.
func TestJoinToleranceGap(t *testing.T) {
	left := []geom.Geom{square(0, 0, 1, 1)}
	right, err := NewIndex([]geom.Geom{square(1+5e-10, 0, 2, 1)})
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := Join(left, right, georel.PredIntersects, 1e-9)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{0, 0}}
	if !reflect.DeepEqual(want, pairs) {
		t.Errorf("want %v but have %v", want, pairs)
	}
}

func TestNewFilterErrors(t *testing.T) {
	for _, expr := range []string{
		"intersects &&",  // parse error
		"covers",         // not a predicate
		"1 == 1",         // no predicates
	} {
		if _, err := NewFilter(expr, georel.DefaultTolerance); err == nil {
			t.Errorf("%q: should give an error", expr)
		}
	}
}

func TestJoinFilter(t *testing.T) {
	left, rightGeoms := testSets()
	right, err := NewIndex(rightGeoms)
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewFilter("intersects && !contains", georel.DefaultTolerance)
	if err != nil {
		t.Fatal(err)
	}
	pairs, err := JoinFilter(left, right, f)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{0, 0}, {1, 0}}
	if !reflect.DeepEqual(want, pairs) {
		t.Errorf("want %v but have %v", want, pairs)
	}
}
