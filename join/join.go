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

// Package join evaluates spatial predicates in bulk between two sets
// of geometries, using an r-tree index over bounding boxes to avoid
// evaluating the kernel for pairs that cannot intersect.
package join

import (
	"runtime"
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/spatialmodel/georel"
	"github.com/spatialmodel/georel/geom"
)

// minRectSize is the substitute side length for degenerate bounding
// boxes (points and axis-aligned segments), which the r-tree cannot
// store with zero extent.
const minRectSize = 1.e-9

// A Pair identifies a matching geometry pair by position in the left
// and right input slices.
type Pair struct {
	Left, Right int
}

// Index is a spatial index over a set of geometries.
type Index struct {
	tree  *rtreego.Rtree
	geoms []geom.Geom
}

type indexItem struct {
	rect rtreego.Rect
	i    int
}

func (it *indexItem) Bounds() rtreego.Rect {
	return it.rect
}

// NewIndex builds a bounding-box index over geoms. The geometries must
// be structurally valid and non-nil.
func NewIndex(geoms []geom.Geom) (*Index, error) {
	tree := rtreego.NewTree(2, 25, 50)
	for _, g := range geoms {
		if g == nil {
			return nil, geom.NullGeometryError{}
		}
		if err := geom.Validate(g); err != nil {
			return nil, err
		}
	}
	ix := &Index{tree: tree, geoms: geoms}
	for i, g := range geoms {
		if geom.Empty(g) {
			continue // Nothing to index; no pair can match.
		}
		r, err := boundsRect(g.Bounds())
		if err != nil {
			return nil, err
		}
		tree.Insert(&indexItem{rect: r, i: i})
	}
	return ix, nil
}

// Len returns the number of geometries behind the index.
func (ix *Index) Len() int {
	return len(ix.geoms)
}

// Geom returns the i'th indexed geometry.
func (ix *Index) Geom(i int) geom.Geom {
	return ix.geoms[i]
}

// Search returns the indices of the geometries whose bounding boxes
// overlap b, in ascending order.
func (ix *Index) Search(b *geom.Bounds) []int {
	r, err := boundsRect(b)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(r)
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.(*indexItem).i
	}
	sort.Ints(out)
	return out
}

func boundsRect(b *geom.Bounds) (rtreego.Rect, error) {
	lengths := []float64{b.Max.X - b.Min.X, b.Max.Y - b.Min.Y}
	for i := range lengths {
		if lengths[i] < minRectSize {
			lengths[i] = minRectSize
		}
	}
	return rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y}, lengths)
}

// Join returns the pairs (i, j) for which pred holds between left[i]
// and right.Geom(j), evaluated with tolerance tol. For every predicate
// except Disjoint, pairs whose bounding boxes do not overlap are
// skipped without evaluating the kernel; Disjoint joins must consider
// every pair.
func Join(left []geom.Geom, right *Index, pred georel.Predicate, tol float64) ([]Pair, error) {
	eval := georel.Evaluator{Tolerance: tol}
	return parallelJoin(left, right, pred != georel.PredDisjoint, tol,
		func(a, b geom.Geom) (bool, error) {
			return eval.Evaluate(pred, a, b)
		})
}

// parallelJoin fans the left geometries out over the available
// processors, each worker taking a strided share. Prefilter queries are
// buffered by tol so that pairs intersecting only within the tolerance
// are not skipped.
func parallelJoin(left []geom.Geom, right *Index, prefilter bool, tol float64, test func(a, b geom.Geom) (bool, error)) ([]Pair, error) {
	var (
		mx       sync.Mutex
		pairs    []Pair
		firstErr error
	)
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(procNum int) {
			defer wg.Done()
			var local []Pair
			for i := procNum; i < len(left); i += nprocs {
				g := left[i]
				if g == nil {
					mx.Lock()
					if firstErr == nil {
						firstErr = geom.NullGeometryError{}
					}
					mx.Unlock()
					return
				}
				if geom.Empty(g) {
					continue // Matches the index skipping empty geometries.
				}
				var candidates []int
				if prefilter {
					candidates = right.Search(g.Bounds().Buffer(tol))
				} else {
					candidates = make([]int, right.Len())
					for j := range candidates {
						candidates[j] = j
					}
				}
				for _, j := range candidates {
					ok, err := test(g, right.Geom(j))
					if err != nil {
						mx.Lock()
						if firstErr == nil {
							firstErr = err
						}
						mx.Unlock()
						return
					}
					if ok {
						local = append(local, Pair{Left: i, Right: j})
					}
				}
			}
			mx.Lock()
			pairs = append(pairs, local...)
			mx.Unlock()
		}(pp)
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Left != pairs[j].Left {
			return pairs[i].Left < pairs[j].Left
		}
		return pairs[i].Right < pairs[j].Right
	})
	return pairs, nil
}
