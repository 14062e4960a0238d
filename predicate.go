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

package georel

import (
	"fmt"
	"strings"

	"github.com/spatialmodel/georel/geom"
)

// Predicate identifies one of the nine pairwise spatial relations. It
// is a closed enumeration so that dispatch can be checked exhaustively
// at compile time; names only enter at external boundaries through
// ParsePredicate.
type Predicate int

// The nine spatial relation predicates.
const (
	PredContains Predicate = iota
	PredCrosses
	PredDisjoint
	PredEquals
	PredIntersects
	PredOrderingEquals
	PredOverlaps
	PredTouches
	PredWithin
	numPredicates // must be last
)

var predicateNames = [numPredicates]string{
	PredContains:       "Contains",
	PredCrosses:        "Crosses",
	PredDisjoint:       "Disjoint",
	PredEquals:         "Equals",
	PredIntersects:     "Intersects",
	PredOrderingEquals: "OrderingEquals",
	PredOverlaps:       "Overlaps",
	PredTouches:        "Touches",
	PredWithin:         "Within",
}

func (p Predicate) String() string {
	if p < 0 || p >= numPredicates {
		return fmt.Sprintf("Predicate(%d)", int(p))
	}
	return predicateNames[p]
}

// Predicates returns all nine predicates in name order.
func Predicates() []Predicate {
	out := make([]Predicate, numPredicates)
	for i := range out {
		out[i] = Predicate(i)
	}
	return out
}

// ParsePredicate converts a predicate name to its Predicate value.
// Matching is case-insensitive and accepts an optional "ST_" prefix, so
// "intersects", "Intersects", and "ST_Intersects" are all accepted.
func ParsePredicate(name string) (Predicate, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(name), "st_")
	for i, n := range predicateNames {
		if strings.ToLower(n) == trimmed {
			return Predicate(i), nil
		}
	}
	return 0, fmt.Errorf("georel: unknown predicate %q", name)
}

// Evaluate evaluates predicate p for the geometry pair (a, b).
func (e Evaluator) Evaluate(p Predicate, a, b geom.Geom) (bool, error) {
	switch p {
	case PredContains:
		return e.Contains(a, b)
	case PredCrosses:
		return e.Crosses(a, b)
	case PredDisjoint:
		return e.Disjoint(a, b)
	case PredEquals:
		return e.Equals(a, b)
	case PredIntersects:
		return e.Intersects(a, b)
	case PredOrderingEquals:
		return e.OrderingEquals(a, b)
	case PredOverlaps:
		return e.Overlaps(a, b)
	case PredTouches:
		return e.Touches(a, b)
	case PredWithin:
		return e.Within(a, b)
	}
	return false, fmt.Errorf("georel: unknown predicate %v", p)
}
