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

// Package georel evaluates pairwise topological relations between
// planar geometries. Eight of the nine predicates are defined by
// patterns over a shared DE-9IM intersection matrix; OrderingEquals
// compares coordinate sequences directly.
package georel

import (
	"github.com/spatialmodel/georel/geom"
	"github.com/spatialmodel/georel/relate"
)

// Version gives the version number of this software.
const Version = "1.0.0"

// DefaultTolerance is the distance within which two points are
// considered coincident when no other tolerance is specified.
const DefaultTolerance = 1.e-9

// An Evaluator evaluates topological predicates with a fixed numeric
// tolerance. The zero value uses exact coordinate comparison; most
// callers want DefaultTolerance. Evaluators are stateless and safe for
// concurrent use.
type Evaluator struct {
	// Tolerance is the distance within which two points are considered
	// coincident. Coincident points are treated as intersecting.
	Tolerance float64
}

// NewEvaluator returns an Evaluator using DefaultTolerance.
func NewEvaluator() Evaluator {
	return Evaluator{Tolerance: DefaultTolerance}
}

// DE-9IM patterns defining the matrix-based predicates; see
// relate.Matrix.Matches for the pattern language.
const (
	patternWithin   = "T*F**F***"
	patternContains = "T*****FF*"
	patternDisjoint = "FF*FF****"
	patternEquals   = "T*F**FFF*"

	patternTouches1 = "FT*******"
	patternTouches2 = "F**T*****"
	patternTouches3 = "F***T****"

	patternCrossesLower = "T*T******" // dim(a) < dim(b)
	patternCrossesUpper = "T*****T**" // dim(a) > dim(b)
	patternCrossesLines = "0********" // dim(a) == dim(b) == 1

	patternOverlaps      = "T*T***T**" // dim 0 or 2
	patternOverlapsLines = "1*T***T**" // dim 1
)

// match applies a compile-time constant pattern, for which Matches
// cannot fail.
func match(m relate.Matrix, pattern string) bool {
	ok, _ := m.Matches(pattern)
	return ok
}

// checkOperands rejects operand pairs before kernel evaluation: nil
// geometries, structurally invalid geometries, and empty geometries.
func checkOperands(a, b geom.Geom) error {
	for _, g := range []geom.Geom{a, b} {
		if g == nil {
			return geom.NullGeometryError{}
		}
		if err := geom.Validate(g); err != nil {
			return err
		}
		if geom.Empty(g) {
			return geom.UnsupportedGeometryError{G: g}
		}
	}
	return nil
}

// Relate returns the DE-9IM intersection matrix for a and b.
func (e Evaluator) Relate(a, b geom.Geom) (relate.Matrix, error) {
	return relate.Relate(a, b, e.Tolerance)
}

// Contains returns whether a contains b: b lies in the closure of a
// and at least one point of b's interior lies in a's interior.
func (e Evaluator) Contains(a, b geom.Geom) (bool, error) {
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	return match(m, patternContains), nil
}

// Within returns whether a is within b. Within(a, b) == Contains(b, a).
func (e Evaluator) Within(a, b geom.Geom) (bool, error) {
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	return match(m, patternWithin), nil
}

// Disjoint returns whether a and b have no points in common. If the
// bounding boxes of a and b do not overlap the kernel is skipped.
func (e Evaluator) Disjoint(a, b geom.Geom) (bool, error) {
	if err := checkOperands(a, b); err != nil {
		return false, err
	}
	if !a.Bounds().Buffer(e.Tolerance).Overlaps(b.Bounds()) {
		return true, nil
	}
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	return match(m, patternDisjoint), nil
}

// Intersects returns whether a and b have any point in common; it is
// the negation of Disjoint.
func (e Evaluator) Intersects(a, b geom.Geom) (bool, error) {
	disjoint, err := e.Disjoint(a, b)
	if err != nil {
		return false, err
	}
	return !disjoint, nil
}

// Touches returns whether a and b intersect but their interiors do not.
func (e Evaluator) Touches(a, b geom.Geom) (bool, error) {
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	return match(m, patternTouches1) || match(m, patternTouches2) ||
		match(m, patternTouches3), nil
}

// Crosses returns whether the interiors of a and b intersect in a
// dimension lower than that of either input, with neither containing
// the other. It can only hold between geometries of different
// dimensions, or between two lines.
func (e Evaluator) Crosses(a, b geom.Geom) (bool, error) {
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	da, db := geom.Dimension(a), geom.Dimension(b)
	switch {
	case da < db:
		return match(m, patternCrossesLower), nil
	case da > db:
		return match(m, patternCrossesUpper), nil
	case da == 1 && db == 1:
		return match(m, patternCrossesLines), nil
	}
	return false, nil
}

// Overlaps returns whether a and b have the same dimension and their
// interiors intersect, with neither containing the other.
func (e Evaluator) Overlaps(a, b geom.Geom) (bool, error) {
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	da, db := geom.Dimension(a), geom.Dimension(b)
	if da != db {
		return false, nil
	}
	if da == 1 {
		return match(m, patternOverlapsLines), nil
	}
	return match(m, patternOverlaps), nil
}

// Equals returns whether a and b are topologically equal: their
// interiors and boundaries coincide dimension for dimension, regardless
// of vertex order or direction. Compare with OrderingEquals.
func (e Evaluator) Equals(a, b geom.Geom) (bool, error) {
	m, err := e.Relate(a, b)
	if err != nil {
		return false, err
	}
	return match(m, patternEquals), nil
}

var std = Evaluator{Tolerance: DefaultTolerance}

// Contains evaluates the predicate with the default tolerance.
func Contains(a, b geom.Geom) (bool, error) { return std.Contains(a, b) }

// Crosses evaluates the predicate with the default tolerance.
func Crosses(a, b geom.Geom) (bool, error) { return std.Crosses(a, b) }

// Disjoint evaluates the predicate with the default tolerance.
func Disjoint(a, b geom.Geom) (bool, error) { return std.Disjoint(a, b) }

// Equals evaluates the predicate with the default tolerance.
func Equals(a, b geom.Geom) (bool, error) { return std.Equals(a, b) }

// Intersects evaluates the predicate with the default tolerance.
func Intersects(a, b geom.Geom) (bool, error) { return std.Intersects(a, b) }

// Overlaps evaluates the predicate with the default tolerance.
func Overlaps(a, b geom.Geom) (bool, error) { return std.Overlaps(a, b) }

// Touches evaluates the predicate with the default tolerance.
func Touches(a, b geom.Geom) (bool, error) { return std.Touches(a, b) }

// Within evaluates the predicate with the default tolerance.
func Within(a, b geom.Geom) (bool, error) { return std.Within(a, b) }

// Relate returns the DE-9IM matrix for a and b with the default
// tolerance.
func Relate(a, b geom.Geom) (relate.Matrix, error) { return std.Relate(a, b) }
