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
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/spatialmodel/georel"
	"github.com/spatialmodel/georel/geom"
)

// A Filter is a boolean expression over predicate names, evaluated for
// a geometry pair, for example "intersects && !touches" or
// "contains || equals". Each variable in the expression must be the
// name of one of the nine predicates.
type Filter struct {
	expr *govaluate.EvaluableExpression
	// vars maps each variable appearing in the expression to the
	// predicate it names.
	vars map[string]georel.Predicate
	eval georel.Evaluator
}

// NewFilter parses expression into a Filter evaluated with tolerance
// tol.
func NewFilter(expression string, tol float64) (*Filter, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, fmt.Errorf("join: while parsing filter %q: %v", expression, err)
	}
	vars := make(map[string]georel.Predicate)
	for _, v := range expr.Vars() {
		p, err := georel.ParsePredicate(v)
		if err != nil {
			return nil, fmt.Errorf("join: filter %q: %v", expression, err)
		}
		vars[v] = p
	}
	if len(vars) == 0 {
		return nil, fmt.Errorf("join: filter %q uses no predicates", expression)
	}
	return &Filter{expr: expr, vars: vars, eval: georel.Evaluator{Tolerance: tol}}, nil
}

// Evaluate evaluates the filter expression for the geometry pair
// (a, b).
func (f *Filter) Evaluate(a, b geom.Geom) (bool, error) {
	params := make(map[string]interface{}, len(f.vars))
	for name, p := range f.vars {
		v, err := f.eval.Evaluate(p, a, b)
		if err != nil {
			return false, err
		}
		params[name] = v
	}
	result, err := f.expr.Evaluate(params)
	if err != nil {
		return false, fmt.Errorf("join: while evaluating filter: %v", err)
	}
	ok, isBool := result.(bool)
	if !isBool {
		return false, fmt.Errorf("join: filter result is %T, not boolean", result)
	}
	return ok, nil
}

// prefilterSafe reports whether every pair matching the filter must
// have overlapping bounding boxes. That only holds for expressions that
// are monotone in the predicate values: plain conjunctions and
// disjunctions of predicate names, none of them Disjoint. A negation,
// comparison, or literal can make the filter true for a pair the
// bounding-box prefilter would never produce.
func (f *Filter) prefilterSafe() bool {
	for _, p := range f.vars {
		if p == georel.PredDisjoint {
			return false
		}
	}
	for _, tok := range f.expr.Tokens() {
		switch tok.Kind {
		case govaluate.VARIABLE, govaluate.LOGICALOP, govaluate.CLAUSE, govaluate.CLAUSE_CLOSE:
		default:
			return false
		}
	}
	return true
}

// JoinFilter returns the pairs (i, j) for which the filter expression
// holds between left[i] and right.Geom(j).
func JoinFilter(left []geom.Geom, right *Index, f *Filter) ([]Pair, error) {
	return parallelJoin(left, right, f.prefilterSafe(), f.eval.Tolerance, f.Evaluate)
}
