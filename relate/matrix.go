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

import "fmt"

// Dim is the dimension of an intersection between two geometry parts.
type Dim int8

// Intersection dimensions: no intersection, a point, a line, or an area.
const (
	DimEmpty Dim = iota - 1
	DimPoint
	DimLine
	DimArea
)

// Position identifies one of the three mutually exclusive parts of the
// plane defined by a geometry. It doubles as a row or column index into
// a Matrix.
type Position int

// The three parts of the plane defined by a geometry.
const (
	Interior Position = iota
	Boundary
	Exterior
)

func (p Position) String() string {
	switch p {
	case Interior:
		return "interior"
	case Boundary:
		return "boundary"
	case Exterior:
		return "exterior"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// Matrix is a dimensionally extended nine-intersection (DE-9IM) matrix.
// Rows are the interior, boundary, and exterior of the first geometry;
// columns are those of the second. Each entry holds the dimension of
// the intersection of the corresponding parts.
type Matrix [3][3]Dim

// NewMatrix returns a matrix with every entry set to DimEmpty.
func NewMatrix() Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = DimEmpty
		}
	}
	return m
}

// Transpose returns the matrix for the geometry pair in swapped order.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for i := range m {
		for j := range m[i] {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// upgrade records an intersection of dimension d between part row of
// the first geometry and part col of the second, keeping the maximum
// dimension seen so far.
func (m *Matrix) upgrade(row, col Position, d Dim) {
	if d > m[row][col] {
		m[row][col] = d
	}
}

// String returns m in the standard row-major DE-9IM string form, e.g.
// "212FF1FF2".
func (m Matrix) String() string {
	b := make([]byte, 0, 9)
	for i := range m {
		for j := range m[i] {
			switch m[i][j] {
			case DimEmpty:
				b = append(b, 'F')
			default:
				b = append(b, byte('0'+m[i][j]))
			}
		}
	}
	return string(b)
}

// Matches reports whether m matches pattern, a nine-character string
// over the alphabet {T, F, *, 0, 1, 2}: T matches any non-empty
// dimension, F matches only DimEmpty, * matches anything, and a digit
// matches that exact dimension.
func (m Matrix) Matches(pattern string) (bool, error) {
	if len(pattern) != 9 {
		return false, fmt.Errorf("relate: pattern %q must have 9 characters", pattern)
	}
	for i := 0; i < 9; i++ {
		d := m[i/3][i%3]
		switch pattern[i] {
		case '*':
		case 'T', 't':
			if d == DimEmpty {
				return false, nil
			}
		case 'F', 'f':
			if d != DimEmpty {
				return false, nil
			}
		case '0', '1', '2':
			if d != Dim(pattern[i]-'0') {
				return false, nil
			}
		default:
			return false, fmt.Errorf("relate: invalid pattern character %q in %q", pattern[i], pattern)
		}
	}
	return true, nil
}
