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

package shp

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"

	"github.com/spatialmodel/georel/geom"
)

// shp2Geom converts a shapefile shape to a geometry object.
func shp2Geom(s shp.Shape) (geom.Geom, error) {
	switch s := s.(type) {
	case *shp.Point:
		return geom.Point{X: s.X, Y: s.Y}, nil
	case *shp.PointM:
		return geom.Point{X: s.X, Y: s.Y}, nil
	case *shp.PointZ:
		return geom.Point{X: s.X, Y: s.Y}, nil
	case *shp.MultiPoint:
		mp := make(geom.MultiPoint, len(s.Points))
		for i, p := range s.Points {
			mp[i] = geom.Point{X: p.X, Y: p.Y}
		}
		return mp, nil
	case *shp.PolyLine:
		return polyLine2Geom(s.Parts, s.Points), nil
	case *shp.PolyLineM:
		return polyLine2Geom(s.Parts, s.Points), nil
	case *shp.PolyLineZ:
		return polyLine2Geom(s.Parts, s.Points), nil
	case *shp.Polygon:
		return polygon2Geom(s.Parts, s.Points), nil
	case *shp.PolygonM:
		return polygon2Geom(s.Parts, s.Points), nil
	case *shp.PolygonZ:
		return polygon2Geom(s.Parts, s.Points), nil
	case *shp.Null:
		return nil, nil
	}
	return nil, fmt.Errorf("unsupported shape type %T", s)
}

func partStartEnd(parts []int32, points []shp.Point, i int) (start, end int) {
	start = int(parts[i])
	if i == len(parts)-1 {
		end = len(points)
	} else {
		end = int(parts[i+1])
	}
	return
}

func polyLine2Geom(parts []int32, points []shp.Point) geom.Geom {
	ml := make(geom.MultiLineString, len(parts))
	for i := range parts {
		start, end := partStartEnd(parts, points, i)
		ml[i] = make(geom.LineString, end-start)
		for j := start; j < end; j++ {
			ml[i][j-start] = geom.Point{X: points[j].X, Y: points[j].Y}
		}
	}
	return ml
}

func polygon2Geom(parts []int32, points []shp.Point) geom.Geom {
	pg := make(geom.Polygon, len(parts))
	for i := range parts {
		start, end := partStartEnd(parts, points, i)
		pg[i] = make([]geom.Point, end-start)
		// Reverse the rings to switch to OGC winding.
		for j := start; j < end; j++ {
			pg[i][end-1-j] = geom.Point{X: points[j].X, Y: points[j].Y}
		}
	}
	// Shapefile rings are closed by convention, but guard against
	// files that leave the closing point off.
	for i, r := range pg {
		if len(r) > 0 && !r[0].Equals(r[len(r)-1]) {
			pg[i] = append(pg[i], r[0])
		}
	}
	return pg
}

// geom2Shp converts a geometry object to a shapefile shape.
func geom2Shp(g geom.Geom) (shp.Shape, error) {
	switch g := g.(type) {
	case nil:
		return &shp.Null{}, nil
	case geom.Point:
		p := shp.Point{X: g.X, Y: g.Y}
		return &p, nil
	case geom.MultiPoint:
		mp := new(shp.MultiPoint)
		mp.Box = bounds2Box(g)
		mp.NumPoints = int32(len(g))
		mp.Points = make([]shp.Point, len(g))
		for i, p := range g {
			mp.Points[i] = shp.Point{X: p.X, Y: p.Y}
		}
		return mp, nil
	case geom.LineString:
		return geom2Shp(geom.MultiLineString{g})
	case geom.MultiLineString:
		parts := make([][]shp.Point, len(g))
		for i, l := range g {
			parts[i] = make([]shp.Point, len(l))
			for j, p := range l {
				parts[i][j] = shp.Point{X: p.X, Y: p.Y}
			}
		}
		return shp.NewPolyLine(parts), nil
	case geom.Polygon:
		parts := make([][]shp.Point, len(g))
		for i, r := range g {
			parts[i] = make([]shp.Point, len(r))
			// Switch the winding direction back to shapefile format.
			for j, p := range r {
				parts[i][len(r)-1-j] = shp.Point{X: p.X, Y: p.Y}
			}
		}
		p := shp.Polygon(*shp.NewPolyLine(parts))
		return &p, nil
	case geom.MultiPolygon:
		var parts [][]shp.Point
		for _, pg := range g {
			for _, r := range pg {
				part := make([]shp.Point, len(r))
				for j, p := range r {
					part[len(r)-1-j] = shp.Point{X: p.X, Y: p.Y}
				}
				parts = append(parts, part)
			}
		}
		p := shp.Polygon(*shp.NewPolyLine(parts))
		return &p, nil
	}
	return nil, fmt.Errorf("unsupported geometry type %T", g)
}

func bounds2Box(g geom.Geom) shp.Box {
	b := g.Bounds()
	return shp.Box{MinX: b.Min.X, MinY: b.Min.Y, MaxX: b.Max.X, MaxY: b.Max.Y}
}
