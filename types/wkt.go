/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

func layoutFor(dim int) (geom.Layout, error) {
	switch dim {
	case 2:
		return geom.XY, nil
	case 3:
		return geom.XYZ, nil
	case 4:
		return geom.XYZM, nil
	}
	return geom.NoLayout, errors.Errorf("no WKT layout for %d dimensional coordinates", dim)
}

func toCoords(points []Point) []geom.Coord {
	out := make([]geom.Coord, len(points))
	for i, p := range points {
		out[i] = geom.Coord(p.Coords())
	}
	return out
}

func ringCoords(p *SimplePolygon, ccw bool) []geom.Coord {
	if ccw {
		return toCoords(p.CCW().points)
	}
	return toCoords(p.CW().points)
}

// ToGeom converts g into the equivalent go-geom geometry. Polygon shells are
// emitted counter-clockwise and holes clockwise.
func ToGeom(g Geometry) (geom.T, error) {
	dim := g.Dim()
	if dim == 0 {
		// An empty multipolygon has no points to take a dimension from.
		dim = 2
	}
	layout, err := layoutFor(dim)
	if err != nil {
		return nil, err
	}
	switch v := g.(type) {
	case Point:
		return geom.NewPoint(layout).SetCoords(geom.Coord(v.Coords()))
	case LineSegment:
		return geom.NewLineString(layout).SetCoords(toCoords(v.Points()))
	case *Polyline:
		return geom.NewLineString(layout).SetCoords(toCoords(v.points))
	case *MultiPolyline:
		coords := make([][]geom.Coord, len(v.lines))
		for i, l := range v.lines {
			coords[i] = toCoords(l.points)
		}
		return geom.NewMultiLineString(layout).SetCoords(coords)
	case *SimplePolygon:
		return geom.NewPolygon(layout).SetCoords([][]geom.Coord{ringCoords(v, true)})
	case *MultiPolygon:
		var coords [][][]geom.Coord
		for _, group := range v.Polygons() {
			rings := [][]geom.Coord{ringCoords(group[0], true)}
			for _, h := range group[1:] {
				rings = append(rings, ringCoords(h, false))
			}
			coords = append(coords, rings)
		}
		return geom.NewMultiPolygon(layout).SetCoords(coords)
	}
	return nil, errors.Wrapf(ErrUnsupportedGeometry, "%T", g)
}

// wktString renders g as WKT. Layouts go-geom cannot express fall back to a
// plain rendering of the coordinates.
func wktString(g Geometry) string {
	if t, err := ToGeom(g); err == nil {
		if s, err := wkt.Marshal(t); err == nil {
			return s
		}
	}
	return fallbackString(g)
}

func fallbackString(g Geometry) string {
	var sb strings.Builder
	writePoints := func(points []Point) {
		sb.WriteByte('(')
		for i, p := range points {
			if i > 0 {
				sb.WriteString(", ")
			}
			for j, c := range p.coords {
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
			}
		}
		sb.WriteByte(')')
	}
	switch v := g.(type) {
	case Point:
		sb.WriteString("POINT ")
		writePoints([]Point{v})
	case LineSegment:
		sb.WriteString("LINESTRING ")
		writePoints(v.Points())
	case *Polyline:
		sb.WriteString("LINESTRING ")
		writePoints(v.points)
	case *SimplePolygon:
		sb.WriteString("POLYGON (")
		writePoints(v.CCW().points)
		sb.WriteByte(')')
	default:
		fmt.Fprintf(&sb, "%T", g)
	}
	return sb.String()
}

// FromGeomCoords builds points of the given CRS from go-geom coordinates.
func FromGeomCoords(crs CRS, coords []geom.Coord) ([]Point, error) {
	out := make([]Point, len(coords))
	for i, c := range coords {
		p, err := NewPoint(crs, c...)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i)
		}
		out[i] = p
	}
	return out, nil
}
