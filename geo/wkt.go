/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/hypermodeinc/spatial/types"
)

// ParseWKT parses a WKT geometry into the CRS given by crs. POINT,
// LINESTRING, MULTILINESTRING, POLYGON and MULTIPOLYGON are understood.
// Polygons with holes, and multipolygons, are built into a nesting tree, so
// the ring grouping of the text is not trusted.
func ParseWKT(crs types.CRS, s string) (types.Geometry, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing WKT %q", s)
	}
	switch v := g.(type) {
	case *geom.Point:
		return types.NewPoint(crs, v.Coords()...)
	case *geom.LineString:
		pts, err := types.FromGeomCoords(crs, v.Coords())
		if err != nil {
			return nil, err
		}
		return types.NewPolyline(pts...)
	case *geom.MultiLineString:
		var lines []*types.Polyline
		for i := 0; i < v.NumLineStrings(); i++ {
			pts, err := types.FromGeomCoords(crs, v.LineString(i).Coords())
			if err != nil {
				return nil, err
			}
			l, err := types.NewPolyline(pts...)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", i)
			}
			lines = append(lines, l)
		}
		return types.NewMultiPolyline(lines...)
	case *geom.Polygon:
		rings, err := polygonRings(crs, v)
		if err != nil {
			return nil, err
		}
		if len(rings) == 1 {
			return rings[0], nil
		}
		return BuildMultiPolygon(rings...)
	case *geom.MultiPolygon:
		var rings []*types.SimplePolygon
		for i := 0; i < v.NumPolygons(); i++ {
			r, err := polygonRings(crs, v.Polygon(i))
			if err != nil {
				return nil, errors.Wrapf(err, "polygon %d", i)
			}
			rings = append(rings, r...)
		}
		return BuildMultiPolygon(rings...)
	default:
		return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "WKT %T", g)
	}
}

func polygonRings(crs types.CRS, p *geom.Polygon) ([]*types.SimplePolygon, error) {
	if p.NumLinearRings() == 0 {
		return nil, errors.Wrap(types.ErrTooFewPoints, "empty polygon")
	}
	out := make([]*types.SimplePolygon, 0, p.NumLinearRings())
	for i := 0; i < p.NumLinearRings(); i++ {
		pts, err := types.FromGeomCoords(crs, p.LinearRing(i).Coords())
		if err != nil {
			return nil, err
		}
		r, err := types.NewSimplePolygon(pts...)
		if err != nil {
			return nil, errors.Wrapf(err, "ring %d", i)
		}
		out = append(out, r)
	}
	return out, nil
}

// ParsePoints parses any WKT geometry and returns all of its coordinates as
// points, for instance the vertices of a MULTIPOINT to take the hull of.
func ParsePoints(crs types.CRS, s string) ([]types.Point, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing WKT %q", s)
	}
	flat, stride := g.FlatCoords(), g.Stride()
	if stride == 0 {
		return nil, nil
	}
	coords := make([]geom.Coord, 0, len(flat)/stride)
	for i := 0; i+stride <= len(flat); i += stride {
		coords = append(coords, geom.Coord(flat[i:i+stride]))
	}
	return types.FromGeomCoords(crs, coords)
}
