/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
)

// ReferenceCalculator measures and interpolates single edges for linear
// referencing.
type ReferenceCalculator interface {
	EdgeLength(a, b types.Point) float64
	// Interpolate returns the point a fraction f of the way from a to b.
	Interpolate(a, b types.Point, f float64) types.Point
}

// Length returns the total boundary length of g: the path length of segments
// and polylines, the perimeter of polygons including holes.
func Length(g types.Geometry) (float64, error) {
	rc, err := ReferenceCalculatorFor(g.CRS())
	if err != nil {
		return 0, err
	}
	paths, err := boundaryOf(g)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range paths {
		for i := 0; i < p.numEdges(); i++ {
			total += rc.EdgeLength(p.edge(i))
		}
	}
	return total, nil
}

// Reference returns the point at distance d along a segment, polyline or
// simple polygon ring, measured from its first point. It returns false when d
// is negative or longer than the path.
func Reference(g types.Geometry, d float64) (types.Point, bool, error) {
	var pts []types.Point
	switch t := g.(type) {
	case types.LineSegment:
		pts = t.Points()
	case *types.Polyline:
		pts = t.Points()
	case *types.SimplePolygon:
		pts = t.Points()
	default:
		return types.Point{}, false, errors.Wrapf(types.ErrUnsupportedGeometry, "linear reference on %T", g)
	}
	rc, err := ReferenceCalculatorFor(g.CRS())
	if err != nil {
		return types.Point{}, false, err
	}
	p, ok := walk(rc, pts, d)
	return p, ok, nil
}

// ReferenceFrom walks the ring of poly starting at the vertex nearest to start
// and heading toward hint.
func ReferenceFrom(poly *types.SimplePolygon, start, hint types.Point, d float64) (types.Point, bool, error) {
	t, err := poly.Traverse(start, hint)
	if err != nil {
		return types.Point{}, false, err
	}
	return ReferenceAlong(t, d)
}

// ReferenceAlong walks the points of a traversal.
func ReferenceAlong(t *types.Traversal, d float64) (types.Point, bool, error) {
	pts := t.Remaining()
	if len(pts) == 0 {
		return types.Point{}, false, errors.Wrap(types.ErrTooFewPoints, "empty traversal")
	}
	rc, err := ReferenceCalculatorFor(pts[0].CRS())
	if err != nil {
		return types.Point{}, false, err
	}
	p, ok := walk(rc, pts, d)
	return p, ok, nil
}

// walk accumulates edge lengths from the start so that d equal to the total
// length lands exactly on the last point.
func walk(rc ReferenceCalculator, pts []types.Point, d float64) (types.Point, bool) {
	if d < 0 || len(pts) == 0 {
		return types.Point{}, false
	}
	if d == 0 {
		return pts[0], true
	}
	var walked float64
	for i := 0; i+1 < len(pts); i++ {
		l := rc.EdgeLength(pts[i], pts[i+1])
		if l == 0 {
			continue
		}
		if walked+l >= d {
			f := (d - walked) / l
			if f >= 1 {
				return pts[i+1], true
			}
			return rc.Interpolate(pts[i], pts[i+1], f), true
		}
		walked += l
	}
	return types.Point{}, false
}

type cartesianReference struct{}

func (cartesianReference) EdgeLength(a, b types.Point) float64 {
	var sum float64
	for i := 0; i < min(a.Dim(), b.Dim()); i++ {
		d := b.Coord(i) - a.Coord(i)
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (cartesianReference) Interpolate(a, b types.Point, f float64) types.Point {
	c := make([]float64, a.Dim())
	for i := range c {
		c[i] = a.Coord(i) + f*(b.Coord(i)-a.Coord(i))
	}
	return types.MustNewPoint(a.CRS(), c...)
}

type wgs84Reference struct{}

func (wgs84Reference) EdgeLength(a, b types.Point) float64 {
	return angularDistance(types.VectorFromPoint(a), types.VectorFromPoint(b))
}

// Interpolate blends the n-vectors linearly and projects back onto the sphere.
// Close to, but not exactly, the great circle point at fraction f.
func (wgs84Reference) Interpolate(a, b types.Point, f float64) types.Point {
	u, v := types.VectorFromPoint(a), types.VectorFromPoint(b)
	return u.Add(v.Subtract(u).Scale(f)).ToPoint()
}
