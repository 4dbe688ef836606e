/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// WithinCalculator answers point-in-polygon questions. Points on the boundary
// count as within, for simple polygons and multipolygons alike.
type WithinCalculator interface {
	types.PointInPolygon
	// WithinPolygon handles polygons with holes: a point is within when it is
	// inside strictly more shells than holes, or on any ring.
	WithinPolygon(poly types.Polygon, pt types.Point) bool
}

// Within reports whether pt lies inside poly or on its boundary.
func Within(poly types.Polygon, pt types.Point) (bool, error) {
	if err := types.CheckCRS(poly, pt); err != nil {
		return false, err
	}
	c, err := WithinCalculatorFor(poly.CRS())
	if err != nil {
		return false, err
	}
	return c.WithinPolygon(poly, pt), nil
}

// onSegment reports whether p lies on the segment ab in the plane of the first
// two coordinates.
func onSegment(a, b, p types.Point) bool {
	dx, dy := b.X()-a.X(), b.Y()-a.Y()
	px, py := p.X()-a.X(), p.Y()-a.Y()
	tol := x.Epsilon * math.Max(1, (math.Abs(dx)+math.Abs(dy))*(math.Abs(px)+math.Abs(py)))
	if math.Abs(x.Cross2D(dx, dy, px, py)) > tol {
		return false
	}
	return x.Between(p.X(), a.X(), b.X()) && x.Between(p.Y(), a.Y(), b.Y())
}

// rayCast is the even-odd test: a horizontal ray from pt toward +x crosses the
// ring an odd number of times iff pt is inside.
func rayCast(poly *types.SimplePolygon, pt types.Point) bool {
	inside := false
	px, py := pt.X(), pt.Y()
	for i := 0; i < poly.NumEdges(); i++ {
		a, b := poly.Edge(i)
		ay, by := a.Y(), b.Y()
		if (ay > py) == (by > py) {
			continue
		}
		cross := a.X() + (py-ay)*(b.X()-a.X())/(by-ay)
		if x.FloatLess(px, cross) {
			inside = !inside
		}
	}
	return inside
}

func onRing(poly *types.SimplePolygon, pt types.Point) bool {
	for i := 0; i < poly.NumEdges(); i++ {
		a, b := poly.Edge(i)
		if onSegment(a, b, pt) {
			return true
		}
	}
	return false
}

func withinPolygon(c types.PointInPolygon, poly types.Polygon, pt types.Point) bool {
	if sp, ok := poly.(*types.SimplePolygon); ok {
		return c.Within(sp, pt)
	}
	shells, holes := poly.Shells(), poly.Holes()
	for _, r := range shells {
		if c.OnBoundary(r, pt) {
			return true
		}
	}
	for _, r := range holes {
		if c.OnBoundary(r, pt) {
			return true
		}
	}
	var in int
	for _, r := range shells {
		if c.Within(r, pt) {
			in++
		}
	}
	for _, r := range holes {
		if c.Within(r, pt) {
			in--
		}
	}
	return in > 0
}

type cartesianWithin struct{}

func (cartesianWithin) Within(poly *types.SimplePolygon, pt types.Point) bool {
	return onRing(poly, pt) || rayCast(poly, pt)
}

func (cartesianWithin) OnBoundary(poly *types.SimplePolygon, pt types.Point) bool {
	return onRing(poly, pt)
}

func (c cartesianWithin) WithinPolygon(poly types.Polygon, pt types.Point) bool {
	return withinPolygon(c, poly, pt)
}

// wgs84Within casts the ray in longitude/latitude space. Edges are treated as
// straight in that space, which matches the great circle closely for the edge
// lengths polygons stored in a graph usually have, and is exact along meridians
// and the equator.
type wgs84Within struct{}

func (wgs84Within) Within(poly *types.SimplePolygon, pt types.Point) bool {
	return onRing(poly, pt) || rayCast(poly, pt)
}

func (wgs84Within) OnBoundary(poly *types.SimplePolygon, pt types.Point) bool {
	return onRing(poly, pt)
}

func (c wgs84Within) WithinPolygon(poly types.Polygon, pt types.Point) bool {
	return withinPolygon(c, poly, pt)
}
