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

// SegmentIntersector is the pairwise test shared by both intersection
// strategies. Only the first two coordinates take part; the result is a two
// dimensional point in the CRS of the inputs.
type SegmentIntersector interface {
	// Intersect returns a point common to the segments ab and cd. When the
	// segments overlap along a line, the shared point with the lowest
	// coordinate is returned.
	Intersect(a, b, c, d types.Point) (types.Point, bool)
}

// IntersectSegments returns the intersection point of two segments.
func IntersectSegments(s1, s2 types.LineSegment) (types.Point, bool, error) {
	if err := types.CheckCRS(s1, s2); err != nil {
		return types.Point{}, false, err
	}
	si, err := SegmentIntersectorFor(s1.CRS())
	if err != nil {
		return types.Point{}, false, err
	}
	p, ok := si.Intersect(s1.Start(), s1.End(), s2.Start(), s2.End())
	return p, ok, nil
}

func point2D(crs types.CRS, px, py float64) types.Point {
	if crs == types.WGS84 {
		return types.LonLat(px, py)
	}
	return types.XY(px, py)
}

func flatten(p types.Point) types.Point {
	if p.Dim() == 2 {
		return p
	}
	return point2D(p.CRS(), p.X(), p.Y())
}

// snap replaces p by an endpoint it is approximately equal to, so that shared
// vertices come out exactly as they went in.
func snap(p types.Point, ends ...types.Point) types.Point {
	for _, e := range ends {
		if p.ApproxEqual2D(e) {
			return flatten(e)
		}
	}
	return p
}

type cartesianSegments struct{}

func (cartesianSegments) Intersect(a, b, c, d types.Point) (types.Point, bool) {
	ax, ay, bx, by := a.X(), a.Y(), b.X(), b.Y()
	cx, cy, dx, dy := c.X(), c.Y(), d.X(), d.Y()
	v1 := x.FloatEqual(ax, bx)
	v2 := x.FloatEqual(cx, dx)

	switch {
	case v1 && v2:
		if !x.FloatEqual(ax, cx) {
			return types.Point{}, false
		}
		lo := math.Max(math.Min(ay, by), math.Min(cy, dy))
		hi := math.Min(math.Max(ay, by), math.Max(cy, dy))
		if !x.FloatLessEqual(lo, hi) {
			return types.Point{}, false
		}
		return snap(types.XY(ax, lo), a, b, c, d), true
	case v1:
		return crossVertical(ax, ay, by, cx, cy, dx, dy, a, b, c, d)
	case v2:
		return crossVertical(cx, cy, dy, ax, ay, bx, by, a, b, c, d)
	}

	d1x, d1y := bx-ax, by-ay
	d2x, d2y := dx-cx, dy-cy
	denom := x.Cross2D(d1x, d1y, d2x, d2y)
	if math.Abs(denom) <= x.Epsilon*math.Hypot(d1x, d1y)*math.Hypot(d2x, d2y) {
		return collinearOverlap(a, b, c, d)
	}
	ex, ey := cx-ax, cy-ay
	t := x.Cross2D(ex, ey, d2x, d2y) / denom
	u := x.Cross2D(ex, ey, d1x, d1y) / denom
	if !x.Between(t, 0, 1) || !x.Between(u, 0, 1) {
		return types.Point{}, false
	}
	p := types.XY(ax+t*d1x, ay+t*d1y)
	return snap(p, a, b, c, d), true
}

// crossVertical intersects the vertical segment x = vx, y in [y1, y2] with the
// non vertical segment (px, py)-(qx, qy).
func crossVertical(vx, y1, y2, px, py, qx, qy float64, ends ...types.Point) (types.Point, bool) {
	if !x.Between(vx, px, qx) {
		return types.Point{}, false
	}
	y := py + (vx-px)*(qy-py)/(qx-px)
	if !x.Between(y, y1, y2) || !x.Between(y, py, qy) {
		return types.Point{}, false
	}
	return snap(types.XY(vx, y), ends...), true
}

// collinearOverlap handles parallel, non vertical segments. Only segments on
// the same line can share points; the lowest shared x wins.
func collinearOverlap(a, b, c, d types.Point) (types.Point, bool) {
	ax, ay := a.X(), a.Y()
	d1x, d1y := b.X()-ax, b.Y()-ay
	off := x.Cross2D(d1x, d1y, c.X()-ax, c.Y()-ay)
	if math.Abs(off) > x.Epsilon*math.Max(1, math.Hypot(d1x, d1y)*math.Hypot(c.X()-ax, c.Y()-ay)) {
		return types.Point{}, false
	}
	lo := math.Max(math.Min(ax, b.X()), math.Min(c.X(), d.X()))
	hi := math.Min(math.Max(ax, b.X()), math.Max(c.X(), d.X()))
	if !x.FloatLessEqual(lo, hi) {
		return types.Point{}, false
	}
	for _, e := range []types.Point{a, b, c, d} {
		if x.FloatEqual(e.X(), lo) {
			return flatten(e), true
		}
	}
	return types.XY(lo, ay+(lo-ax)*d1y/d1x), true
}

type wgs84Segments struct{}

func (wgs84Segments) Intersect(a, b, c, d types.Point) (types.Point, bool) {
	for _, e := range []types.Point{a, b} {
		if e.ApproxEqual2D(c) || e.ApproxEqual2D(d) {
			return flatten(e), true
		}
	}
	u1, u2 := types.VectorFromPoint(a), types.VectorFromPoint(b)
	v1, v2 := types.VectorFromPoint(c), types.VectorFromPoint(d)
	gc1, gc2 := u1.Cross(u2), v1.Cross(v2)
	if gc1.IsZero() || gc2.IsZero() {
		return degenerateArc(a, b, c, d, gc1, gc2)
	}
	gc1, gc2 = gc1.Normalize(), gc2.Normalize()

	cand := gc1.Cross(gc2)
	if cand.IsZero() {
		return sameGreatCircle(a, b, c, d, gc1, gc2)
	}
	cand = cand.Normalize()
	sum := u1.Add(u2).Add(v1).Add(v2)
	if cand.Dot(sum) < 0 {
		cand = cand.Negate()
	}
	if !onArc(cand, u1, u2, gc1) || !onArc(cand, v1, v2, gc2) {
		return types.Point{}, false
	}
	return snap(cand.ToPoint(), a, b, c, d), true
}

// onArc reports whether the unit vector p, known to lie on the great circle gc
// through u1 and u2, falls between them.
func onArc(p, u1, u2, gc types.Vector) bool {
	return u1.Cross(p).Dot(gc) >= -x.Epsilon && p.Cross(u2).Dot(gc) >= -x.Epsilon
}

// onGreatCircleArc reports whether p lies on the minor arc u1-u2 with normal gc.
func onGreatCircleArc(p, u1, u2, gc types.Vector) bool {
	return math.Abs(p.Dot(gc)) <= x.Epsilon && onArc(p, u1, u2, gc)
}

// degenerateArc handles a zero length arc on either side: it intersects the
// other arc only when it lies on it.
func degenerateArc(a, b, c, d types.Point, gc1, gc2 types.Vector) (types.Point, bool) {
	switch {
	case gc1.IsZero() && gc2.IsZero():
		if a.ApproxEqual2D(c) {
			return flatten(a), true
		}
	case gc1.IsZero():
		u := types.VectorFromPoint(a)
		if onGreatCircleArc(u, types.VectorFromPoint(c), types.VectorFromPoint(d), gc2.Normalize()) {
			return flatten(a), true
		}
	default:
		v := types.VectorFromPoint(c)
		if onGreatCircleArc(v, types.VectorFromPoint(a), types.VectorFromPoint(b), gc1.Normalize()) {
			return flatten(c), true
		}
	}
	return types.Point{}, false
}

// sameGreatCircle handles two arcs on one great circle. They share points only
// if an endpoint of one lies on the other; the lowest such endpoint is chosen.
func sameGreatCircle(a, b, c, d types.Point, gc1, gc2 types.Vector) (types.Point, bool) {
	u1, u2 := types.VectorFromPoint(a), types.VectorFromPoint(b)
	v1, v2 := types.VectorFromPoint(c), types.VectorFromPoint(d)
	var best types.Point
	found := false
	consider := func(p types.Point) {
		if !found || p.X() < best.X() || (p.X() == best.X() && p.Y() < best.Y()) {
			best, found = flatten(p), true
		}
	}
	if onArc(v1, u1, u2, gc1) {
		consider(c)
	}
	if onArc(v2, u1, u2, gc1) {
		consider(d)
	}
	if onArc(u1, v1, v2, gc2) {
		consider(a)
	}
	if onArc(u2, v1, v2, gc2) {
		consider(b)
	}
	return best, found
}
