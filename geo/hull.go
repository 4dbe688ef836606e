/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// HullCalculator computes convex hulls. The hull is returned as a closed,
// counter-clockwise ring of two dimensional points taken from the input.
type HullCalculator interface {
	Hull(points []types.Point) (*types.SimplePolygon, error)
}

// ConvexHull returns the convex hull of points. At least three points sharing
// one CRS are required, and they must not all be collinear.
func ConvexHull(points []types.Point) (*types.SimplePolygon, error) {
	defer x.RecordLatency("hull", time.Now())
	if len(points) < 3 {
		return nil, errors.Wrapf(types.ErrTooFewPoints, "hull needs 3 points, got %d", len(points))
	}
	for _, p := range points[1:] {
		if err := types.CheckCRS(points[0], p); err != nil {
			return nil, err
		}
	}
	hc, err := HullCalculatorFor(points[0].CRS())
	if err != nil {
		return nil, err
	}
	hull, err := hc.Hull(points)
	if err != nil {
		x.Count("hull", x.NumHullFailures)
		return nil, err
	}
	return hull, nil
}

// HullOfPolygon returns the convex hull of a polygon. For a multipolygon it is
// the hull of the hulls of its outermost shells; holes never extend a hull.
func HullOfPolygon(p types.Polygon) (*types.SimplePolygon, error) {
	switch t := p.(type) {
	case *types.SimplePolygon:
		return ConvexHull(t.Points())
	case *types.MultiPolygon:
		var pts []types.Point
		for _, id := range t.Roots() {
			h, err := ConvexHull(t.Polygon(id).Points())
			if err != nil {
				return nil, errors.Wrapf(err, "hull of shell %d", id)
			}
			pts = append(pts, h.Points()...)
		}
		return ConvexHull(pts)
	default:
		return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "hull of %T", p)
	}
}

// grahamScan returns the indexes of the hull vertices of the planar points
// (xs[i], ys[i]) in counter-clockwise order, starting at the lowest point.
// Collinear points on the hull boundary are dropped.
func grahamScan(xs, ys []float64) []int {
	pivot := 0
	for i := range xs {
		if ys[i] < ys[pivot] || (ys[i] == ys[pivot] && xs[i] < xs[pivot]) {
			pivot = i
		}
	}
	px, py := xs[pivot], ys[pivot]
	dist := func(i int) float64 { return math.Hypot(xs[i]-px, ys[i]-py) }
	turn := func(a, b, c int) float64 { return x.Orientation(xs[a], ys[a], xs[b], ys[b], xs[c], ys[c]) }

	rest := make([]int, 0, len(xs)-1)
	for i := range xs {
		if i != pivot && (xs[i] != px || ys[i] != py) {
			rest = append(rest, i)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		if o := turn(pivot, a, b); o != 0 {
			return o > 0
		}
		return dist(a) < dist(b)
	})

	// Of points at the same angle keep only the farthest.
	sorted := rest[:0]
	for i, idx := range rest {
		if i+1 < len(rest) && collinear(turn(pivot, idx, rest[i+1]), dist(idx), dist(rest[i+1])) {
			continue
		}
		sorted = append(sorted, idx)
	}

	stack := []int{pivot}
	for _, idx := range sorted {
		for len(stack) >= 2 && turn(stack[len(stack)-2], stack[len(stack)-1], idx) <= 0 {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, idx)
	}
	return stack
}

func collinear(cross, la, lb float64) bool {
	return math.Abs(cross) <= x.Epsilon*math.Max(1, la*lb)
}

func ringFromIndexes(points []types.Point, idx []int) (*types.SimplePolygon, error) {
	if len(idx) < 3 {
		return nil, errors.Wrapf(ErrDegenerateHull, "%d hull vertices", len(idx))
	}
	ring := make([]types.Point, 0, len(idx)+1)
	for _, i := range idx {
		ring = append(ring, flatten(points[i]))
	}
	return types.NewSimplePolygon(ring...)
}

type cartesianHull struct{}

func (cartesianHull) Hull(points []types.Point) (*types.SimplePolygon, error) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X(), p.Y()
	}
	return ringFromIndexes(points, grahamScan(xs, ys))
}
