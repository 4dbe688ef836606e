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

// DistanceCalculator measures point to point and segment to point distances.
// Cartesian distances are in coordinate units, WGS84 distances in meters along
// the great circle.
type DistanceCalculator interface {
	PointDistance(a, b types.Point) (float64, error)
	// SegmentPointDistance is the distance from p to the closest point of the
	// segment ab.
	SegmentPointDistance(a, b, p types.Point) float64
}

// Distance returns the minimum distance between two geometries. It is zero when
// they touch, cross, or one contains the other.
func Distance(a, b types.Geometry) (float64, error) {
	if err := types.CheckCRS(a, b); err != nil {
		return 0, err
	}
	if a.CRS() == types.Cartesian && a.Dim() != b.Dim() {
		return 0, errors.Wrapf(types.ErrDimensionMismatch, "%d and %d dimensions", a.Dim(), b.Dim())
	}
	dc, err := DistanceCalculatorFor(a.CRS())
	if err != nil {
		return 0, err
	}
	pa, aIsPoint := a.(types.Point)
	pb, bIsPoint := b.(types.Point)
	switch {
	case aIsPoint && bIsPoint:
		return dc.PointDistance(pa, pb)
	case aIsPoint:
		return pointToGeometry(dc, pa, b)
	case bIsPoint:
		return pointToGeometry(dc, pb, a)
	}
	return geometryToGeometry(dc, a, b)
}

func pointToGeometry(dc DistanceCalculator, p types.Point, g types.Geometry) (float64, error) {
	if poly, ok := g.(types.Polygon); ok {
		in, err := Within(poly, p)
		if err != nil {
			return 0, err
		}
		if in {
			return 0, nil
		}
	}
	paths, err := boundaryOf(g)
	if err != nil {
		return 0, err
	}
	best := math.Inf(1)
	for _, pth := range paths {
		for i := 0; i < pth.numEdges(); i++ {
			s1, s2 := pth.edge(i)
			best = math.Min(best, dc.SegmentPointDistance(s1, s2, p))
		}
	}
	return best, nil
}

func geometryToGeometry(dc DistanceCalculator, a, b types.Geometry) (float64, error) {
	hit, err := Intersects(Naive, a, b)
	if err != nil {
		return 0, err
	}
	if hit {
		return 0, nil
	}
	pa, err := boundaryOf(a)
	if err != nil {
		return 0, err
	}
	pb, err := boundaryOf(b)
	if err != nil {
		return 0, err
	}
	// Without a boundary crossing, one geometry is either entirely inside the
	// other or entirely outside, so a single vertex decides containment.
	if in, err := anyVertexWithin(a, pb); err != nil || in {
		return 0, err
	}
	if in, err := anyVertexWithin(b, pa); err != nil || in {
		return 0, err
	}

	best := math.Inf(1)
	for _, p := range pa {
		for i := 0; i < p.numEdges(); i++ {
			a1, a2 := p.edge(i)
			for _, q := range pb {
				for j := 0; j < q.numEdges(); j++ {
					b1, b2 := q.edge(j)
					best = math.Min(best, segmentDistance(dc, a1, a2, b1, b2))
				}
			}
		}
	}
	return best, nil
}

func anyVertexWithin(g types.Geometry, paths []path) (bool, error) {
	poly, ok := g.(types.Polygon)
	if !ok || len(paths) == 0 || len(paths[0].points) == 0 {
		return false, nil
	}
	return Within(poly, paths[0].points[0])
}

// segmentDistance is the distance between two segments known not to intersect.
func segmentDistance(dc DistanceCalculator, a1, a2, b1, b2 types.Point) float64 {
	return math.Min(
		math.Min(dc.SegmentPointDistance(a1, a2, b1), dc.SegmentPointDistance(a1, a2, b2)),
		math.Min(dc.SegmentPointDistance(b1, b2, a1), dc.SegmentPointDistance(b1, b2, a2)))
}

// SegmentDistance returns the distance between two segments, zero when they intersect.
func SegmentDistance(s1, s2 types.LineSegment) (float64, error) {
	_, ok, err := IntersectSegments(s1, s2)
	if err != nil {
		return 0, err
	}
	if ok {
		return 0, nil
	}
	dc, err := DistanceCalculatorFor(s1.CRS())
	if err != nil {
		return 0, err
	}
	return segmentDistance(dc, s1.Start(), s1.End(), s2.Start(), s2.End()), nil
}

type cartesianDistance struct{}

func (cartesianDistance) PointDistance(a, b types.Point) (float64, error) {
	if a.Dim() != b.Dim() {
		return 0, errors.Wrapf(types.ErrDimensionMismatch, "%d and %d dimensions", a.Dim(), b.Dim())
	}
	var sum float64
	for i := 0; i < a.Dim(); i++ {
		d := b.Coord(i) - a.Coord(i)
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

func (cartesianDistance) SegmentPointDistance(a, b, p types.Point) float64 {
	n := min(a.Dim(), b.Dim(), p.Dim())
	var dot, len2 float64
	for i := 0; i < n; i++ {
		d := b.Coord(i) - a.Coord(i)
		dot += (p.Coord(i) - a.Coord(i)) * d
		len2 += d * d
	}
	t := 0.0
	if len2 > 0 {
		t = math.Max(0, math.Min(1, dot/len2))
	}
	var sum float64
	for i := 0; i < n; i++ {
		c := a.Coord(i) + t*(b.Coord(i)-a.Coord(i))
		d := p.Coord(i) - c
		sum += d * d
	}
	return math.Sqrt(sum)
}

type wgs84Distance struct{}

func (wgs84Distance) PointDistance(a, b types.Point) (float64, error) {
	return angularDistance(types.VectorFromPoint(a), types.VectorFromPoint(b)), nil
}

func angularDistance(u, v types.Vector) float64 {
	return u.Angle(v) * types.EarthRadiusMeters
}

// SegmentPointDistance projects p onto the great circle of ab. When the
// projection falls outside the arc, or the great circle or projection is
// undefined (coincident or antipodal endpoints, p at the circle's pole), the
// nearer endpoint is used instead.
func (wgs84Distance) SegmentPointDistance(a, b, p types.Point) float64 {
	u1, u2 := types.VectorFromPoint(a), types.VectorFromPoint(b)
	v := types.VectorFromPoint(p)
	ends := math.Min(angularDistance(u1, v), angularDistance(u2, v))
	gc := u1.Cross(u2)
	if gc.IsZero() {
		return ends
	}
	gc = gc.Normalize()
	n := gc.Cross(v.Cross(gc))
	if n.IsZero() {
		return ends
	}
	n = n.Normalize()
	if !onArc(n, u1, u2, gc) {
		return ends
	}
	return math.Min(ends, angularDistance(n, v))
}
