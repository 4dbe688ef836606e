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

// AreaCalculator computes the unsigned area of a single ring. Cartesian areas
// are in squared coordinate units, WGS84 areas in square meters.
type AreaCalculator interface {
	RingArea(poly *types.SimplePolygon) float64
}

// Area returns the area of poly. For a multipolygon every node contributes its
// own ring area minus the area of its children, so holes subtract and islands
// inside holes add back.
func Area(poly types.Polygon) (float64, error) {
	c, err := AreaCalculatorFor(poly.CRS())
	if err != nil {
		return 0, err
	}
	switch p := poly.(type) {
	case *types.SimplePolygon:
		return c.RingArea(p), nil
	case *types.MultiPolygon:
		var total float64
		for _, id := range p.Roots() {
			total += nodeArea(c, p, id)
		}
		return total, nil
	default:
		return 0, errors.Wrapf(types.ErrUnsupportedGeometry, "area of %T", poly)
	}
}

func nodeArea(c AreaCalculator, mp *types.MultiPolygon, id int) float64 {
	a := c.RingArea(mp.Polygon(id))
	for _, child := range mp.Children(id) {
		a -= nodeArea(c, mp, child)
	}
	return a
}

type cartesianArea struct{}

// RingArea is the shoelace formula.
func (cartesianArea) RingArea(poly *types.SimplePolygon) float64 {
	var sum float64
	for i := 0; i < poly.NumEdges(); i++ {
		a, b := poly.Edge(i)
		sum += (b.X() - a.X()) * (b.Y() + a.Y())
	}
	return math.Abs(sum / 2)
}

type wgs84Area struct{}

// RingArea applies Girard's theorem. The turning angle between the great
// circles of consecutive edges is summed around the ring; the spherical excess
// is what the sum falls short of a full turn.
func (wgs84Area) RingArea(poly *types.SimplePolygon) float64 {
	verts := ringVectors(poly)
	n := len(verts)
	if n < 3 {
		return 0
	}
	normals := make([]types.Vector, 0, n)
	ends := make([]types.Vector, 0, n)
	for i := 0; i < n; i++ {
		gc := verts[i].Cross(verts[(i+1)%n])
		if gc.IsZero() {
			continue
		}
		normals = append(normals, gc.Normalize())
		ends = append(ends, verts[(i+1)%n])
	}
	if len(normals) < 3 {
		return 0
	}
	var turning float64
	for i := range normals {
		cur, next := normals[i], normals[(i+1)%len(normals)]
		axis := cur.Cross(next)
		sign := 1.0
		if axis.Dot(ends[i]) < 0 {
			sign = -1
		}
		turning += sign * cur.Angle(next)
	}
	excess := 2*math.Pi - math.Abs(turning)
	if excess < 0 {
		excess = 0
	}
	return float64(types.EarthArea(excess))
}

// ringVectors returns the n-vectors of the ring without the closing point and
// without consecutive duplicates.
func ringVectors(poly *types.SimplePolygon) []types.Vector {
	out := make([]types.Vector, 0, poly.Len())
	for i := 0; i < poly.Len()-1; i++ {
		v := types.VectorFromPoint(poly.Point(i))
		if len(out) > 0 && out[len(out)-1].Subtract(v).IsZero() {
			continue
		}
		out = append(out, v)
	}
	if len(out) > 1 && out[0].Subtract(out[len(out)-1]).IsZero() {
		out = out[:len(out)-1]
	}
	return out
}
