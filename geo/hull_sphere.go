/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

type wgs84Hull struct{}

// Hull finds a pole whose hemisphere holds every point, projects the points
// onto the plane perpendicular to it and runs the planar scan there.
func (wgs84Hull) Hull(points []types.Point) (*types.SimplePolygon, error) {
	vs := make([]types.Vector, len(points))
	for i, p := range points {
		vs[i] = types.VectorFromPoint(p)
	}
	pole, err := hemispherePole(vs)
	if err != nil {
		return nil, err
	}
	e1, e2 := basis(pole)
	xs := make([]float64, len(vs))
	ys := make([]float64, len(vs))
	for i, v := range vs {
		xs[i], ys[i] = v.Dot(e1), v.Dot(e2)
	}
	return ringFromIndexes(points, grahamScan(xs, ys))
}

// hemispherePole averages every great circle pole that has all points on its
// side. Each pair of points contributes the poles of the great circle through
// them.
func hemispherePole(vs []types.Vector) (types.Vector, error) {
	var sum types.Vector
	found := 0
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			c := vs[i].Cross(vs[j])
			if c.IsZero() {
				continue
			}
			c = c.Normalize()
			for _, cand := range []types.Vector{c, c.Negate()} {
				if holdsAll(cand, vs) {
					sum = sum.Add(cand)
					found++
				}
			}
		}
	}
	if found == 0 {
		return types.Vector{}, errors.Wrapf(ErrNotHemisphere, "%d points", len(vs))
	}
	if sum.IsZero() {
		return types.Vector{}, errors.Wrapf(ErrNotHemisphere, "candidate poles cancel out")
	}
	return sum.Normalize(), nil
}

func holdsAll(pole types.Vector, vs []types.Vector) bool {
	for _, v := range vs {
		if pole.Dot(v) < -x.Epsilon {
			return false
		}
	}
	return true
}

// basis returns two unit vectors that complete pole to a right handed
// orthonormal frame. Near the z axis the x axis is used as the reference.
func basis(pole types.Vector) (types.Vector, types.Vector) {
	ref := types.NewVector(0, 0, 1)
	if math.Abs(pole.Dot(ref)) > 0.9 {
		ref = types.NewVector(1, 0, 0)
	}
	e1 := ref.Cross(pole).Normalize()
	e2 := pole.Cross(e1)
	return e1, e2
}
