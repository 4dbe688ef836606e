/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/spatial/types"
)

func TestDistanceCartesian(t *testing.T) {
	sq := square(t, types.Cartesian, 0, 0, 10)
	far := square(t, types.Cartesian, 15, 0, 2)
	inner := square(t, types.Cartesian, 0, 0, 2)
	crossing := line(t, types.Cartesian, -20, 0, 20, 0)
	tests := []struct {
		name string
		a, b types.Geometry
		want float64
	}{
		{"point to point", types.XY(0, 0), types.XY(3, 4), 5},
		{"same point", types.XY(1, 1), types.XY(1, 1), 0},
		{"point inside", sq, types.XY(1, 2), 0},
		{"point on boundary", sq, types.XY(10, 3), 0},
		{"point beyond corner", sq, types.XY(13, 14), 5},
		{"point beside edge", sq, types.XY(12, 0), 2},
		{"polygons apart", sq, far, 3},
		{"nested polygons", sq, inner, 0},
		{"crossing polyline", sq, crossing, 0},
		{"segment to polygon", seg(types.Cartesian, 0, 12, 5, 20), sq, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Distance(tc.a, tc.b)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)

			back, err := Distance(tc.b, tc.a)
			require.NoError(t, err)
			require.Equal(t, got, back)
		})
	}
}

func TestDistanceHigherDimensions(t *testing.T) {
	a := types.MustNewPoint(types.Cartesian, 1, 2, 3)
	b := types.MustNewPoint(types.Cartesian, 4, 6, 15)
	got, err := Distance(a, b)
	require.NoError(t, err)
	require.Equal(t, 13.0, got)

	_, err = Distance(a, types.XY(1, 2))
	require.ErrorIs(t, err, types.ErrDimensionMismatch)
}

func TestDistanceWGS84(t *testing.T) {
	degree := types.EarthRadiusMeters * math.Pi / 180
	got, err := Distance(types.LonLat(0, 0), types.LonLat(1, 0))
	require.NoError(t, err)
	require.InEpsilon(t, degree, got, 1e-9)

	// The closest point of the arc is its middle, not an endpoint.
	arc := seg(types.WGS84, -1, 0, 1, 0)
	got, err = Distance(arc, types.LonLat(0, 1))
	require.NoError(t, err)
	require.InEpsilon(t, degree, got, 1e-9)

	sq := square(t, types.WGS84, 0, 0, 1)
	got, err = Distance(sq, types.LonLat(0.5, 0.5))
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestSegmentPointDistanceDegenerate(t *testing.T) {
	var dc wgs84Distance
	p := types.LonLat(10, 10)
	cases := [][2]types.Point{
		{types.LonLat(0, 0), types.LonLat(0, 0)},
		{types.LonLat(0, 0), types.LonLat(180, 0)},
	}
	for _, c := range cases {
		d := dc.SegmentPointDistance(c[0], c[1], p)
		require.False(t, math.IsNaN(d))
		want, err := dc.PointDistance(c[0], p)
		require.NoError(t, err)
		require.LessOrEqual(t, d, want)
	}

	// p is the pole of the arc's great circle: every point of the arc is 90
	// degrees away.
	d := dc.SegmentPointDistance(types.LonLat(0, 0), types.LonLat(90, 0), types.LonLat(0, 90))
	require.False(t, math.IsNaN(d))
	require.InEpsilon(t, 90*types.EarthRadiusMeters*math.Pi/180, d, 1e-9)
}

func TestSegmentDistance(t *testing.T) {
	got, err := SegmentDistance(seg(types.Cartesian, 0, 0, 1, 0), seg(types.Cartesian, 0, 2, 1, 3))
	require.NoError(t, err)
	require.Equal(t, 2.0, got)

	got, err = SegmentDistance(seg(types.Cartesian, 0, 0, 2, 2), seg(types.Cartesian, 0, 2, 2, 0))
	require.NoError(t, err)
	require.Zero(t, got)

	_, err = SegmentDistance(seg(types.Cartesian, 0, 0, 1, 0), seg(types.WGS84, 0, 0, 1, 0))
	require.ErrorIs(t, err, types.ErrCRSMismatch)
}
