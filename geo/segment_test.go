/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/spatial/types"
)

func seg(crs types.CRS, x1, y1, x2, y2 float64) types.LineSegment {
	return types.MustNewLineSegment(types.MustNewPoint(crs, x1, y1), types.MustNewPoint(crs, x2, y2))
}

func TestCartesianSegmentIntersection(t *testing.T) {
	tests := []struct {
		name   string
		s1, s2 types.LineSegment
		want   types.Point
		ok     bool
	}{
		{"crossing diagonals", seg(types.Cartesian, 0, 0, 10, 10), seg(types.Cartesian, 0, 10, 10, 0),
			types.XY(5, 5), true},
		{"parallel apart", seg(types.Cartesian, 0, 0, 10, 10), seg(types.Cartesian, 0, 1, 10, 11),
			types.Point{}, false},
		{"collinear overlap", seg(types.Cartesian, 0, 0, 4, 0), seg(types.Cartesian, 6, 0, 2, 0),
			types.XY(2, 0), true},
		{"collinear disjoint", seg(types.Cartesian, 0, 0, 1, 1), seg(types.Cartesian, 2, 2, 3, 3),
			types.Point{}, false},
		{"vertical and horizontal", seg(types.Cartesian, 2, -1, 2, 3), seg(types.Cartesian, 0, 1, 5, 1),
			types.XY(2, 1), true},
		{"horizontal and vertical", seg(types.Cartesian, 0, 1, 5, 1), seg(types.Cartesian, 2, -1, 2, 3),
			types.XY(2, 1), true},
		{"vertical misses", seg(types.Cartesian, 2, 2, 2, 3), seg(types.Cartesian, 0, 1, 5, 1),
			types.Point{}, false},
		{"both vertical overlap", seg(types.Cartesian, 1, 0, 1, 5), seg(types.Cartesian, 1, 8, 1, 3),
			types.XY(1, 3), true},
		{"both vertical apart", seg(types.Cartesian, 1, 0, 1, 5), seg(types.Cartesian, 2, 0, 2, 5),
			types.Point{}, false},
		{"shared endpoint", seg(types.Cartesian, 0, 0, 1, 1), seg(types.Cartesian, 1, 1, 2, 0),
			types.XY(1, 1), true},
		{"touching", seg(types.Cartesian, 0, 0, 4, 0), seg(types.Cartesian, 2, 0, 2, 3),
			types.XY(2, 0), true},
		{"disjoint", seg(types.Cartesian, 0, 0, 1, 0), seg(types.Cartesian, 0, 1, 1, 2),
			types.Point{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok, err := IntersectSegments(tc.s1, tc.s2)
			require.NoError(t, err)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.Equal(t, tc.want, p)
			}

			// The test is symmetric.
			q, ok, err := IntersectSegments(tc.s2, tc.s1)
			require.NoError(t, err)
			require.Equal(t, tc.ok, ok)
			if ok {
				require.True(t, q.ApproxEqual2D(tc.want), "got %v", q)
			}
		})
	}
}

func TestWGS84SegmentIntersection(t *testing.T) {
	p, ok, err := IntersectSegments(seg(types.WGS84, -10, 0, 10, 0), seg(types.WGS84, 0, -10, 0, 10))
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 0, p.X(), 1e-9)
	require.InDelta(t, 0, p.Y(), 1e-9)

	// Away from the origin the antipodal candidate must be rejected.
	p, ok, err = IntersectSegments(seg(types.WGS84, 95, -5, 105, 5), seg(types.WGS84, 95, 5, 105, -5))
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, 100, p.X(), 1e-9)
	require.InDelta(t, 0, p.Y(), 1e-9)
	require.Equal(t, types.WGS84, p.CRS())

	// Great circles meet, arcs do not.
	_, ok, err = IntersectSegments(seg(types.WGS84, 0, 0, 10, 0), seg(types.WGS84, 20, -5, 20, 5))
	require.NoError(t, err)
	require.False(t, ok)

	// Shared endpoints come back exactly.
	p, ok, err = IntersectSegments(seg(types.WGS84, 1.5, 2.5, 3, 4), seg(types.WGS84, 3, 4, 7, 1))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, types.LonLat(3, 4), p)
}

func TestSegmentIntersectionCRSMismatch(t *testing.T) {
	_, _, err := IntersectSegments(seg(types.WGS84, 0, 0, 1, 1), seg(types.Cartesian, 0, 1, 1, 0))
	require.ErrorIs(t, err, types.ErrCRSMismatch)
}
