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

func TestMultiPolygonDisjointRoots(t *testing.T) {
	var polys []*types.SimplePolygon
	for i := 0; i < 5; i++ {
		polys = append(polys, square(t, types.Cartesian, float64(10*i), 0, 2))
	}
	mp, err := BuildMultiPolygon(polys...)
	require.NoError(t, err)
	require.Equal(t, 5, mp.Len())
	require.Len(t, mp.Roots(), 5)
	for _, id := range mp.Roots() {
		require.Equal(t, types.Shell, mp.Kind(id))
		require.Equal(t, -1, mp.Parent(id))
		require.Empty(t, mp.Children(id))
	}
	require.Empty(t, mp.Holes())
}

func TestMultiPolygonNesting(t *testing.T) {
	// Inserted inside out, so every insertion has to adopt the previous root.
	mp, err := BuildMultiPolygon(
		square(t, types.Cartesian, 0, 0, 1),
		square(t, types.Cartesian, 0, 0, 5),
		square(t, types.Cartesian, 0, 0, 10),
		square(t, types.Cartesian, 0, 0, 20))
	require.NoError(t, err)

	require.Equal(t, []int{4}, mp.Roots())
	require.Equal(t, []int{3}, mp.Children(4))
	require.Equal(t, []int{2}, mp.Children(3))
	require.Equal(t, []int{1}, mp.Children(2))
	require.Equal(t, types.Shell, mp.Kind(4))
	require.Equal(t, types.Hole, mp.Kind(3))
	require.Equal(t, types.Shell, mp.Kind(2))
	require.Equal(t, types.Hole, mp.Kind(1))

	area, err := Area(mp)
	require.NoError(t, err)
	require.InDelta(t, 1600-400+100-4, area, 1e-9)
}

func TestMultiPolygonAdoptsSiblings(t *testing.T) {
	mp, err := NewMultiPolygon(types.Cartesian)
	require.NoError(t, err)
	a, err := mp.Insert(square(t, types.Cartesian, -3, 0, 1))
	require.NoError(t, err)
	b, err := mp.Insert(square(t, types.Cartesian, 3, 0, 1))
	require.NoError(t, err)
	outer, err := mp.Insert(square(t, types.Cartesian, 0, 0, 10))
	require.NoError(t, err)

	require.Equal(t, []int{outer}, mp.Roots())
	require.ElementsMatch(t, []int{a, b}, mp.Children(outer))
	require.Equal(t, outer, mp.Parent(a))
	require.Equal(t, types.Hole, mp.Kind(a))
	require.Equal(t, types.Hole, mp.Kind(b))
	require.Len(t, mp.Polygons(), 1)
	require.Len(t, mp.Polygons()[0], 3)
}

func TestMultiPolygonErrors(t *testing.T) {
	_, err := BuildMultiPolygon()
	require.ErrorIs(t, err, types.ErrTooFewPoints)

	_, err = BuildMultiPolygon(square(t, types.Cartesian, 0, 0, 1), square(t, types.WGS84, 0, 0, 1))
	require.ErrorIs(t, err, types.ErrCRSMismatch)
}

func TestParseWKT(t *testing.T) {
	g, err := ParseWKT(types.Cartesian, "POINT (1 2)")
	require.NoError(t, err)
	require.True(t, types.XY(1, 2).Equal(g.(types.Point)))

	g, err = ParseWKT(types.WGS84, "LINESTRING (0 0, 1 1, 2 0)")
	require.NoError(t, err)
	require.Equal(t, 3, g.(*types.Polyline).Len())
	require.Equal(t, types.WGS84, g.CRS())

	g, err = ParseWKT(types.Cartesian, "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))")
	require.NoError(t, err)
	require.IsType(t, &types.SimplePolygon{}, g)

	g, err = ParseWKT(types.Cartesian,
		"POLYGON ((-10 -10, 10 -10, 10 10, -10 10, -10 -10), (-5 -5, -5 5, 5 5, 5 -5, -5 -5))")
	require.NoError(t, err)
	mp := g.(*types.MultiPolygon)
	require.Len(t, mp.Shells(), 1)
	require.Len(t, mp.Holes(), 1)
	area, err := Area(mp)
	require.NoError(t, err)
	require.Equal(t, 300.0, area)

	// The grouping of the text is not trusted: the second polygon lies in
	// the hole of the first and becomes an island.
	g, err = ParseWKT(types.Cartesian, "MULTIPOLYGON (((-10 -10, 10 -10, 10 10, -10 10, -10 -10), "+
		"(-5 -5, -5 5, 5 5, 5 -5, -5 -5)), ((-1 -1, 1 -1, 1 1, -1 1, -1 -1)))")
	require.NoError(t, err)
	mp = g.(*types.MultiPolygon)
	require.Len(t, mp.Roots(), 1)
	require.Len(t, mp.Shells(), 2)
	in, err := Within(mp, types.XY(0, 0))
	require.NoError(t, err)
	require.True(t, in)

	g, err = ParseWKT(types.Cartesian, "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3, 4 4))")
	require.NoError(t, err)
	require.Len(t, g.(*types.MultiPolyline).Lines(), 2)
}

func TestParseWKTErrors(t *testing.T) {
	_, err := ParseWKT(types.Cartesian, "POLYGON ((0 0, 1 1")
	require.Error(t, err)
	_, err = ParseWKT(types.Cartesian, "MULTIPOINT ((0 0), (1 1))")
	require.ErrorIs(t, err, types.ErrUnsupportedGeometry)
}

func TestParsePoints(t *testing.T) {
	got, err := ParsePoints(types.Cartesian, "MULTIPOINT ((0 0), (1 1), (2 0))")
	require.NoError(t, err)
	requireSamePoints(t, pts(types.Cartesian, 0, 0, 1, 1, 2, 0), got)

	got, err = ParsePoints(types.WGS84, "POLYGON ((0 0, 4 0, 4 4, 0 0))")
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, types.WGS84, got[0].CRS())
}
