/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/types"
)

func openStore(t *testing.T) *Store {
	s, err := Open(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func lonLats(coords ...float64) types.PointList {
	var out types.PointList
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, types.LonLat(coords[i], coords[i+1]))
	}
	return out
}

func TestPutAndRead(t *testing.T) {
	s := openStore(t)
	ring := types.PointList{types.XY(0, 0), types.XY(4, 0), types.XY(4, 4), types.XY(0, 4)}
	require.NoError(t, s.Put("square", KindPolygon, ring))

	seq, err := s.Sequence("square")
	require.NoError(t, err)
	require.Equal(t, types.Cartesian, seq.CRS())
	require.Equal(t, 2, seq.Dim())
	require.Equal(t, 4, seq.Len())
	require.Equal(t, KindPolygon, seq.Kind())

	for i := range ring {
		p, err := seq.PointAt(i)
		require.NoError(t, err)
		require.True(t, ring[i].Equal(p))
		// Second read may come from the cache.
		p, err = seq.PointAt(i)
		require.NoError(t, err)
		require.True(t, ring[i].Equal(p))
	}
	_, err = seq.PointAt(4)
	require.Error(t, err)

	g, err := seq.Geometry()
	require.NoError(t, err)
	area, err := geo.Area(g.(types.Polygon))
	require.NoError(t, err)
	require.Equal(t, 16.0, area)
}

func TestHigherDimensions(t *testing.T) {
	s := openStore(t)
	line := types.PointList{
		types.MustNewPoint(types.Cartesian, 0, 0, 0),
		types.MustNewPoint(types.Cartesian, 2, 4, 4),
	}
	require.NoError(t, s.Put("line", KindPolyline, line))
	seq, err := s.Sequence("line")
	require.NoError(t, err)
	require.Equal(t, 3, seq.Dim())
	g, err := seq.Geometry()
	require.NoError(t, err)
	l, err := geo.Length(g)
	require.NoError(t, err)
	require.Equal(t, 6.0, l)
}

func TestTraverseStoredRing(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Put("square", KindPolygon,
		types.PointList{types.XY(0, 0), types.XY(4, 0), types.XY(4, 4), types.XY(0, 4)}))
	seq, err := s.Sequence("square")
	require.NoError(t, err)

	tr, err := seq.Traverse(types.XY(4.1, 0), types.XY(1, 0))
	require.NoError(t, err)
	p, ok, err := geo.ReferenceAlong(tr, 6)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, types.XY(0, 2).ApproxEqual(p), "%v", p)
}

func TestPutErrors(t *testing.T) {
	s := openStore(t)
	require.ErrorIs(t, s.Put("p", KindPolygon, types.PointList{types.XY(0, 0), types.XY(1, 1)}),
		types.ErrTooFewPoints)
	require.ErrorIs(t, s.Put("p", KindPoint, types.PointList{types.XY(0, 0), types.XY(1, 1)}),
		types.ErrTooFewPoints)
	require.ErrorIs(t, s.Put("p", KindPolyline, types.PointList{types.XY(0, 0), types.LonLat(1, 1)}),
		types.ErrCRSMismatch)

	_, err := s.Sequence("p")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceAndDelete(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Put("a", KindPolyline, lonLats(0, 0, 1, 1, 2, 2)))
	require.NoError(t, s.Put("b", KindPoint, lonLats(5, 5)))

	seq, err := s.Sequence("a")
	require.NoError(t, err)
	_, err = seq.PointAt(2)
	require.NoError(t, err)

	require.NoError(t, s.Put("a", KindPolyline, lonLats(10, 10, 11, 11)))
	seq, err = s.Sequence("a")
	require.NoError(t, err)
	require.Equal(t, 2, seq.Len())
	p, err := seq.PointAt(0)
	require.NoError(t, err)
	require.True(t, types.LonLat(10, 10).Equal(p))

	names, err := s.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.Delete("a"))
	require.ErrorIs(t, s.Delete("a"), ErrNotFound)
	names, err = s.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, names)
}

func TestSearch(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Put("mountain-view", KindPoint, lonLats(-122.082506, 37.4249518)))
	require.NoError(t, s.Put("nearby", KindPoint, lonLats(-122.080668, 37.426753)))
	require.NoError(t, s.Put("far", KindPoint, lonLats(-123.082506, 37.4249518)))
	require.NoError(t, s.Put("bay", KindPolygon, lonLats(-122, 37, -123, 37, -123, 38, -122, 38)))
	require.NoError(t, s.Put("south", KindPolygon, lonLats(-122, 36, -123, 36, -123, 36.9, -122, 36.9)))
	require.NoError(t, s.Put("plane", KindPoint, types.PointList{types.XY(-122.08, 37.42)}))

	bay := types.MustNewSimplePolygon(lonLats(-122, 37, -123, 37, -123, 38, -122, 38)...)
	mv := types.LonLat(-122.082506, 37.4249518)
	tests := []struct {
		qt   geo.QueryType
		g    types.Geometry
		dist float64
		want []string
	}{
		{geo.QueryTypeWithin, bay, 0, []string{"mountain-view", "nearby"}},
		{geo.QueryTypeContains, mv, 0, []string{"bay"}},
		{geo.QueryTypeIntersects, mv, 0, []string{"bay", "mountain-view"}},
		{geo.QueryTypeNear, mv, 1000, []string{"mountain-view", "nearby"}},
	}
	for _, tc := range tests {
		t.Run(tc.qt.String(), func(t *testing.T) {
			f, err := geo.NewFilter(tc.qt, tc.g, tc.dist)
			require.NoError(t, err)
			got, err := s.Search(f)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	// Cartesian filters scan and skip geodetic sequences.
	f, err := geo.NewFilter(geo.QueryTypeNear, types.XY(-122, 37), 1)
	require.NoError(t, err)
	got, err := s.Search(f)
	require.NoError(t, err)
	require.Equal(t, []string{"plane"}, got)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindPoint, KindPolyline, KindPolygon} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	_, err := ParseKind("ring")
	require.Error(t, err)
}
