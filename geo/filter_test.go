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

var (
	mountainView = types.LonLat(-122.082506, 37.4249518)
	farAway      = types.LonLat(-123.082506, 37.4249518)
)

func bayArea(t *testing.T) *types.SimplePolygon {
	return ring(t, types.WGS84, -122, 37, -123, 37, -123, 38, -122, 38)
}

func requireMatches(t *testing.T, f *Filter, g types.Geometry, want bool) {
	t.Helper()
	got, err := f.Matches(g)
	require.NoError(t, err)
	require.Equal(t, want, got, "%s filter on %v", f.Type, g)
}

func TestParseQueryType(t *testing.T) {
	for _, qt := range []QueryType{QueryTypeWithin, QueryTypeContains, QueryTypeIntersects, QueryTypeNear} {
		got, err := ParseQueryType(qt.String())
		require.NoError(t, err)
		require.Equal(t, qt, got)
	}
	_, err := ParseQueryType("touches")
	require.Error(t, err)
}

func TestNewFilterErrors(t *testing.T) {
	_, err := NewFilter(QueryTypeContains, bayArea(t), 0)
	require.Error(t, err)
	_, err = NewFilter(QueryTypeNear, mountainView, 0)
	require.Error(t, err)
	_, err = NewFilter(QueryTypeNear, bayArea(t), 100)
	require.Error(t, err)
	_, err = NewFilter(QueryTypeWithin, line(t, types.WGS84, 0, 0, 1, 1), 0)
	require.Error(t, err)
}

func TestFilterWithin(t *testing.T) {
	f, err := NewFilter(QueryTypeWithin, bayArea(t), 0)
	require.NoError(t, err)
	requireMatches(t, f, mountainView, true)
	requireMatches(t, f, farAway, false)
	// Polygon containment is not answered by within.
	requireMatches(t, f, square(t, types.WGS84, -122.5, 37.5, 0.1), false)

	f, err = NewFilter(QueryTypeWithin, mountainView, 0)
	require.NoError(t, err)
	requireMatches(t, f, types.LonLat(-122.082506, 37.4249518), true)
	requireMatches(t, f, farAway, false)
}

func TestFilterContains(t *testing.T) {
	f, err := NewFilter(QueryTypeContains, mountainView, 0)
	require.NoError(t, err)
	// Points are never returned by contains.
	requireMatches(t, f, mountainView, false)
	requireMatches(t, f, bayArea(t), true)
	requireMatches(t, f, ring(t, types.WGS84, -122, 36, -123, 36, -123, 37, -122, 37), false)
}

func TestFilterIntersects(t *testing.T) {
	f, err := NewFilter(QueryTypeIntersects, mountainView, 0)
	require.NoError(t, err)
	requireMatches(t, f, mountainView, true)
	requireMatches(t, f, farAway, false)
	requireMatches(t, f, bayArea(t), true)

	f, err = NewFilter(QueryTypeIntersects, bayArea(t), 0)
	require.NoError(t, err)
	requireMatches(t, f, mountainView, true)
	requireMatches(t, f, farAway, false)
	// Inside, around, overlapping and apart.
	requireMatches(t, f, ring(t, types.WGS84, -122.1, 37.1, -122.9, 37.1, -122.9, 37.9, -122.1, 37.9), true)
	requireMatches(t, f, ring(t, types.WGS84, -121, 36, -124, 36, -124, 39, -121, 39), true)
	requireMatches(t, f, ring(t, types.WGS84, -121.5, 36.5, -122.5, 36.5, -122.5, 37.5, -121.5, 37.5), true)
	requireMatches(t, f, ring(t, types.WGS84, -120, 35, -121, 35, -121, 36, -120, 36), false)
}

func TestFilterNear(t *testing.T) {
	f, err := NewFilter(QueryTypeNear, mountainView, 1000)
	require.NoError(t, err)
	requireMatches(t, f, mountainView, true)
	requireMatches(t, f, types.LonLat(-122.080668, 37.426753), true)
	requireMatches(t, f, farAway, false)
	requireMatches(t, f, bayArea(t), false)
}

func TestFilterCRSMismatch(t *testing.T) {
	f, err := NewFilter(QueryTypeNear, mountainView, 1000)
	require.NoError(t, err)
	_, err = f.Matches(types.XY(0, 0))
	require.ErrorIs(t, err, types.ErrCRSMismatch)
}
