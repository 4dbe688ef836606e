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

func TestWithinSimplePolygon(t *testing.T) {
	sq := square(t, types.Cartesian, 0, 0, 10)
	tests := []struct {
		name string
		pt   types.Point
		want bool
	}{
		{"center", types.XY(0, 0), true},
		{"outside", types.XY(20, 0), false},
		{"on edge", types.XY(10, 0), true},
		{"on vertex", types.XY(10, 10), true},
		{"just outside", types.XY(10.001, 0), false},
		{"level with vertex", types.XY(-20, 10), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Within(sq, tc.pt)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWithinConcave(t *testing.T) {
	// A U shape opening upwards.
	u := ring(t, types.Cartesian, 0, 0, 6, 0, 6, 6, 4, 6, 4, 2, 2, 2, 2, 6, 0, 6)
	for pt, want := range map[[2]float64]bool{
		{1, 5}: true,
		{5, 5}: true,
		{3, 5}: false,
		{3, 1}: true,
		{3, 2}: true,
	} {
		got, err := Within(u, types.XY(pt[0], pt[1]))
		require.NoError(t, err)
		require.Equal(t, want, got, "%v", pt)
	}
}

func TestWithinMultiPolygon(t *testing.T) {
	mp, err := BuildMultiPolygon(
		square(t, types.Cartesian, 0, 0, 10),
		square(t, types.Cartesian, 0, 0, 5),
		square(t, types.Cartesian, 30, 0, 2))
	require.NoError(t, err)

	for pt, want := range map[[2]float64]bool{
		{0, 0}:  false, // in the hole
		{7, 0}:  true,
		{5, 0}:  true, // on the hole ring
		{30, 1}: true,
		{20, 0}: false,
	} {
		got, err := Within(mp, types.XY(pt[0], pt[1]))
		require.NoError(t, err)
		require.Equal(t, want, got, "%v", pt)
	}

	// An island inside the hole.
	_, err = mp.Insert(square(t, types.Cartesian, 0, 0, 2))
	require.NoError(t, err)
	got, err := Within(mp, types.XY(0, 0))
	require.NoError(t, err)
	require.True(t, got)
	got, err = Within(mp, types.XY(3, 3))
	require.NoError(t, err)
	require.False(t, got)
}

func TestWithinWGS84(t *testing.T) {
	sq := square(t, types.WGS84, 12, 45, 0.5)
	got, err := Within(sq, types.LonLat(12.1, 45.2))
	require.NoError(t, err)
	require.True(t, got)
	got, err = Within(sq, types.LonLat(13, 45))
	require.NoError(t, err)
	require.False(t, got)
}

func TestWithinCRSMismatch(t *testing.T) {
	_, err := Within(square(t, types.Cartesian, 0, 0, 1), types.LonLat(0, 0))
	require.ErrorIs(t, err, types.ErrCRSMismatch)
}
