/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/spatial/types"
)

// pts builds 2D points of the given CRS from a flat list of coordinates.
func pts(crs types.CRS, coords ...float64) []types.Point {
	out := make([]types.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, types.MustNewPoint(crs, coords[i], coords[i+1]))
	}
	return out
}

func ring(t *testing.T, crs types.CRS, coords ...float64) *types.SimplePolygon {
	p, err := types.NewSimplePolygon(pts(crs, coords...)...)
	require.NoError(t, err)
	return p
}

func line(t *testing.T, crs types.CRS, coords ...float64) *types.Polyline {
	l, err := types.NewPolyline(pts(crs, coords...)...)
	require.NoError(t, err)
	return l
}

// square returns the axis aligned square with the given center and half width.
func square(t *testing.T, crs types.CRS, cx, cy, half float64) *types.SimplePolygon {
	return ring(t, crs,
		cx-half, cy-half,
		cx+half, cy-half,
		cx+half, cy+half,
		cx-half, cy+half)
}

// star returns a random star shaped (hence simple) polygon around (cx, cy).
func star(t *testing.T, r *rand.Rand, crs types.CRS, cx, cy, radius float64, n int) *types.SimplePolygon {
	coords := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * (float64(i) + 0.8*r.Float64()) / float64(n)
		d := radius * (0.4 + 0.6*r.Float64())
		coords = append(coords, cx+d*math.Cos(a), cy+d*math.Sin(a))
	}
	return ring(t, crs, coords...)
}

// gridStar is star with its vertices snapped to the integer grid, so that
// rings share vertices and edges. It returns nil when snapping leaves fewer than
// three distinct points.
func gridStar(t *testing.T, r *rand.Rand, crs types.CRS, cx, cy, radius float64, n int) *types.SimplePolygon {
	var coords []float64
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * (float64(i) + 0.8*r.Float64()) / float64(n)
		d := radius * (0.4 + 0.6*r.Float64())
		px, py := math.Round(cx+d*math.Cos(a)), math.Round(cy+d*math.Sin(a))
		if k := len(coords); k > 0 && coords[k-2] == px && coords[k-1] == py {
			continue
		}
		coords = append(coords, px, py)
	}
	if k := len(coords); k > 2 && coords[0] == coords[k-2] && coords[1] == coords[k-1] {
		coords = coords[:k-2]
	}
	if len(coords) < 6 {
		return nil
	}
	return ring(t, crs, coords...)
}

// zigzag returns a random polyline running roughly left to right.
func zigzag(t *testing.T, r *rand.Rand, crs types.CRS, x0, y0, width, height float64, n int) *types.Polyline {
	coords := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		coords = append(coords,
			x0+width*(float64(i)+0.5*r.Float64())/float64(n),
			y0+height*(r.Float64()-0.5))
	}
	return line(t, crs, coords...)
}

var pointOpts = []cmp.Option{
	cmp.Comparer(func(a, b types.Point) bool { return a.ApproxEqual2D(b) }),
	cmpopts.EquateEmpty(),
}

func requireSamePoints(t *testing.T, want, got []types.Point) {
	t.Helper()
	if diff := cmp.Diff(want, got, pointOpts...); diff != "" {
		t.Fatalf("point sets differ (-want +got):\n%s", diff)
	}
}
