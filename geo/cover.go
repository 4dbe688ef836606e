/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"sort"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
)

const (
	// MinCellLevel is the smallest cell level (largest cell size) used for covers.
	MinCellLevel = 5 // Approx 250km x 380km
	// MaxCellLevel is the largest cell level (smallest cell size) used for covers.
	MaxCellLevel = 16 // Approx 120m x 180m
	// MaxCells is the maximum number of cells to use when covering regions.
	MaxCells = 18
)

// Cover returns the S2 cells covering a WGS84 geometry. Polygons are covered
// by their outer shells only. The cell tokens work as index terms for the
// geometry.
func Cover(g types.Geometry) (s2.CellUnion, error) {
	if g.CRS() != types.WGS84 {
		return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "cell cover of %s geometry", g.CRS())
	}
	if p, ok := g.(types.Point); ok {
		c := s2.CellIDFromLatLng(s2.LatLngFromDegrees(p.Y(), p.X()))
		return s2.CellUnion{c.Parent(MaxCellLevel)}, nil
	}
	regions, err := regionsOf(g)
	if err != nil {
		return nil, err
	}
	rc := newCoverer()
	var cu s2.CellUnion
	for _, r := range regions {
		cu = append(cu, rc.Covering(r)...)
	}
	cu.Normalize()
	// Normalize may merge siblings above MinCellLevel.
	cu.Denormalize(MinCellLevel, 1)
	return cu, nil
}

// CoverCap returns the cells covering every point within meters of center.
func CoverCap(center types.Point, meters float64) (s2.CellUnion, error) {
	if center.CRS() != types.WGS84 {
		return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "cell cover of %s geometry", center.CRS())
	}
	c := s2.CapFromCenterAngle(pointFromCoord(center), types.EarthAngle(meters))
	return newCoverer().Covering(c), nil
}

// WithParents returns the cells of cu together with all their ancestors down
// to MinCellLevel. Overlapping covers always share a cell of their parent
// closures, which makes the closure usable as a set of index terms.
func WithParents(cu s2.CellUnion) s2.CellUnion {
	seen := make(map[s2.CellID]bool)
	var out s2.CellUnion
	for _, c := range cu {
		for l := c.Level(); l >= MinCellLevel; l-- {
			p := c.Parent(l)
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Tokens returns the tokens of the cells in cu, each prefixed with prefix.
func Tokens(cu s2.CellUnion, prefix string) []string {
	toks := make([]string, len(cu))
	for i, c := range cu {
		toks[i] = prefix + c.ToToken()
	}
	return toks
}

func newCoverer() *s2.RegionCoverer {
	return &s2.RegionCoverer{
		MinLevel: MinCellLevel,
		MaxLevel: MaxCellLevel,
		LevelMod: 0,
		MaxCells: MaxCells,
	}
}

func regionsOf(g types.Geometry) ([]s2.Region, error) {
	switch t := g.(type) {
	case types.LineSegment:
		return []s2.Region{polylineOf(t.Points())}, nil
	case *types.Polyline:
		return []s2.Region{polylineOf(t.Points())}, nil
	case *types.MultiPolyline:
		var out []s2.Region
		for _, l := range t.Lines() {
			out = append(out, polylineOf(l.Points()))
		}
		return out, nil
	case *types.SimplePolygon:
		return []s2.Region{loopFromRing(t)}, nil
	case *types.MultiPolygon:
		var out []s2.Region
		for _, id := range t.Roots() {
			out = append(out, loopFromRing(t.Polygon(id)))
		}
		return out, nil
	}
	return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "cell cover of %T", g)
}

func pointFromCoord(p types.Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Y(), p.X()))
}

func polylineOf(pts []types.Point) *s2.Polyline {
	out := make(s2.Polyline, 0, len(pts))
	for _, p := range pts {
		out = append(out, pointFromCoord(p))
	}
	return &out
}

// loopFromRing converts a ring to an s2 loop. S2 wants loops counter-clockwise
// with the interior on the left. Rings are assumed to be smaller than a
// hemisphere: the planar orientation test is only an approximation, so a loop
// whose cap comes out larger than a hemisphere is reversed.
func loopFromRing(r *types.SimplePolygon) *s2.Loop {
	ccw := r.IsCCW()
	l := s2.LoopFromPoints(ringPoints(r, !ccw))
	if l.CapBound().Radius().Degrees() > 90 {
		l = s2.LoopFromPoints(ringPoints(r, ccw))
	}
	return l
}

// ringPoints returns the distinct vertices of r without the closing point, in
// reverse order when asked.
func ringPoints(r *types.SimplePolygon, reverse bool) []s2.Point {
	n := r.Len() - 1
	pts := make([]s2.Point, 0, n)
	for i := 0; i < n; i++ {
		j := i
		if reverse {
			j = n - 1 - i
		}
		p := pointFromCoord(r.Point(j))
		if len(pts) > 0 && pts[len(pts)-1].ApproxEqual(p) {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

// boundsOf returns a latitude/longitude rectangle containing the boundary of
// a WGS84 geometry, padded by a few centimeters.
func boundsOf(g types.Geometry) (s2.Rect, error) {
	paths, err := boundaryOf(g)
	if err != nil {
		return s2.EmptyRect(), err
	}
	r := s2.EmptyRect()
	for _, p := range paths {
		r = r.Union(polylineOf(p.points).RectBound())
	}
	return padded(r, types.EarthAngle(0.05).Radians()), nil
}

// padded grows r by at least m radians of arc on every side. Latitudes are
// clamped to the poles, and longitudes are padded more the closer r gets to one.
func padded(r s2.Rect, m float64) s2.Rect {
	lat := r.Lat.Expanded(m).Intersection(r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2})
	lng := s1.FullInterval()
	if c := math.Cos(math.Max(math.Abs(lat.Lo), math.Abs(lat.Hi))); c > m {
		lng = r.Lng.Expanded(m / c)
	}
	return s2.Rect{Lat: lat, Lng: lng}.PolarClosure()
}

// mayIntersect is a quick reject for geodetic intersection queries: boundaries
// whose bounding rectangles are disjoint can not share a point.
func mayIntersect(a, b types.Geometry) bool {
	ra, err := boundsOf(a)
	if err != nil {
		return true
	}
	rb, err := boundsOf(b)
	if err != nil {
		return true
	}
	return ra.Intersects(rb)
}
