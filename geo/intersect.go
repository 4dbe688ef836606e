/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Algorithm selects the strategy used to intersect two boundaries.
type Algorithm int

const (
	// Naive tests every edge of one geometry against every edge of the other.
	Naive Algorithm = iota
	// MonotoneChainSweep splits both boundaries into x-monotone chains and only
	// tests edges of the two inputs that meet the sweep line together.
	MonotoneChainSweep
)

func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case MonotoneChainSweep:
		return "sweep"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts the names printed by Algorithm.String.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive":
		return Naive, nil
	case "sweep", "mcsweep", "monotone-chain-sweep":
		return MonotoneChainSweep, nil
	}
	return 0, errors.Errorf("unknown intersection algorithm %q", s)
}

// Intersector finds the points shared by the boundaries of two geometries.
// Polygons, polylines and line segments are accepted in any combination.
type Intersector interface {
	// Intersect returns every boundary intersection point, ordered by x then y.
	Intersect(a, b types.Geometry) ([]types.Point, error)
	// Intersects reports whether the boundaries share at least one point. It
	// stops at the first one found.
	Intersects(a, b types.Geometry) (bool, error)
}

// NewIntersector returns the strategy for algo. Both strategies are safe for
// concurrent use; the sweep builds its working state afresh on every call.
func NewIntersector(algo Algorithm) Intersector {
	if algo == MonotoneChainSweep {
		return sweepIntersector{}
	}
	return naiveIntersector{}
}

// Intersect is a shortcut for NewIntersector(algo).Intersect(a, b).
func Intersect(algo Algorithm, a, b types.Geometry) ([]types.Point, error) {
	return NewIntersector(algo).Intersect(a, b)
}

// Intersects is a shortcut for NewIntersector(algo).Intersects(a, b).
func Intersects(algo Algorithm, a, b types.Geometry) (bool, error) {
	return NewIntersector(algo).Intersects(a, b)
}

// query is the input common to both strategies.
type query struct {
	crs  types.CRS
	si   SegmentIntersector
	a, b []path
	// disjoint is set when the boundaries can not meet at all.
	disjoint bool
}

func newQuery(method string, a, b types.Geometry) (*query, error) {
	x.Count(method, x.NumIntersectQueries)
	if err := types.CheckCRS(a, b); err != nil {
		return nil, err
	}
	si, err := SegmentIntersectorFor(a.CRS())
	if err != nil {
		return nil, err
	}
	q := &query{crs: a.CRS(), si: si}
	if q.a, err = boundaryOf(a); err != nil {
		return nil, err
	}
	if q.b, err = boundaryOf(b); err != nil {
		return nil, err
	}
	if q.crs == types.WGS84 {
		q.disjoint = !mayIntersect(a, b)
	}
	return q, nil
}

// pointSet collects intersection points, ignoring points already present
// within the tolerance.
type pointSet struct {
	pts []types.Point
}

func (s *pointSet) add(p types.Point) bool {
	for _, q := range s.pts {
		if q.ApproxEqual2D(p) {
			return false
		}
	}
	s.pts = append(s.pts, p)
	return true
}

func (s *pointSet) len() int { return len(s.pts) }

func (s *pointSet) sorted() []types.Point {
	sort.Slice(s.pts, func(i, j int) bool {
		if s.pts[i].X() != s.pts[j].X() {
			return s.pts[i].X() < s.pts[j].X()
		}
		return s.pts[i].Y() < s.pts[j].Y()
	})
	return s.pts
}

type naiveIntersector struct{}

func (naiveIntersector) Intersect(a, b types.Geometry) ([]types.Point, error) {
	defer x.RecordLatency("naive", time.Now())
	q, err := newQuery("naive", a, b)
	if err != nil {
		return nil, err
	}
	var out pointSet
	q.naive(&out, false)
	return out.sorted(), nil
}

func (naiveIntersector) Intersects(a, b types.Geometry) (bool, error) {
	defer x.RecordLatency("naive", time.Now())
	q, err := newQuery("naive", a, b)
	if err != nil {
		return false, err
	}
	var out pointSet
	q.naive(&out, true)
	return out.len() > 0, nil
}

func (q *query) naive(out *pointSet, first bool) {
	if q.disjoint {
		return
	}
	for _, pa := range q.a {
		for i := 0; i < pa.numEdges(); i++ {
			a1, a2 := pa.edge(i)
			for _, pb := range q.b {
				for j := 0; j < pb.numEdges(); j++ {
					b1, b2 := pb.edge(j)
					if p, ok := q.si.Intersect(a1, a2, b1, b2); ok {
						out.add(p)
						if first {
							return
						}
					}
				}
			}
		}
	}
}
