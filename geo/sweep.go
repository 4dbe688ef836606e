/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"container/heap"
	"math"
	"time"

	"github.com/golang/glog"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

type sweepIntersector struct{}

func (sweepIntersector) Intersect(a, b types.Geometry) ([]types.Point, error) {
	defer x.RecordLatency("sweep", time.Now())
	q, err := newQuery("sweep", a, b)
	if err != nil {
		return nil, err
	}
	var out pointSet
	if err := q.sweep(&out, false); err != nil {
		return nil, err
	}
	return out.sorted(), nil
}

func (sweepIntersector) Intersects(a, b types.Geometry) (bool, error) {
	defer x.RecordLatency("sweep", time.Now())
	q, err := newQuery("sweep", a, b)
	if err != nil {
		return false, err
	}
	var out pointSet
	if err := q.sweep(&out, true); err != nil {
		return false, err
	}
	return out.len() > 0, nil
}

func (q *query) fallback(out *pointSet, first bool, reason string) {
	glog.V(2).Infof("Falling back to naive intersection: %s", reason)
	x.Count("sweep", x.NumSweepFallbacks)
	q.naive(out, first)
}

func (q *query) sweep(out *pointSet, first bool) error {
	if q.disjoint {
		return nil
	}
	// Geodetic boundaries are swept along longitude, which is monotone on every
	// arc that is not a meridian.
	var angle float64
	if q.crs == types.WGS84 {
		if reason := sweepHazard(q.a, q.b); reason != "" {
			q.fallback(out, first, reason)
			return nil
		}
	} else {
		var err error
		if angle, err = sweepDirection(q.a, q.b); err != nil {
			glog.Warningf("No usable sweep direction: %v", err)
			return err
		}
	}
	if glog.V(2) {
		glog.Infof("Sweeping %s boundaries at %.6f rad", q.crs, angle)
	}
	s := newSweepState(q, angle, out, first)
	s.run()
	return nil
}

// sweepSlack widens every x comparison of the sweep, relative to the extent of
// the input. It only adds candidate pairs; the pairwise test decides.
const sweepSlack = 1e-9

// sweepState is everything one sweep mutates. It is built for a single call
// and thrown away afterwards.
type sweepState struct {
	si    SegmentIntersector
	rot   x.Rotation
	edges []edgeRef
	// verticals are meridian edges, kept out of the chains and checked in a
	// final linear pass.
	verticals []int

	acl activeChains
	// scl holds the chains the sweep has reached, until their last vertex
	// falls behind the sweep line by more than slack.
	scl []*chain
	// Chains with an id below splitID come from the first geometry.
	splitID int
	sweepX  float64
	slack   float64

	out   *pointSet
	first bool
	done  bool
}

func newSweepState(q *query, angle float64, out *pointSet, first bool) *sweepState {
	s := &sweepState{si: q.si, rot: x.NewRotation(angle), out: out, first: first}
	isVertical := func(a, b types.Point) bool { return false }
	if q.crs == types.WGS84 {
		isVertical = func(a, b types.Point) bool { return a.X() == b.X() }
	}

	var chains []*chain
	add := func(paths []path, fromA bool) {
		for _, p := range paths {
			p = dedupe(p)
			if p.numEdges() < 1 {
				continue
			}
			firstEdge := len(s.edges)
			for i := 0; i < p.numEdges(); i++ {
				a, b := p.edge(i)
				s.edges = append(s.edges, edgeRef{a: a, b: b, fromA: fromA})
			}
			runs, verticals := partition(p, s.rot, firstEdge, isVertical)
			s.verticals = append(s.verticals, verticals...)
			for _, r := range runs {
				chains = append(chains, newChain(len(chains), r, s.edges, s.rot))
			}
		}
	}
	add(q.a, true)
	s.splitID = len(chains)
	add(q.b, false)

	extent := 1.0
	s.acl = make(activeChains, 0, len(chains))
	for _, c := range chains {
		for _, v := range c.verts {
			extent = math.Max(extent, math.Max(math.Abs(v.x), math.Abs(v.y)))
		}
		s.acl = append(s.acl, c)
		c.heapIdx = len(s.acl) - 1
	}
	s.slack = sweepSlack * extent
	heap.Init(&s.acl)
	return s
}

// dedupe drops consecutive repeated points.
func dedupe(p path) path {
	out := path{closed: p.closed, points: make([]types.Point, 0, len(p.points))}
	for _, pt := range p.points {
		if n := len(out.points); n > 0 && out.points[n-1].ApproxEqual2D(pt) {
			continue
		}
		out.points = append(out.points, pt)
	}
	return out
}

func (s *sweepState) fromA(c *chain) bool { return c.id < s.splitID }

// run visits every chain vertex in x order. Each visit either puts a chain on
// the sweep line, moves it to its next edge or ends it; a new current edge is
// tested against the other input right away.
func (s *sweepState) run() {
	for s.acl.Len() > 0 && !s.done {
		c := heap.Pop(&s.acl).(*chain)
		v := c.nextVertex()
		s.sweepX = v.x
		s.retire()
		switch v.kind {
		case leftmost:
			c.next = 1
			s.scl = append(s.scl, c)
			s.checkCurrent(c)
			heap.Push(&s.acl, c)
		case rightmost:
			c.ended = true
		default:
			c.next++
			s.checkCurrent(c)
			heap.Push(&s.acl, c)
		}
	}
	if !s.done {
		s.checkVerticals()
	}
}

// retire drops ended chains that lie entirely behind the sweep line.
func (s *sweepState) retire() {
	kept := s.scl[:0]
	for _, c := range s.scl {
		if c.ended && c.lastX() < s.sweepX-s.slack {
			continue
		}
		kept = append(kept, c)
	}
	for i := len(kept); i < len(s.scl); i++ {
		s.scl[i] = nil
	}
	s.scl = kept
}

// checkCurrent tests the current edge of c against every edge of the other
// input that has been reached and still overlaps it in x. Edges reached later
// test themselves against c when their turn comes.
func (s *sweepState) checkCurrent(c *chain) {
	lo, hi := c.verts[c.next-1].x, c.verts[c.next].x
	ec := c.currentEdge()
	for _, d := range s.scl {
		if s.fromA(d) == s.fromA(c) {
			continue
		}
		for j := d.next - 1; j >= 0; j-- {
			if d.verts[j+1].x < lo-s.slack {
				break
			}
			if d.verts[j].x > hi+s.slack {
				continue
			}
			if s.check(ec, d.verts[j].edge) {
				return
			}
		}
	}
}

// check runs the pairwise test on two original edges, the first input's edge
// first. It reports whether the sweep is done.
func (s *sweepState) check(i, j int) bool {
	if s.done {
		return true
	}
	r1, r2 := s.edges[i], s.edges[j]
	if !r1.fromA {
		r1, r2 = r2, r1
	}
	if p, ok := s.si.Intersect(r1.a, r1.b, r2.a, r2.b); ok {
		s.out.add(p)
		s.done = s.first
	}
	return s.done
}

func (s *sweepState) checkVerticals() {
	for _, vi := range s.verticals {
		for j, r := range s.edges {
			if j == vi || r.fromA == s.edges[vi].fromA {
				continue
			}
			if s.check(vi, j) {
				return
			}
		}
	}
}
