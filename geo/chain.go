/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

type vertexKind int

const (
	leftmost vertexKind = iota
	internal
	rightmost
)

func (k vertexKind) String() string {
	switch k {
	case leftmost:
		return "leftmost"
	case internal:
		return "internal"
	default:
		return "rightmost"
	}
}

// vertex is a chain vertex in rotated coordinates. edge indexes the original
// input edge that starts at this vertex within the chain; the last vertex of
// a chain has no edge.
type vertex struct {
	x, y float64
	kind vertexKind
	edge int
}

// chain is a run of edges that is strictly monotone in rotated x, stored left
// to right.
type chain struct {
	id    int
	verts []vertex
	// next is the index of the next vertex the sweep will visit. While the
	// chain is on the sweep line its current edge is verts[next-1]..verts[next].
	next    int
	heapIdx int
	// ended is set once the sweep has passed the rightmost vertex.
	ended bool
}

func (c *chain) nextVertex() vertex { return c.verts[c.next] }

func (c *chain) currentEdge() int { return c.verts[c.next-1].edge }

// lastX is the largest x the chain reaches.
func (c *chain) lastX() float64 { return c.verts[len(c.verts)-1].x }

// edgeRef is one original input edge. The pairwise test always runs on these
// coordinates so that both strategies compute bit-identical points.
type edgeRef struct {
	a, b  types.Point
	fromA bool
}

// sweepDirection picks the sweep angle. Rotating by it must not leave any edge
// vertical, so the direction perpendicular to the sweep is placed in the middle
// of the widest gap between edge directions.
func sweepDirection(paths ...[]path) (float64, error) {
	var angles []float64
	for _, ps := range paths {
		for _, p := range ps {
			for i := 0; i < p.numEdges(); i++ {
				a, b := p.edge(i)
				dx, dy := b.X()-a.X(), b.Y()-a.Y()
				if dx == 0 && dy == 0 {
					continue
				}
				angles = append(angles, x.NormalizeAngle(math.Atan2(dy, dx)))
			}
		}
	}
	if len(angles) == 0 {
		return 0, nil
	}
	sort.Float64s(angles)
	bestGap, bestMid := -1.0, 0.0
	for i := range angles {
		var gap, mid float64
		if i == len(angles)-1 {
			gap = angles[0] + math.Pi - angles[i]
		} else {
			gap = angles[i+1] - angles[i]
		}
		mid = angles[i] + gap/2
		if gap > bestGap {
			bestGap, bestMid = gap, mid
		}
	}
	if bestGap < minSweepGap {
		return 0, errors.Wrapf(ErrNoSweepAngle, "%d edge directions, widest gap %g", len(angles), bestGap)
	}
	// bestMid is the direction that must become vertical.
	return x.NormalizeAngle(bestMid - math.Pi/2), nil
}

const minSweepGap = 1e-9

// monotoneRun is a maximal run of edges whose rotated x direction does not
// change. edges are listed left to right; forward tells whether that is also
// the order of the path.
type monotoneRun struct {
	edges   []int
	forward bool
}

// partition splits one boundary path into monotone runs. Edges for which
// isVertical returns true are left out and reported separately. For a closed
// path the last and first runs are joined when they go the same way.
func partition(p path, rot x.Rotation, firstEdge int, isVertical func(a, b types.Point) bool) ([]monotoneRun, []int) {
	var runs []monotoneRun
	var verticals []int
	open := false
	for i := 0; i < p.numEdges(); i++ {
		a, b := p.edge(i)
		if isVertical(a, b) {
			verticals = append(verticals, firstEdge+i)
			open = false
			continue
		}
		ax, _ := rot.Apply(a.X(), a.Y())
		bx, _ := rot.Apply(b.X(), b.Y())
		forward := bx > ax
		if bx == ax && open {
			forward = runs[len(runs)-1].forward
		}
		if !open || runs[len(runs)-1].forward != forward {
			runs = append(runs, monotoneRun{forward: forward})
			open = true
		}
		r := &runs[len(runs)-1]
		r.edges = append(r.edges, firstEdge+i)
	}
	if p.closed && len(runs) > 1 {
		first, last := runs[0], runs[len(runs)-1]
		if first.forward == last.forward && first.edges[0] == firstEdge &&
			last.edges[len(last.edges)-1] == firstEdge+p.numEdges()-1 {
			runs[0].edges = append(append([]int{}, last.edges...), first.edges...)
			runs = runs[:len(runs)-1]
		}
	}
	for _, r := range runs {
		if !r.forward {
			for i, j := 0, len(r.edges)-1; i < j; i, j = i+1, j-1 {
				r.edges[i], r.edges[j] = r.edges[j], r.edges[i]
			}
		}
	}
	return runs, verticals
}

// newChain builds the left-to-right chain of a monotone run.
func newChain(id int, r monotoneRun, refs []edgeRef, rot x.Rotation) *chain {
	c := &chain{id: id, heapIdx: -1}
	c.verts = make([]vertex, 0, len(r.edges)+1)
	add := func(p types.Point, kind vertexKind, edge int) {
		px, py := rot.Apply(p.X(), p.Y())
		c.verts = append(c.verts, vertex{x: px, y: py, kind: kind, edge: edge})
	}
	for i, e := range r.edges {
		kind := internal
		if i == 0 {
			kind = leftmost
		}
		if r.forward {
			add(refs[e].a, kind, e)
		} else {
			add(refs[e].b, kind, e)
		}
	}
	last := refs[r.edges[len(r.edges)-1]]
	if r.forward {
		add(last.b, rightmost, -1)
	} else {
		add(last.a, rightmost, -1)
	}
	return c
}

// activeChains is the ACL: a min-heap of chains keyed by the position of
// their next vertex.
type activeChains []*chain

func (h activeChains) Len() int { return len(h) }

func (h activeChains) Less(i, j int) bool {
	a, b := h[i].nextVertex(), h[j].nextVertex()
	if a.x != b.x {
		return a.x < b.x
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return h[i].id < h[j].id
}

func (h activeChains) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}

func (h *activeChains) Push(v interface{}) {
	c := v.(*chain)
	c.heapIdx = len(*h)
	*h = append(*h, c)
}

func (h *activeChains) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.heapIdx = -1
	*h = old[:n-1]
	return c
}
