/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// NodeKind tells whether a multipolygon node is a shell or a hole.
type NodeKind int

const (
	Shell NodeKind = iota
	Hole
)

func (k NodeKind) String() string {
	if k == Shell {
		return "shell"
	}
	return "hole"
}

func (k NodeKind) opposite() NodeKind {
	if k == Shell {
		return Hole
	}
	return Shell
}

// PointInPolygon answers the containment questions the nesting tree needs. The
// geo package provides CRS specific implementations.
type PointInPolygon interface {
	// Within reports whether pt lies inside poly or on its boundary.
	Within(poly *SimplePolygon, pt Point) bool
	// OnBoundary reports whether pt lies on one of poly's edges.
	OnBoundary(poly *SimplePolygon, pt Point) bool
}

// rootID is the virtual root. It has no polygon and counts as a hole, so the
// outermost polygons are shells.
const rootID = 0

type mpNode struct {
	poly     *SimplePolygon
	kind     NodeKind
	parent   int
	children []int
}

type rootEntry struct {
	id   int
	rect rtreego.Rect
}

func (e *rootEntry) Bounds() rtreego.Rect {
	return e.rect
}

// MultiPolygon is a nesting tree of simple polygons. Every node's polygon
// contains the polygons of all its descendants and node kinds alternate between
// shell and hole with depth. Nodes live in an arena and refer to each other by
// index, so re-parenting during insertion is O(1) per node.
//
// The tree only grows, through Insert. It must not be mutated concurrently.
type MultiPolygon struct {
	crs    CRS
	dim    int
	within PointInPolygon
	nodes  []mpNode

	// roots indexes the envelopes of the outermost shells, which is where an
	// insertion starts looking.
	roots   *rtreego.Rtree
	entries map[int]*rootEntry
}

// NewMultiPolygon returns an empty tree for polygons of the given CRS.
func NewMultiPolygon(crs CRS, within PointInPolygon) *MultiPolygon {
	return &MultiPolygon{
		crs:     crs,
		within:  within,
		nodes:   []mpNode{{kind: Hole, parent: -1}},
		roots:   rtreego.NewTree(2, 25, 50),
		entries: make(map[int]*rootEntry),
	}
}

func (m *MultiPolygon) CRS() CRS { return m.crs }
func (m *MultiPolygon) Dim() int { return m.dim }

// Len returns the number of polygons in the tree.
func (m *MultiPolygon) Len() int { return len(m.nodes) - 1 }

// Roots returns the ids of the outermost shells.
func (m *MultiPolygon) Roots() []int {
	return append([]int(nil), m.nodes[rootID].children...)
}

// Children returns the ids of the polygons directly nested in node id.
func (m *MultiPolygon) Children(id int) []int {
	return append([]int(nil), m.nodes[id].children...)
}

// Parent returns the id of the enclosing node, or -1 for a root shell.
func (m *MultiPolygon) Parent(id int) int {
	if p := m.nodes[id].parent; p != rootID {
		return p
	}
	return -1
}

// Kind returns whether node id is a shell or a hole.
func (m *MultiPolygon) Kind(id int) NodeKind { return m.nodes[id].kind }

// Polygon returns the polygon of node id.
func (m *MultiPolygon) Polygon(id int) *SimplePolygon { return m.nodes[id].poly }

// Shells returns every shell polygon in insertion order.
func (m *MultiPolygon) Shells() []*SimplePolygon { return m.ofKind(Shell) }

// Holes returns every hole polygon in insertion order.
func (m *MultiPolygon) Holes() []*SimplePolygon { return m.ofKind(Hole) }

func (m *MultiPolygon) ofKind(k NodeKind) []*SimplePolygon {
	var out []*SimplePolygon
	for _, n := range m.nodes[1:] {
		if n.kind == k {
			out = append(out, n.poly)
		}
	}
	return out
}

// Insert adds poly to the tree and returns its node id. The polygon becomes a
// child of the innermost node containing it and adopts every node it contains.
func (m *MultiPolygon) Insert(poly *SimplePolygon) (int, error) {
	if poly.CRS() != m.crs {
		return 0, errors.Wrapf(ErrCRSMismatch, "inserting %s polygon into %s multipolygon",
			poly.CRS(), m.crs)
	}
	if m.dim != 0 && poly.Dim() != m.dim {
		return 0, errors.Wrapf(ErrDimensionMismatch, "inserting %dD polygon into %dD multipolygon",
			poly.Dim(), m.dim)
	}
	m.dim = poly.Dim()

	nid := len(m.nodes)
	m.nodes = append(m.nodes, mpNode{poly: poly, parent: -1})
	m.insertAt(rootID, nid)
	glog.V(3).Infof("multipolygon: inserted node %d as %s under %d", nid, m.nodes[nid].kind,
		m.nodes[nid].parent)
	return nid, nil
}

// insertAt tries to place node nid below node id. It returns false when id's
// polygon does not contain the new one, so the caller can try a sibling.
func (m *MultiPolygon) insertAt(id, nid int) bool {
	poly := m.nodes[nid].poly
	if id != rootID {
		cur := m.nodes[id].poly
		if m.contains(poly, cur) {
			m.splice(id, nid)
			return true
		}
		if !m.contains(cur, poly) {
			return false
		}
	}

	candidates := m.nodes[id].children
	if id == rootID {
		candidates = m.rootCandidates(poly)
	}
	var adopt []int
	for _, c := range candidates {
		child := m.nodes[c].poly
		if m.contains(child, poly) {
			if m.insertAt(c, nid) {
				return true
			}
		} else if m.contains(poly, child) {
			adopt = append(adopt, c)
		}
	}

	m.attach(id, nid)
	for _, c := range adopt {
		m.reparent(c, nid)
	}
	return true
}

// contains reports whether outer contains inner by testing one vertex of inner.
// Vertices on outer's boundary say nothing about containment, so the first
// vertex off the boundary decides; rings lying entirely on outer's boundary are
// contained.
func (m *MultiPolygon) contains(outer, inner *SimplePolygon) bool {
	for i := 0; i < inner.NumEdges(); i++ {
		p := inner.Point(i)
		if m.within.OnBoundary(outer, p) {
			continue
		}
		return m.within.Within(outer, p)
	}
	return true
}

// splice puts node nid in place of node id and makes id its only child.
func (m *MultiPolygon) splice(id, nid int) {
	parent := m.nodes[id].parent
	siblings := m.nodes[parent].children
	for i, c := range siblings {
		if c == id {
			siblings[i] = nid
			break
		}
	}
	m.nodes[nid].parent = parent
	m.nodes[nid].kind = m.nodes[id].kind
	m.nodes[nid].children = append(m.nodes[nid].children, id)
	m.nodes[id].parent = nid
	m.setKind(id, m.nodes[nid].kind.opposite())
	if parent == rootID {
		m.unindex(id)
		m.index(nid)
	}
}

func (m *MultiPolygon) attach(parent, nid int) {
	m.nodes[nid].parent = parent
	m.nodes[nid].kind = m.nodes[parent].kind.opposite()
	m.nodes[parent].children = append(m.nodes[parent].children, nid)
	if parent == rootID {
		m.index(nid)
	}
}

func (m *MultiPolygon) reparent(id, parent int) {
	old := m.nodes[id].parent
	kids := m.nodes[old].children
	for i, c := range kids {
		if c == id {
			m.nodes[old].children = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}
	if old == rootID {
		m.unindex(id)
	}
	m.nodes[id].parent = parent
	m.nodes[parent].children = append(m.nodes[parent].children, id)
	m.setKind(id, m.nodes[parent].kind.opposite())
}

// setKind changes the kind of node id and keeps its descendants alternating.
func (m *MultiPolygon) setKind(id int, k NodeKind) {
	if m.nodes[id].kind == k {
		return
	}
	m.nodes[id].kind = k
	for _, c := range m.nodes[id].children {
		m.setKind(c, k.opposite())
	}
}

func (m *MultiPolygon) rectOf(p *SimplePolygon) rtreego.Rect {
	e := p.Envelope()
	pad := 1e-9 * math.Max(1, math.Max(math.Abs(e.MaxX), math.Abs(e.MaxY)))
	pad = math.Max(pad, 1e-9*math.Max(math.Abs(e.MinX), math.Abs(e.MinY)))
	rect, err := rtreego.NewRect(rtreego.Point{e.MinX - pad, e.MinY - pad},
		[]float64{e.Width() + 2*pad, e.Height() + 2*pad})
	if err != nil {
		// Only non-positive lengths are rejected and the padding rules them out.
		panic(err)
	}
	return rect
}

func (m *MultiPolygon) index(id int) {
	e := &rootEntry{id: id, rect: m.rectOf(m.nodes[id].poly)}
	m.entries[id] = e
	m.roots.Insert(e)
}

func (m *MultiPolygon) unindex(id int) {
	if e, ok := m.entries[id]; ok {
		m.roots.Delete(e)
		delete(m.entries, id)
	}
}

// rootCandidates returns, in insertion order, the root shells whose envelope
// meets the envelope of poly. Containment either way implies overlapping
// envelopes, so the other roots can be skipped.
func (m *MultiPolygon) rootCandidates(poly *SimplePolygon) []int {
	hits := m.roots.SearchIntersect(m.rectOf(poly))
	if len(hits) == 0 {
		return nil
	}
	found := make(map[int]bool, len(hits))
	for _, h := range hits {
		found[h.(*rootEntry).id] = true
	}
	out := make([]int, 0, len(hits))
	for _, c := range m.nodes[rootID].children {
		if found[c] {
			out = append(out, c)
		}
	}
	return out
}

// Polygons groups every shell with its direct holes, in tree order. This is
// the grouping used by WKT output.
func (m *MultiPolygon) Polygons() [][]*SimplePolygon {
	var out [][]*SimplePolygon
	var walk func(id int)
	walk = func(id int) {
		for _, c := range m.nodes[id].children {
			n := m.nodes[c]
			if n.kind == Shell {
				group := []*SimplePolygon{n.poly}
				for _, h := range n.children {
					group = append(group, m.nodes[h].poly)
				}
				out = append(out, group)
			}
			walk(c)
		}
	}
	walk(rootID)
	return out
}

func (m *MultiPolygon) String() string {
	return wktString(m)
}
