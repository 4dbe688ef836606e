/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"github.com/pkg/errors"
)

// Sequence is the read contract for ordered point sources. Geometries extracted
// from a persisted graph implement it without holding every point in memory;
// PointList is the in-memory implementation.
type Sequence interface {
	CRS() CRS
	Dim() int
	Len() int
	PointAt(i int) (Point, error)
}

// PointList is an in-memory Sequence.
type PointList []Point

// CRS returns the CRS of the first point, Cartesian for an empty list.
func (l PointList) CRS() CRS {
	if len(l) == 0 {
		return Cartesian
	}
	return l[0].crs
}

// Dim returns the dimension of the first point.
func (l PointList) Dim() int {
	if len(l) == 0 {
		return 0
	}
	return l[0].Dim()
}

func (l PointList) Len() int { return len(l) }

func (l PointList) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(l) {
		return Point{}, errors.Errorf("index %d out of range [0, %d)", i, len(l))
	}
	return l[i], nil
}

// readSequence materializes seq and checks that every point agrees with the
// sequence's own CRS and dimension.
func readSequence(seq Sequence) ([]Point, error) {
	n := seq.Len()
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := seq.PointAt(i)
		if err != nil {
			return nil, errors.Wrapf(err, "reading point %d", i)
		}
		if p.CRS() != seq.CRS() {
			return nil, errors.Wrapf(ErrCRSMismatch, "point %d is %s, sequence is %s",
				i, p.CRS(), seq.CRS())
		}
		if p.Dim() != seq.Dim() {
			return nil, errors.Wrapf(ErrDimensionMismatch, "point %d has %d coordinates, sequence has %d",
				i, p.Dim(), seq.Dim())
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// Traversal walks a sequence from the vertex nearest to a start point in the
// direction of a hint point. Sequences coming out of a graph are ordered by how
// they were stored, which need not match the direction a path algorithm wants.
type Traversal struct {
	points []Point
	closed bool
	start  int
	step   int
	pos    int
	seen   int
}

// NewTraversal prepares a traversal of seq. When closed is set the sequence is
// treated as a ring (a repeated closing point is ignored) and the traversal
// returns to the start vertex at the end. The direction is the one whose first
// step lands closer to hint; open sequences at either end can only go one way.
func NewTraversal(seq Sequence, closed bool, start, hint Point) (*Traversal, error) {
	if err := CheckCRS(seq, start); err != nil {
		return nil, err
	}
	if err := CheckCRS(seq, hint); err != nil {
		return nil, err
	}
	pts, err := readSequence(seq)
	if err != nil {
		return nil, err
	}
	if closed && len(pts) > 1 && pts[0].Equal(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil, errors.Wrapf(ErrTooFewPoints, "traversal needs 2 points, got %d", len(pts))
	}

	nearest, best := 0, pts[0].PlanarDistance(start)
	for i, p := range pts[1:] {
		if d := p.PlanarDistance(start); d < best {
			nearest, best = i+1, d
		}
	}

	t := &Traversal{points: pts, closed: closed, start: nearest, pos: nearest}
	n := len(pts)
	switch {
	case closed:
		next := pts[(nearest+1)%n]
		prev := pts[(nearest-1+n)%n]
		t.step = 1
		if prev.PlanarDistance(hint) < next.PlanarDistance(hint) {
			t.step = -1
		}
	case nearest == 0:
		t.step = 1
	case nearest == n-1:
		t.step = -1
	default:
		t.step = 1
		if pts[nearest-1].PlanarDistance(hint) < pts[nearest+1].PlanarDistance(hint) {
			t.step = -1
		}
	}
	return t, nil
}

// StartIndex is the index of the vertex the traversal starts at.
func (t *Traversal) StartIndex() int { return t.start }

// Forward reports whether the traversal follows the sequence order.
func (t *Traversal) Forward() bool { return t.step > 0 }

// Next returns the next point, or false once the traversal is exhausted.
func (t *Traversal) Next() (Point, bool) {
	n := len(t.points)
	if t.closed {
		if t.seen > n {
			return Point{}, false
		}
		p := t.points[t.pos]
		t.pos = (t.pos + t.step + n) % n
		t.seen++
		return p, true
	}
	if t.pos < 0 || t.pos >= n {
		return Point{}, false
	}
	p := t.points[t.pos]
	t.pos += t.step
	t.seen++
	return p, true
}

// Remaining drains the traversal into a slice.
func (t *Traversal) Remaining() []Point {
	var out []Point
	for p, ok := t.Next(); ok; p, ok = t.Next() {
		out = append(out, p)
	}
	return out
}
