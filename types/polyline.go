/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import "github.com/pkg/errors"

// Polyline is an open chain of at least two points.
type Polyline struct {
	points []Point
}

// NewPolyline returns the chain through points.
func NewPolyline(points ...Point) (*Polyline, error) {
	if err := checkPoints(points, 2); err != nil {
		return nil, errors.Wrap(err, "polyline")
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Polyline{points: pts}, nil
}

// MustNewPolyline is like NewPolyline but panics on error.
func MustNewPolyline(points ...Point) *Polyline {
	l, err := NewPolyline(points...)
	if err != nil {
		panic(err)
	}
	return l
}

// PolylineFromSequence reads all points of seq and builds a polyline from them.
func PolylineFromSequence(seq Sequence) (*Polyline, error) {
	pts, err := readSequence(seq)
	if err != nil {
		return nil, err
	}
	return NewPolyline(pts...)
}

func (l *Polyline) CRS() CRS { return l.points[0].crs }
func (l *Polyline) Dim() int { return l.points[0].Dim() }
func (l *Polyline) Len() int { return len(l.points) }
func (l *Polyline) Point(i int) Point { return l.points[i] }
func (l *Polyline) NumEdges() int { return len(l.points) - 1 }
func (l *Polyline) Edge(i int) (Point, Point) { return l.points[i], l.points[i+1] }

// PointAt implements Sequence.
func (l *Polyline) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(l.points) {
		return Point{}, errors.Errorf("index %d out of range [0, %d)", i, len(l.points))
	}
	return l.points[i], nil
}

// Points returns a copy of the points.
func (l *Polyline) Points() []Point {
	out := make([]Point, len(l.points))
	copy(out, l.points)
	return out
}

func (l *Polyline) String() string {
	return wktString(l)
}

// MultiPolyline is a collection of polylines sharing one CRS.
type MultiPolyline struct {
	lines []*Polyline
}

// NewMultiPolyline groups lines. All children must share CRS and dimension.
func NewMultiPolyline(lines ...*Polyline) (*MultiPolyline, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrTooFewPoints, "multipolyline needs at least one polyline")
	}
	for i, l := range lines[1:] {
		if err := CheckCRS(lines[0], l); err != nil {
			return nil, errors.Wrapf(err, "multipolyline child %d", i+1)
		}
		if l.Dim() != lines[0].Dim() {
			return nil, errors.Wrapf(ErrDimensionMismatch, "multipolyline child %d", i+1)
		}
	}
	out := make([]*Polyline, len(lines))
	copy(out, lines)
	return &MultiPolyline{lines: out}, nil
}

func (m *MultiPolyline) CRS() CRS { return m.lines[0].CRS() }
func (m *MultiPolyline) Dim() int { return m.lines[0].Dim() }

// Lines returns the children.
func (m *MultiPolyline) Lines() []*Polyline {
	out := make([]*Polyline, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *MultiPolyline) String() string {
	return wktString(m)
}
