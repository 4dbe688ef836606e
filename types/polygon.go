/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math"

	"github.com/pkg/errors"
)

// SimplePolygon is a closed ring of points. The first and last point are equal;
// NewSimplePolygon closes the ring if the caller did not. Orientation is not
// stored, see IsCCW.
type SimplePolygon struct {
	points []Point
}

// NewSimplePolygon builds a ring from points, closing it when needed. A ring needs
// at least four points once closed.
func NewSimplePolygon(points ...Point) (*SimplePolygon, error) {
	if len(points) == 0 {
		return nil, errors.Wrapf(ErrTooFewPoints, "polygon needs at least 4 points, got 0")
	}
	ring := make([]Point, len(points), len(points)+1)
	copy(ring, points)
	if !ring[0].Equal(ring[len(ring)-1]) || len(ring) == 1 {
		ring = append(ring, ring[0])
	}
	if err := checkPoints(ring, 4); err != nil {
		return nil, errors.Wrap(err, "polygon")
	}
	return &SimplePolygon{points: ring}, nil
}

// MustNewSimplePolygon is like NewSimplePolygon but panics on error.
func MustNewSimplePolygon(points ...Point) *SimplePolygon {
	p, err := NewSimplePolygon(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// PolygonFromSequence reads all points of seq and builds a ring from them.
func PolygonFromSequence(seq Sequence) (*SimplePolygon, error) {
	pts, err := readSequence(seq)
	if err != nil {
		return nil, err
	}
	return NewSimplePolygon(pts...)
}

func (p *SimplePolygon) CRS() CRS { return p.points[0].crs }
func (p *SimplePolygon) Dim() int { return p.points[0].Dim() }

// Len returns the number of points including the closing point.
func (p *SimplePolygon) Len() int { return len(p.points) }

// Point returns the i-th ring point.
func (p *SimplePolygon) Point(i int) Point { return p.points[i] }

// PointAt implements Sequence.
func (p *SimplePolygon) PointAt(i int) (Point, error) {
	if i < 0 || i >= len(p.points) {
		return Point{}, errors.Errorf("index %d out of range [0, %d)", i, len(p.points))
	}
	return p.points[i], nil
}

// Points returns a copy of the ring including the closing point.
func (p *SimplePolygon) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// NumEdges returns the number of ring edges.
func (p *SimplePolygon) NumEdges() int { return len(p.points) - 1 }

// Edge returns the end points of the i-th edge.
func (p *SimplePolygon) Edge(i int) (Point, Point) { return p.points[i], p.points[i+1] }

// Shells implements Polygon.
func (p *SimplePolygon) Shells() []*SimplePolygon { return []*SimplePolygon{p} }

// Holes implements Polygon. A simple polygon has none.
func (p *SimplePolygon) Holes() []*SimplePolygon { return nil }

// shoelace returns sum((x[i+1]-x[i])*(y[i+1]+y[i])), which is twice the signed
// area with clockwise rings positive.
func (p *SimplePolygon) shoelace() float64 {
	var a float64
	for i := 0; i < len(p.points)-1; i++ {
		p1, p2 := p.points[i], p.points[i+1]
		a += (p2.X() - p1.X()) * (p1.Y() + p2.Y())
	}
	return a
}

// IsCCW reports whether the ring runs counter-clockwise in the plane of its
// first two coordinates. For WGS84 this is a planar approximation on
// longitude/latitude, good for rings that neither encircle a pole nor cross the
// date line.
func (p *SimplePolygon) IsCCW() bool {
	return p.shoelace() < 0
}

// Reversed returns the same ring traversed in the opposite direction.
func (p *SimplePolygon) Reversed() *SimplePolygon {
	n := len(p.points)
	out := make([]Point, n)
	for i, pt := range p.points {
		out[n-1-i] = pt
	}
	return &SimplePolygon{points: out}
}

// CCW returns p if it runs counter-clockwise, its reverse otherwise.
func (p *SimplePolygon) CCW() *SimplePolygon {
	if p.IsCCW() {
		return p
	}
	return p.Reversed()
}

// CW returns p if it runs clockwise, its reverse otherwise.
func (p *SimplePolygon) CW() *SimplePolygon {
	if p.IsCCW() {
		return p.Reversed()
	}
	return p
}

// Envelope returns the bounding box of the first two coordinates.
func (p *SimplePolygon) Envelope() Envelope {
	return envelopeOf(p.points)
}

// Traverse starts a directional traversal of the ring at the vertex nearest to
// start, stepping toward hint.
func (p *SimplePolygon) Traverse(start, hint Point) (*Traversal, error) {
	return NewTraversal(p, true, start, hint)
}

func (p *SimplePolygon) String() string {
	return wktString(p)
}

// Envelope is an axis aligned bounding box over the first two coordinates.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (e Envelope) Width() float64 { return e.MaxX - e.MinX }

// Height returns MaxY - MinY.
func (e Envelope) Height() float64 { return e.MaxY - e.MinY }

// Intersects reports whether the two boxes overlap or touch.
func (e Envelope) Intersects(o Envelope) bool {
	return e.MinX <= o.MaxX && o.MinX <= e.MaxX && e.MinY <= o.MaxY && o.MinY <= e.MaxY
}

func envelopeOf(points []Point) Envelope {
	e := Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		e.MinX = math.Min(e.MinX, p.X())
		e.MaxX = math.Max(e.MaxX, p.X())
		e.MinY = math.Min(e.MinY, p.Y())
		e.MaxY = math.Max(e.MaxY, p.Y())
	}
	return e
}
