/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import "github.com/pkg/errors"

// LineSegment is an ordered pair of points sharing CRS and dimension.
type LineSegment struct {
	a, b Point
}

// NewLineSegment returns the segment from a to b.
func NewLineSegment(a, b Point) (LineSegment, error) {
	if err := checkPoints([]Point{a, b}, 2); err != nil {
		return LineSegment{}, errors.Wrap(err, "line segment")
	}
	return LineSegment{a: a, b: b}, nil
}

// MustNewLineSegment is like NewLineSegment but panics on error.
func MustNewLineSegment(a, b Point) LineSegment {
	s, err := NewLineSegment(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

func (s LineSegment) Start() Point { return s.a }
func (s LineSegment) End() Point { return s.b }
func (s LineSegment) CRS() CRS { return s.a.crs }
func (s LineSegment) Dim() int { return s.a.Dim() }

// Points returns both end points.
func (s LineSegment) Points() []Point { return []Point{s.a, s.b} }

func (s LineSegment) String() string {
	return wktString(s)
}
