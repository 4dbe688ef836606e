/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var pointCmp = cmp.Comparer(func(a, b Point) bool { return a.Equal(b) })

func TestNewSimplePolygon(t *testing.T) {
	open := MustNewSimplePolygon(XY(0, 0), XY(1, 0), XY(0, 1))
	closed := MustNewSimplePolygon(XY(0, 0), XY(1, 0), XY(0, 1), XY(0, 0))
	require.Equal(t, 4, open.Len())
	require.Equal(t, 3, open.NumEdges())
	if diff := cmp.Diff(closed.Points(), open.Points(), pointCmp); diff != "" {
		t.Fatalf("closing point (-closed +open):\n%s", diff)
	}

	_, err := NewSimplePolygon(XY(0, 0), XY(1, 0))
	require.ErrorIs(t, err, ErrTooFewPoints)
	_, err = NewSimplePolygon()
	require.ErrorIs(t, err, ErrTooFewPoints)
	_, err = NewSimplePolygon(XY(0, 0), XY(1, 0), LonLat(0, 1))
	require.ErrorIs(t, err, ErrCRSMismatch)

	p, err := open.PointAt(2)
	require.NoError(t, err)
	require.True(t, p.Equal(XY(0, 1)))
	_, err = open.PointAt(4)
	require.Error(t, err)
}

func TestPolygonOrientation(t *testing.T) {
	ccw := MustNewSimplePolygon(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4))
	require.True(t, ccw.IsCCW())
	require.Same(t, ccw, ccw.CCW())

	cw := ccw.Reversed()
	require.False(t, cw.IsCCW())
	require.Same(t, cw, cw.CW())
	require.True(t, cw.CCW().IsCCW())
	if diff := cmp.Diff(ccw.Points(), cw.Reversed().Points(), pointCmp); diff != "" {
		t.Fatalf("double reverse (-want +got):\n%s", diff)
	}

	require.Len(t, ccw.Shells(), 1)
	require.Empty(t, ccw.Holes())
}

func TestEnvelope(t *testing.T) {
	p := MustNewSimplePolygon(XY(-1, 2), XY(3, 0), XY(5, 6))
	e := p.Envelope()
	require.Equal(t, Envelope{MinX: -1, MinY: 0, MaxX: 5, MaxY: 6}, e)
	require.Equal(t, 6.0, e.Width())
	require.Equal(t, 6.0, e.Height())
	require.True(t, e.Intersects(Envelope{MinX: 5, MinY: 6, MaxX: 7, MaxY: 7}))
	require.False(t, e.Intersects(Envelope{MinX: 5.5, MinY: 0, MaxX: 7, MaxY: 7}))
}

func TestPolylines(t *testing.T) {
	l := MustNewPolyline(XY(0, 0), XY(1, 1), XY(2, 0))
	require.Equal(t, 2, l.NumEdges())
	a, b := l.Edge(1)
	require.True(t, a.Equal(XY(1, 1)))
	require.True(t, b.Equal(XY(2, 0)))

	_, err := NewPolyline(XY(0, 0))
	require.ErrorIs(t, err, ErrTooFewPoints)

	m, err := NewMultiPolyline(l, MustNewPolyline(XY(5, 5), XY(6, 6)))
	require.NoError(t, err)
	require.Len(t, m.Lines(), 2)
	_, err = NewMultiPolyline(l, MustNewPolyline(LonLat(5, 5), LonLat(6, 6)))
	require.ErrorIs(t, err, ErrCRSMismatch)
	_, err = NewMultiPolyline()
	require.ErrorIs(t, err, ErrTooFewPoints)

	s, err := NewLineSegment(XY(0, 0), XY(1, 1))
	require.NoError(t, err)
	require.True(t, s.End().Equal(XY(1, 1)))
	_, err = NewLineSegment(XY(0, 0), MustNewPoint(Cartesian, 1, 1, 1))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
