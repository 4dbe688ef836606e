/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
)

// path is one connected piece of a geometry's boundary: a closed ring (first
// point repeated at the end) or an open chain of points.
type path struct {
	points []types.Point
	closed bool
}

func (p path) numEdges() int { return len(p.points) - 1 }

func (p path) edge(i int) (types.Point, types.Point) { return p.points[i], p.points[i+1] }

// boundaryOf returns the boundary paths of g in a fixed order: polygon shells
// before holes, polyline members in order.
func boundaryOf(g types.Geometry) ([]path, error) {
	switch t := g.(type) {
	case types.LineSegment:
		return []path{{points: t.Points()}}, nil
	case *types.Polyline:
		return []path{{points: t.Points()}}, nil
	case *types.MultiPolyline:
		var out []path
		for _, l := range t.Lines() {
			out = append(out, path{points: l.Points()})
		}
		return out, nil
	case *types.SimplePolygon:
		return []path{{points: t.Points(), closed: true}}, nil
	case *types.MultiPolygon:
		var out []path
		for _, r := range t.Shells() {
			out = append(out, path{points: r.Points(), closed: true})
		}
		for _, r := range t.Holes() {
			out = append(out, path{points: r.Points(), closed: true})
		}
		return out, nil
	default:
		return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "no boundary for %T", g)
	}
}
