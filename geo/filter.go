/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

type QueryType byte

const (
	QueryTypeWithin QueryType = iota
	QueryTypeContains
	QueryTypeIntersects
	QueryTypeNear
)

func (q QueryType) String() string {
	switch q {
	case QueryTypeWithin:
		return "within"
	case QueryTypeContains:
		return "contains"
	case QueryTypeIntersects:
		return "intersects"
	case QueryTypeNear:
		return "near"
	}
	return "unknown"
}

// ParseQueryType accepts the names printed by QueryType.String.
func ParseQueryType(s string) (QueryType, error) {
	for _, q := range []QueryType{QueryTypeWithin, QueryTypeContains, QueryTypeIntersects, QueryTypeNear} {
		if strings.EqualFold(s, q.String()) {
			return q, nil
		}
	}
	return 0, errors.Errorf("unknown query type %q", s)
}

// Filter is a spatial predicate applied to candidate geometries.
type Filter struct {
	Type QueryType
	// Geometry is the query argument: a polygon for within, a point for
	// contains and near, a point or polygon for intersects.
	Geometry    types.Geometry
	MaxDistance float64
}

// NewFilter validates the combination of query type and argument.
func NewFilter(qt QueryType, g types.Geometry, maxDistance float64) (*Filter, error) {
	_, isPoint := g.(types.Point)
	_, isPolygon := g.(types.Polygon)
	switch qt {
	case QueryTypeWithin:
		if !isPoint && !isPolygon {
			return nil, errors.Errorf("cannot use a %T in a within query", g)
		}
	case QueryTypeContains:
		if !isPoint {
			return nil, errors.Errorf("cannot use a %T in a contains query", g)
		}
	case QueryTypeIntersects:
		if !isPoint && !isPolygon {
			return nil, errors.Errorf("cannot use a %T in an intersects query", g)
		}
	case QueryTypeNear:
		if !isPoint {
			return nil, errors.Errorf("cannot use a %T in a near query", g)
		}
		if maxDistance <= 0 {
			return nil, errors.Errorf("invalid max distance %v for a near query", maxDistance)
		}
	default:
		return nil, errors.Errorf("unknown query type %d", qt)
	}
	return &Filter{Type: qt, Geometry: g, MaxDistance: maxDistance}, nil
}

// Matches applies the filter to g.
func (f *Filter) Matches(g types.Geometry) (bool, error) {
	if err := types.CheckCRS(f.Geometry, g); err != nil {
		return false, err
	}
	switch f.Type {
	case QueryTypeWithin:
		return f.isWithin(g)
	case QueryTypeContains:
		return f.contains(g)
	case QueryTypeIntersects:
		return f.intersects(g)
	case QueryTypeNear:
		if _, ok := g.(types.Point); !ok {
			return false, nil
		}
		d, err := Distance(f.Geometry, g)
		if err != nil {
			return false, err
		}
		return d <= f.MaxDistance, nil
	}
	return false, nil
}

// isWithin only considers points: g must lie in the query polygon or be equal
// to the query point.
func (f *Filter) isWithin(g types.Geometry) (bool, error) {
	pt, ok := g.(types.Point)
	if !ok {
		return false, nil
	}
	if q, ok := f.Geometry.(types.Point); ok {
		return q.ApproxEqual2D(pt), nil
	}
	return Within(f.Geometry.(types.Polygon), pt)
}

// contains only considers polygons holding the query point.
func (f *Filter) contains(g types.Geometry) (bool, error) {
	poly, ok := g.(types.Polygon)
	if !ok {
		return false, nil
	}
	return Within(poly, f.Geometry.(types.Point))
}

func (f *Filter) intersects(g types.Geometry) (bool, error) {
	if q, ok := f.Geometry.(types.Point); ok {
		if pt, ok := g.(types.Point); ok {
			return q.ApproxEqual2D(pt), nil
		}
	}
	d, err := Distance(f.Geometry, g)
	if err != nil {
		return false, err
	}
	return x.IsZero(d), nil
}
