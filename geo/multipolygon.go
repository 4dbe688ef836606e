/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
)

// NewMultiPolygon returns an empty shell/hole nesting tree whose containment
// tests use the within strategy of crs.
func NewMultiPolygon(crs types.CRS) (*types.MultiPolygon, error) {
	w, err := WithinCalculatorFor(crs)
	if err != nil {
		return nil, err
	}
	return types.NewMultiPolygon(crs, w), nil
}

// BuildMultiPolygon inserts polys, in order, into a new nesting tree. The CRS
// is taken from the first polygon.
func BuildMultiPolygon(polys ...*types.SimplePolygon) (*types.MultiPolygon, error) {
	if len(polys) == 0 {
		return nil, errors.Wrap(types.ErrTooFewPoints, "multipolygon needs at least one polygon")
	}
	mp, err := NewMultiPolygon(polys[0].CRS())
	if err != nil {
		return nil, err
	}
	for i, p := range polys {
		if _, err := mp.Insert(p); err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
	}
	return mp, nil
}
