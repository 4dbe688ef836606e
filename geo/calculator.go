/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/types"
)

// Every algorithm family has one Cartesian and one WGS84 implementation. The
// implementations carry no state, so one instance of each is created up front
// and handed out by the *For functions below. The CRS always comes from the
// geometries themselves.
var (
	areaCalculators = map[types.CRS]AreaCalculator{
		types.Cartesian: cartesianArea{},
		types.WGS84:     wgs84Area{},
	}
	distanceCalculators = map[types.CRS]DistanceCalculator{
		types.Cartesian: cartesianDistance{},
		types.WGS84:     wgs84Distance{},
	}
	segmentIntersectors = map[types.CRS]SegmentIntersector{
		types.Cartesian: cartesianSegments{},
		types.WGS84:     wgs84Segments{},
	}
	hullCalculators = map[types.CRS]HullCalculator{
		types.Cartesian: cartesianHull{},
		types.WGS84:     wgs84Hull{},
	}
	withinCalculators = map[types.CRS]WithinCalculator{
		types.Cartesian: cartesianWithin{},
		types.WGS84:     wgs84Within{},
	}
	referenceCalculators = map[types.CRS]ReferenceCalculator{
		types.Cartesian: cartesianReference{},
		types.WGS84:     wgs84Reference{},
	}
)

func lookup[T any](family string, m map[types.CRS]T, crs types.CRS) (T, error) {
	c, ok := m[crs]
	if !ok {
		var zero T
		return zero, errors.Wrapf(types.ErrUnknownCRS, "no %s calculator for %s", family, crs)
	}
	return c, nil
}

// AreaCalculatorFor returns the area strategy for crs.
func AreaCalculatorFor(crs types.CRS) (AreaCalculator, error) {
	return lookup("area", areaCalculators, crs)
}

// DistanceCalculatorFor returns the distance strategy for crs.
func DistanceCalculatorFor(crs types.CRS) (DistanceCalculator, error) {
	return lookup("distance", distanceCalculators, crs)
}

// SegmentIntersectorFor returns the pairwise segment test for crs.
func SegmentIntersectorFor(crs types.CRS) (SegmentIntersector, error) {
	return lookup("segment intersection", segmentIntersectors, crs)
}

// HullCalculatorFor returns the convex hull strategy for crs.
func HullCalculatorFor(crs types.CRS) (HullCalculator, error) {
	return lookup("convex hull", hullCalculators, crs)
}

// WithinCalculatorFor returns the point-in-polygon strategy for crs.
func WithinCalculatorFor(crs types.CRS) (WithinCalculator, error) {
	return lookup("within", withinCalculators, crs)
}

// ReferenceCalculatorFor returns the linear referencing strategy for crs.
func ReferenceCalculatorFor(crs types.CRS) (ReferenceCalculator, error) {
	return lookup("linear reference", referenceCalculators, crs)
}
