/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math"

	"github.com/pkg/errors"

	"github.com/hypermodeinc/spatial/x"
)

// Point is an immutable n-dimensional coordinate tagged with a CRS.
type Point struct {
	coords []float64
	crs    CRS
}

// NewPoint returns a point with the given coordinates. At least one coordinate is required.
func NewPoint(crs CRS, coords ...float64) (Point, error) {
	if !crs.Valid() {
		return Point{}, errors.Wrapf(ErrUnknownCRS, "tag %d", int(crs))
	}
	if len(coords) == 0 {
		return Point{}, ErrZeroDimension
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return Point{coords: c, crs: crs}, nil
}

// MustNewPoint is like NewPoint but panics on error.
func MustNewPoint(crs CRS, coords ...float64) Point {
	p, err := NewPoint(crs, coords...)
	if err != nil {
		panic(err)
	}
	return p
}

// XY returns a two dimensional Cartesian point.
func XY(x, y float64) Point {
	return Point{coords: []float64{x, y}, crs: Cartesian}
}

// LonLat returns a WGS84 point.
func LonLat(lon, lat float64) Point {
	return Point{coords: []float64{lon, lat}, crs: WGS84}
}

// CRS returns the coordinate reference system of the point.
func (p Point) CRS() CRS { return p.crs }

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p.coords) }

// Coord returns the i-th coordinate.
func (p Point) Coord(i int) float64 { return p.coords[i] }

// X returns the first coordinate (longitude for WGS84).
func (p Point) X() float64 { return p.coords[0] }

// Y returns the second coordinate (latitude for WGS84), or zero for one dimensional points.
func (p Point) Y() float64 {
	if len(p.coords) < 2 {
		return 0
	}
	return p.coords[1]
}

// Coords returns a copy of the coordinates.
func (p Point) Coords() []float64 {
	c := make([]float64, len(p.coords))
	copy(c, p.coords)
	return c
}

// IsEmpty reports whether p is the zero Point.
func (p Point) IsEmpty() bool { return len(p.coords) == 0 }

// Equal reports exact equality of CRS and coordinates.
func (p Point) Equal(o Point) bool {
	if p.crs != o.crs || len(p.coords) != len(o.coords) {
		return false
	}
	for i, c := range p.coords {
		if c != o.coords[i] {
			return false
		}
	}
	return true
}

// ApproxEqual is Equal with every coordinate compared within x.Epsilon.
func (p Point) ApproxEqual(o Point) bool {
	if p.crs != o.crs || len(p.coords) != len(o.coords) {
		return false
	}
	for i, c := range p.coords {
		if !x.FloatEqual(c, o.coords[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual2D compares only the first two coordinates.
func (p Point) ApproxEqual2D(o Point) bool {
	return p.crs == o.crs && x.FloatEqual(p.X(), o.X()) && x.FloatEqual(p.Y(), o.Y())
}

// PlanarDistance is the Euclidean distance between the first two coordinates,
// regardless of CRS. Used for nearest-vertex searches, not for measuring.
func (p Point) PlanarDistance(o Point) float64 {
	return math.Hypot(p.X()-o.X(), p.Y()-o.Y())
}

func (p Point) String() string {
	return wktString(p)
}

// checkPoints validates that points share one CRS and one dimension, and that
// there are at least min of them.
func checkPoints(points []Point, min int) error {
	if len(points) < min {
		return errors.Wrapf(ErrTooFewPoints, "got %d, need at least %d", len(points), min)
	}
	if len(points) == 0 {
		return nil
	}
	first := points[0]
	if first.IsEmpty() {
		return ErrZeroDimension
	}
	for i, p := range points[1:] {
		if p.IsEmpty() {
			return ErrZeroDimension
		}
		if p.crs != first.crs {
			return errors.Wrapf(ErrCRSMismatch, "point %d is %s, point 0 is %s", i+1, p.crs, first.crs)
		}
		if len(p.coords) != len(first.coords) {
			return errors.Wrapf(ErrDimensionMismatch, "point %d has %d coordinates, point 0 has %d",
				i+1, len(p.coords), len(first.coords))
		}
	}
	return nil
}
