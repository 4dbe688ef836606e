/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Vector is a 3D Cartesian vector. Geodetic algorithms represent WGS84 points as
// unit vectors (n-vectors) so great-circle computations reduce to dot and cross
// products.
type Vector struct {
	v r3.Vector
}

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{v: r3.Vector{X: x, Y: y, Z: z}}
}

// VectorFromPoint returns the n-vector of a geodetic point:
// (cos(lat)cos(lon), cos(lat)sin(lon), sin(lat)).
func VectorFromPoint(p Point) Vector {
	ll := s2.LatLngFromDegrees(p.Y(), p.X())
	return Vector{v: s2.PointFromLatLng(ll).Vector}
}

func (v Vector) X() float64 { return v.v.X }
func (v Vector) Y() float64 { return v.v.Y }
func (v Vector) Z() float64 { return v.v.Z }

func (v Vector) Add(o Vector) Vector { return Vector{v: v.v.Add(o.v)} }
func (v Vector) Subtract(o Vector) Vector { return Vector{v: v.v.Sub(o.v)} }
func (v Vector) Scale(f float64) Vector { return Vector{v: v.v.Mul(f)} }
func (v Vector) Dot(o Vector) float64 { return v.v.Dot(o.v) }
func (v Vector) Cross(o Vector) Vector { return Vector{v: v.v.Cross(o.v)} }
func (v Vector) Negate() Vector { return Vector{v: v.v.Mul(-1)} }

// Normalize returns the unit vector in the direction of v. The zero vector is returned unchanged.
func (v Vector) Normalize() Vector {
	return Vector{v: v.v.Normalize()}
}

// IsZero reports whether v has (nearly) zero length.
func (v Vector) IsZero() bool {
	return v.v.Norm() <= 1e-15
}

// Angle returns the angle between v and o in radians, computed as
// atan2(|v x o|, v . o) which stays accurate for both tiny and near-antipodal angles.
func (v Vector) Angle(o Vector) float64 {
	return math.Atan2(v.v.Cross(o.v).Norm(), v.v.Dot(o.v))
}

// ToPoint converts v back to a WGS84 point. v does not need to be normalized.
func (v Vector) ToPoint() Point {
	ll := s2.LatLngFromPoint(s2.Point{Vector: v.v})
	return LonLat(ll.Lng.Degrees(), ll.Lat.Degrees())
}
