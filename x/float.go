/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import "math"

// Epsilon is the relative tolerance used by every comparison that is affected by
// trigonometric or rotation round-off. Both coordinate systems go through the
// helpers below so that the Cartesian and WGS84 strategies agree on what "equal"
// means.
const Epsilon = 1e-12

func scale(a, b float64) float64 {
	return math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// FloatEqual reports whether a and b are equal within Epsilon, relative to their magnitude.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*scale(a, b)
}

// FloatLess reports whether a is smaller than b by more than the tolerance.
func FloatLess(a, b float64) bool {
	return a < b && !FloatEqual(a, b)
}

// FloatLessEqual reports whether a is smaller than b or equal to it within the tolerance.
func FloatLessEqual(a, b float64) bool {
	return a < b || FloatEqual(a, b)
}

// IsZero reports whether v is zero within the absolute tolerance.
func IsZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// Between reports whether v lies in the closed interval spanned by a and b (in
// either order), allowing for the tolerance at both ends.
func Between(v, a, b float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return FloatLessEqual(lo, v) && FloatLessEqual(v, hi)
}

// Cross2D returns the z component of the cross product of (ax, ay) and (bx, by).
func Cross2D(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}

// Orientation returns the orientation of the triangle (p, q, r): positive for a
// counter-clockwise turn, negative for clockwise and zero when collinear.
func Orientation(px, py, qx, qy, rx, ry float64) float64 {
	return Cross2D(qx-px, qy-py, rx-px, ry-py)
}

// Rotation is a planar rotation by a fixed angle. The sine and cosine are
// computed once so that a whole coordinate buffer can be transformed eagerly.
type Rotation struct {
	Angle    float64
	sin, cos float64
}

// NewRotation returns the rotation that maps the direction at angle onto the positive x axis.
func NewRotation(angle float64) Rotation {
	s, c := math.Sincos(angle)
	return Rotation{Angle: angle, sin: s, cos: c}
}

// Apply rotates (x, y) by -Angle.
func (r Rotation) Apply(x, y float64) (float64, float64) {
	return x*r.cos + y*r.sin, -x*r.sin + y*r.cos
}

// Invert rotates (x, y) by +Angle, undoing Apply.
func (r Rotation) Invert(x, y float64) (float64, float64) {
	return x*r.cos - y*r.sin, x*r.sin + y*r.cos
}

// NormalizeAngle maps a to the half-open interval [0, pi).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, math.Pi)
	if a < 0 {
		a += math.Pi
	}
	if a >= math.Pi {
		a -= math.Pi
	}
	return a
}
