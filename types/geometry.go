/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

// Geometry is implemented by every primitive and container in this package.
type Geometry interface {
	HasCRS
	// Dim is the number of coordinates of each point.
	Dim() int
	// String renders the geometry as WKT.
	String() string
}

// Polygon is an areal geometry described by its shell and hole rings.
// A point is inside when it is inside strictly more shells than holes.
type Polygon interface {
	Geometry
	Shells() []*SimplePolygon
	Holes() []*SimplePolygon
}

var (
	_ Geometry = Point{}
	_ Geometry = LineSegment{}
	_ Polygon  = (*SimplePolygon)(nil)
	_ Polygon  = (*MultiPolygon)(nil)
	_ Geometry = (*Polyline)(nil)
	_ Geometry = (*MultiPolyline)(nil)
)
