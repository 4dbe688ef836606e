/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import "github.com/pkg/errors"

var (
	// ErrNoSweepAngle is returned when every candidate sweep direction would make
	// some edge vertical. It needs deliberately degenerate input.
	ErrNoSweepAngle = errors.New("no sweep direction avoids all edge directions")
	// ErrNotHemisphere is returned by the spherical convex hull when the points do
	// not lie on a common hemisphere.
	ErrNotHemisphere = errors.New("points do not lie on a common hemisphere")
	// ErrDegenerateHull is returned when the hull of the input has fewer than three
	// vertices, e.g. for collinear input.
	ErrDegenerateHull = errors.New("convex hull is degenerate")
)
