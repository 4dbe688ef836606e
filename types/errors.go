/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import "github.com/pkg/errors"

var (
	// ErrCRSMismatch is returned when two geometries with different coordinate
	// reference systems meet in one operation.
	ErrCRSMismatch = errors.New("coordinate reference systems do not match")
	// ErrDimensionMismatch is returned when points of different dimension are mixed.
	ErrDimensionMismatch = errors.New("point dimensions do not match")
	// ErrTooFewPoints is returned when a geometry has fewer points than its type requires.
	ErrTooFewPoints = errors.New("too few points")
	// ErrZeroDimension is returned for points without coordinates.
	ErrZeroDimension = errors.New("point has no coordinates")
	// ErrUnknownCRS is returned for CRS tags or names that are not supported.
	ErrUnknownCRS = errors.New("unknown coordinate reference system")
	// ErrUnsupportedGeometry is returned when an operation does not handle a geometry type.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)
