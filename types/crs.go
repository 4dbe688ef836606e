/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package types

import (
	"strings"

	"github.com/pkg/errors"
)

// CRS is a coordinate reference system tag.
type CRS int

const (
	// Cartesian is the planar coordinate system.
	Cartesian CRS = iota
	// WGS84 is the geodetic system. Coordinates are longitude then latitude in
	// degrees, optionally followed by a height that geodetic algorithms ignore.
	WGS84
)

func (c CRS) String() string {
	switch c {
	case Cartesian:
		return "cartesian"
	case WGS84:
		return "wgs-84"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the supported systems.
func (c CRS) Valid() bool {
	return c == Cartesian || c == WGS84
}

// ParseCRS returns the CRS named by s. Both names and EPSG codes are accepted.
func ParseCRS(s string) (CRS, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cartesian", "planar", "epsg:7203":
		return Cartesian, nil
	case "wgs84", "wgs-84", "geographic", "epsg:4326":
		return WGS84, nil
	}
	return Cartesian, errors.Wrapf(ErrUnknownCRS, "%q", s)
}

// HasCRS is implemented by anything that carries a CRS tag.
type HasCRS interface {
	CRS() CRS
}

// CheckCRS returns an error wrapping ErrCRSMismatch if a and b are tagged with
// different systems. Every binary operation calls it before doing any work.
func CheckCRS(a, b HasCRS) error {
	if a.CRS() != b.CRS() {
		return errors.Wrapf(ErrCRSMismatch, "%s vs %s", a.CRS(), b.CRS())
	}
	return nil
}
