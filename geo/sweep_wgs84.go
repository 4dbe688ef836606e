/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package geo

import (
	"fmt"
	"math"
)

// minCourseChange is the smallest total turn, in degrees, of a ring the
// geodetic sweep accepts. A ring around a pole turns close to zero degrees in
// longitude/latitude space, an ordinary ring a full 360.
const minCourseChange = 270

// sweepHazard returns why the sweep can not be trusted on these geodetic
// boundaries, or "" when it can. Rings that wrap across the antimeridian or
// around a pole are not x-monotone decomposable in longitude/latitude.
func sweepHazard(groups ...[]path) string {
	for _, ps := range groups {
		for _, p := range ps {
			for i, pt := range p.points {
				if math.Abs(pt.X()) > 180 {
					return fmt.Sprintf("longitude %g outside [-180, 180]", pt.X())
				}
				if i > 0 && math.Abs(pt.X()-p.points[i-1].X()) >= 180 {
					return fmt.Sprintf("edge %d crosses the antimeridian", i-1)
				}
			}
			if !p.closed {
				continue
			}
			if turn := courseChange(p); turn < minCourseChange {
				return fmt.Sprintf("ring turns only %.1f degrees", turn)
			}
		}
	}
	return ""
}

// courseChange sums the signed heading changes around a ring and returns the
// absolute total in degrees.
func courseChange(p path) float64 {
	var headings []float64
	for i := 0; i < p.numEdges(); i++ {
		a, b := p.edge(i)
		dlon := wrapDegrees(b.X() - a.X())
		dlat := b.Y() - a.Y()
		if dlon == 0 && dlat == 0 {
			continue
		}
		headings = append(headings, math.Atan2(dlat, dlon)*180/math.Pi)
	}
	var total float64
	for i := range headings {
		total += wrapDegrees(headings[(i+1)%len(headings)] - headings[i])
	}
	return math.Abs(total)
}

// wrapDegrees maps d to (-180, 180].
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}
