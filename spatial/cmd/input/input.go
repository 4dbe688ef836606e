/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

// Package input reads the geometry flags shared by the spatial subcommands.
package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/types"
)

// AddCRSFlag registers --crs on fs.
func AddCRSFlag(fs *pflag.FlagSet) {
	fs.String("crs", "cartesian",
		"Coordinate reference system of every input geometry, one of [cartesian, wgs84].")
}

// CRS reads --crs.
func CRS(conf *viper.Viper) (types.CRS, error) {
	return types.ParseCRS(conf.GetString("crs"))
}

// Geometry parses the WKT held by the flag called name.
func Geometry(conf *viper.Viper, crs types.CRS, name string) (types.Geometry, error) {
	s := strings.TrimSpace(conf.GetString(name))
	if s == "" {
		return nil, errors.Errorf("--%s is required", name)
	}
	g, err := geo.ParseWKT(crs, s)
	return g, errors.Wrapf(err, "--%s", name)
}

// Polygon is Geometry restricted to polygons and multipolygons.
func Polygon(conf *viper.Viper, crs types.CRS, name string) (types.Polygon, error) {
	g, err := Geometry(conf, crs, name)
	if err != nil {
		return nil, err
	}
	p, ok := g.(types.Polygon)
	if !ok {
		return nil, errors.Wrapf(types.ErrUnsupportedGeometry, "--%s must be a polygon, got %T", name, g)
	}
	return p, nil
}

// Point is Geometry restricted to points.
func Point(conf *viper.Viper, crs types.CRS, name string) (types.Point, error) {
	g, err := Geometry(conf, crs, name)
	if err != nil {
		return types.Point{}, err
	}
	p, ok := g.(types.Point)
	if !ok {
		return types.Point{}, errors.Wrapf(types.ErrUnsupportedGeometry, "--%s must be a point, got %T", name, g)
	}
	return p, nil
}

// FormatFloat prints v in the shortest form that parses back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Println writes one result line.
func Println(w io.Writer, a ...interface{}) error {
	_, err := fmt.Fprintln(w, a...)
	return err
}
