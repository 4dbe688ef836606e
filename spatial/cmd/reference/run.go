/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package reference

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Reference is the sub-command invoked when running "spatial reference".
var Reference x.SubCommand

func init() {
	Reference.Cmd = &cobra.Command{
		Use:   "reference",
		Short: "Prints the point at a distance along a path",
		Long: `
Reference walks --path, a LINESTRING or single ring POLYGON, for --distance and
prints the point reached, or "none" when the distance is negative or longer
than the path. A ring can be walked from the vertex nearest --start in the
direction of --hint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(Reference.Conf, cmd.OutOrStdout())
		},
		Annotations: map[string]string{"group": "geometry"},
	}
	Reference.EnvPrefix = "SPATIAL_REFERENCE"
	Reference.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Reference.Cmd.Flags()
	input.AddCRSFlag(flag)
	flag.String("path", "", "WKT of the path.")
	flag.Float64("distance", 0, "Distance to walk, in meters for WGS84.")
	flag.String("start", "", "WKT point to start a ring walk from.")
	flag.String("hint", "", "WKT point giving the direction of a ring walk.")
	flag.Bool("length", false, "Print the length of the path instead.")
}

func run(conf *viper.Viper, w io.Writer) error {
	crs, err := input.CRS(conf)
	if err != nil {
		return err
	}
	path, err := input.Geometry(conf, crs, "path")
	if err != nil {
		return err
	}
	if conf.GetBool("length") {
		l, err := geo.Length(path)
		if err != nil {
			return err
		}
		return input.Println(w, input.FormatFloat(l))
	}
	d, err := x.SubCommand{Conf: conf}.GetFloat64E("distance")
	if err != nil {
		return errors.Wrap(err, "--distance")
	}

	var p types.Point
	var ok bool
	if conf.GetString("start") != "" {
		ring, isRing := path.(*types.SimplePolygon)
		if !isRing {
			return errors.Errorf("--start needs a POLYGON path, got %T", path)
		}
		start, err := input.Point(conf, crs, "start")
		if err != nil {
			return err
		}
		hint, err := input.Point(conf, crs, "hint")
		if err != nil {
			return err
		}
		p, ok, err = geo.ReferenceFrom(ring, start, hint, d)
		if err != nil {
			return err
		}
	} else {
		p, ok, err = geo.Reference(path, d)
		if err != nil {
			return err
		}
	}
	if !ok {
		return input.Println(w, "none")
	}
	return input.Println(w, p)
}
