/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package hull

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Hull is the sub-command invoked when running "spatial hull".
var Hull x.SubCommand

func init() {
	Hull.Cmd = &cobra.Command{
		Use:   "hull",
		Short: "Prints the convex hull of a point set or polygon",
		Long: `
Hull prints the convex hull as a counter-clockwise POLYGON. --points takes any
WKT geometry and uses all of its coordinates; --polygon takes a POLYGON or
MULTIPOLYGON and ignores its holes. WGS84 points must lie on one hemisphere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := x.StartProfile(Hull.Conf)
			if err != nil {
				return err
			}
			defer prof.Stop()
			return run(Hull.Conf, cmd.OutOrStdout())
		},
		Annotations: map[string]string{"group": "geometry"},
	}
	Hull.EnvPrefix = "SPATIAL_HULL"
	Hull.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Hull.Cmd.Flags()
	input.AddCRSFlag(flag)
	flag.String("points", "", "WKT whose coordinates are the input points, e.g. a MULTIPOINT.")
	flag.String("polygon", "", "WKT of a polygon to take the hull of.")
}

func run(conf *viper.Viper, w io.Writer) error {
	crs, err := input.CRS(conf)
	if err != nil {
		return err
	}
	var hull *types.SimplePolygon
	if s := strings.TrimSpace(conf.GetString("points")); s != "" {
		pts, err := geo.ParsePoints(crs, s)
		if err != nil {
			return err
		}
		if hull, err = geo.ConvexHull(pts); err != nil {
			return err
		}
	} else {
		poly, err := input.Polygon(conf, crs, "polygon")
		if err != nil {
			return errors.Wrap(err, "one of --points or --polygon is required")
		}
		if hull, err = geo.HullOfPolygon(poly); err != nil {
			return err
		}
	}
	return input.Println(w, hull)
}
