/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package within

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/x"
)

// Within is the sub-command invoked when running "spatial within".
var Within x.SubCommand

func init() {
	Within.Cmd = &cobra.Command{
		Use:   "within",
		Short: "Tells whether a point lies in a polygon",
		Long: `
Within prints "true" when --point lies inside --polygon or on its boundary,
and "false" otherwise. Holes of a multipolygon are outside.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(Within.Conf, cmd.OutOrStdout())
		},
		Annotations: map[string]string{"group": "geometry"},
	}
	Within.EnvPrefix = "SPATIAL_WITHIN"
	Within.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Within.Cmd.Flags()
	input.AddCRSFlag(flag)
	flag.String("polygon", "", "WKT of the polygon.")
	flag.String("point", "", "WKT of the point.")
}

func run(conf *viper.Viper, w io.Writer) error {
	crs, err := input.CRS(conf)
	if err != nil {
		return err
	}
	poly, err := input.Polygon(conf, crs, "polygon")
	if err != nil {
		return err
	}
	pt, err := input.Point(conf, crs, "point")
	if err != nil {
		return err
	}
	ok, err := geo.Within(poly, pt)
	if err != nil {
		return err
	}
	return input.Println(w, ok)
}
