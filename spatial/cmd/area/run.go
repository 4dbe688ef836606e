/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package area

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Area is the sub-command invoked when running "spatial area".
var Area x.SubCommand

func init() {
	Area.Cmd = &cobra.Command{
		Use:   "area",
		Short: "Prints the area of a polygon",
		Long: `
Area prints the area of a POLYGON or MULTIPOLYGON given as WKT. Holes are
subtracted. WGS84 areas are in square meters on a spherical earth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(Area.Conf, cmd.OutOrStdout())
		},
		Annotations: map[string]string{"group": "geometry"},
	}
	Area.EnvPrefix = "SPATIAL_AREA"
	Area.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Area.Cmd.Flags()
	input.AddCRSFlag(flag)
	flag.String("polygon", "", "WKT of the polygon.")
	flag.Bool("human", false, "Print WGS84 areas in human readable units.")
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
	a, err := geo.Area(poly)
	if err != nil {
		return err
	}
	if crs == types.WGS84 && conf.GetBool("human") {
		return input.Println(w, types.Area(a))
	}
	return input.Println(w, input.FormatFloat(a))
}
