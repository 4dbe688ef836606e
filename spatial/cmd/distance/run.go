/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package distance

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/types"
	"github.com/hypermodeinc/spatial/x"
)

// Distance is the sub-command invoked when running "spatial distance".
var Distance x.SubCommand

func init() {
	Distance.Cmd = &cobra.Command{
		Use:   "distance",
		Short: "Prints the minimum distance between two geometries",
		Long: `
Distance prints the minimum distance between the geometries given by --a and
--b. It is zero when one contains or crosses the other. WGS84 distances are
great-circle meters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(Distance.Conf, cmd.OutOrStdout())
		},
		Annotations: map[string]string{"group": "geometry"},
	}
	Distance.EnvPrefix = "SPATIAL_DISTANCE"
	Distance.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Distance.Cmd.Flags()
	input.AddCRSFlag(flag)
	flag.String("a", "", "WKT of the first geometry.")
	flag.String("b", "", "WKT of the second geometry.")
	flag.Bool("human", false, "Print WGS84 distances in SI units.")
}

func run(conf *viper.Viper, w io.Writer) error {
	crs, err := input.CRS(conf)
	if err != nil {
		return err
	}
	a, err := input.Geometry(conf, crs, "a")
	if err != nil {
		return err
	}
	b, err := input.Geometry(conf, crs, "b")
	if err != nil {
		return err
	}
	d, err := geo.Distance(a, b)
	if err != nil {
		return err
	}
	if crs == types.WGS84 && conf.GetBool("human") {
		return input.Println(w, types.Length(d))
	}
	return input.Println(w, input.FormatFloat(d))
}
