/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package intersect

import (
	"io"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/geo"
	"github.com/hypermodeinc/spatial/spatial/cmd/input"
	"github.com/hypermodeinc/spatial/x"
)

// Intersect is the sub-command invoked when running "spatial intersect".
var Intersect x.SubCommand

func init() {
	Intersect.Cmd = &cobra.Command{
		Use:   "intersect",
		Short: "Prints the points where two boundaries meet",
		Long: `
Intersect prints, one per line, the points shared by the boundaries of --a and
--b. Polygons, multipolygons and line strings may be mixed. With --any only
"true" or "false" is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := x.StartProfile(Intersect.Conf)
			if err != nil {
				return err
			}
			defer prof.Stop()
			return run(Intersect.Conf, cmd.OutOrStdout())
		},
		Annotations: map[string]string{"group": "geometry"},
	}
	Intersect.EnvPrefix = "SPATIAL_INTERSECT"
	Intersect.Cmd.SetHelpTemplate(x.NonRootTemplate)

	flag := Intersect.Cmd.Flags()
	input.AddCRSFlag(flag)
	flag.String("a", "", "WKT of the first geometry.")
	flag.String("b", "", "WKT of the second geometry.")
	flag.String("algo", "sweep", "Intersection algorithm, one of [naive, sweep].")
	flag.Bool("any", false, "Only report whether the boundaries meet.")
}

func run(conf *viper.Viper, w io.Writer) error {
	crs, err := input.CRS(conf)
	if err != nil {
		return err
	}
	algo, err := geo.ParseAlgorithm(conf.GetString("algo"))
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
	in := geo.NewIntersector(algo)
	if conf.GetBool("any") {
		ok, err := in.Intersects(a, b)
		if err != nil {
			return err
		}
		return input.Println(w, ok)
	}
	pts, err := in.Intersect(a, b)
	if err != nil {
		return err
	}
	glog.V(2).Infof("%s intersection found %d points", algo, len(pts))
	for _, p := range pts {
		if err := input.Println(w, p); err != nil {
			return err
		}
	}
	return nil
}
