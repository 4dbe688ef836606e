/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/spatial/spatial/cmd/area"
	"github.com/hypermodeinc/spatial/spatial/cmd/distance"
	"github.com/hypermodeinc/spatial/spatial/cmd/hull"
	"github.com/hypermodeinc/spatial/spatial/cmd/intersect"
	"github.com/hypermodeinc/spatial/spatial/cmd/reference"
	"github.com/hypermodeinc/spatial/spatial/cmd/store"
	"github.com/hypermodeinc/spatial/spatial/cmd/version"
	"github.com/hypermodeinc/spatial/spatial/cmd/within"
	"github.com/hypermodeinc/spatial/x"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spatial",
	Short: "Spatial: planar and geodetic geometry engine",
	Long: `
Spatial computes areas, distances, boundary intersections, convex hulls,
containment and linear references for Cartesian and WGS84 geometries given as
WKT, and keeps named point sequences in an indexed on-disk store.
` + x.BuildDetails(),
	PersistentPreRunE: cobra.NoArgs,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

// subcommands initially contains all default sub-commands.
var subcommands = []*x.SubCommand{
	&area.Area, &distance.Distance, &intersect.Intersect, &hull.Hull,
	&within.Within, &reference.Reference, &store.Store, &version.Version,
}

func init() {
	RootCmd.PersistentFlags().String("profile_mode", "",
		"Enable profiling mode, one of [cpu, mem, mutex, block]")
	RootCmd.PersistentFlags().Int("block_rate", 0,
		"Block profiling rate. Must be used along with block profile_mode")
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	RootCmd.PersistentFlags().Bool("metrics", false,
		"Register the opencensus views of the geometry engines.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	// Always set stderrthreshold=0. Don't let users set it themselves.
	x.Check(flag.Set("stderrthreshold", "0"))
	x.Check(flag.CommandLine.MarkDeprecated("stderrthreshold",
		"Spatial always sets this flag to 0. It can't be overwritten."))

	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(RootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		if rootConf.GetBool("metrics") {
			x.Check(x.RegisterViews())
			glog.V(2).Info("Registered metric views")
		}
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Check(errors.Wrapf(sc.Conf.ReadInConfig(), "reading config"))
		}
	})
}
