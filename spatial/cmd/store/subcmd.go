/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package store

import (
	"github.com/spf13/cobra"

	"github.com/hypermodeinc/spatial/x"
)

const (
	defaultDir       = "spatial"
	defaultCacheSize = 1 << 16
)

var storeOpt struct {
	Dir         string
	CacheSize   int64
	Name        string
	Kind        string
	CRS         string
	WKT         string
	Query       string
	MaxDistance float64
}

var subcmds = []*cobra.Command{
	{
		Use:   "put",
		Short: "Store the points of a WKT geometry under a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPut(cmd.OutOrStdout())
		},
	},
	{
		Use:   "get",
		Short: "Print a stored sequence as WKT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout())
		},
	},
	{
		Use:   "delete",
		Short: "Remove a stored sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd.OutOrStdout())
		},
	},
	{
		Use:   "list",
		Short: "List stored sequence names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	},
	{
		Use:   "search",
		Short: "List stored sequences matching a spatial query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := x.StartProfile(Store.Conf)
			if err != nil {
				return err
			}
			defer prof.Stop()
			return runSearch(cmd.OutOrStdout())
		},
	},
}

func flagInit() {
	for _, sc := range subcmds {
		flag := sc.Flags()
		flag.StringVarP(&storeOpt.Dir, "dir", "d", defaultDir,
			"Directory of the sequence store.")
		flag.Int64Var(&storeOpt.CacheSize, "cache_points", defaultCacheSize,
			"Number of decoded points kept in memory.")

		switch sc.Use {
		case "list":
			continue
		case "search":
			flag.StringVar(&storeOpt.CRS, "crs", "wgs84",
				"Coordinate reference system of the query geometry.")
			flag.StringVar(&storeOpt.Query, "type", "intersects",
				"Query type, one of [within, contains, intersects, near].")
			flag.StringVar(&storeOpt.WKT, "wkt", "", "WKT of the query geometry.")
			flag.Float64Var(&storeOpt.MaxDistance, "max_distance", 0,
				"Maximum distance of a near query.")
			continue
		}
		flag.StringVarP(&storeOpt.Name, "name", "n", "", "Name of the sequence.")
		if sc.Use == "put" {
			flag.StringVar(&storeOpt.CRS, "crs", "wgs84",
				"Coordinate reference system of the points.")
			flag.StringVar(&storeOpt.Kind, "kind", "polygon",
				"How the points are joined, one of [point, polyline, polygon].")
			flag.StringVar(&storeOpt.WKT, "wkt", "", "WKT whose coordinates are stored in order.")
		}
	}
}
