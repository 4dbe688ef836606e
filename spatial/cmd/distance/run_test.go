/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package distance

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func distance(t *testing.T, crs, a, b string, human bool) string {
	conf := viper.New()
	conf.Set("crs", crs)
	conf.Set("a", a)
	conf.Set("b", b)
	conf.Set("human", human)
	var out bytes.Buffer
	require.NoError(t, run(conf, &out))
	return out.String()
}

func TestRun(t *testing.T) {
	require.Equal(t, "5\n", distance(t, "cartesian", "POINT(0 0)", "POINT(3 4)", false))
	require.Equal(t, "0\n", distance(t, "cartesian",
		"POLYGON((-10 -10, 10 -10, 10 10, -10 10, -10 -10))", "POINT(1 1)", false))
	require.Equal(t, "2\n", distance(t, "cartesian",
		"POLYGON((-10 -10, 10 -10, 10 10, -10 10, -10 -10))", "POINT(12 0)", false))
	require.Contains(t, distance(t, "wgs84", "POINT(0 0)", "POINT(1 0)", true), "km")
}

func TestRunMissingGeometry(t *testing.T) {
	conf := viper.New()
	conf.Set("crs", "cartesian")
	conf.Set("a", "POINT(0 0)")
	require.Error(t, run(conf, &bytes.Buffer{}))
}
