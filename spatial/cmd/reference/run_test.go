/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package reference

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func reference(t *testing.T, settings map[string]interface{}) string {
	conf := viper.New()
	conf.Set("crs", "cartesian")
	for k, v := range settings {
		conf.Set(k, v)
	}
	var out bytes.Buffer
	require.NoError(t, run(conf, &out))
	return out.String()
}

func TestRun(t *testing.T) {
	const line = "LINESTRING(0 0, 3 4, 3 10)"
	require.Equal(t, "POINT (0 0)\n", reference(t, map[string]interface{}{"path": line, "distance": 0}))
	require.Equal(t, "POINT (3 7)\n", reference(t, map[string]interface{}{"path": line, "distance": 8}))
	require.Equal(t, "POINT (3 10)\n", reference(t, map[string]interface{}{"path": line, "distance": 11}))
	require.Equal(t, "none\n", reference(t, map[string]interface{}{"path": line, "distance": 12}))
	require.Equal(t, "none\n", reference(t, map[string]interface{}{"path": line, "distance": -1}))
	require.Equal(t, "11\n", reference(t, map[string]interface{}{"path": line, "length": true}))
}

func TestRunDistanceFromConfigString(t *testing.T) {
	// Config files may carry numbers as strings.
	got := reference(t, map[string]interface{}{"path": "LINESTRING(0 0, 10 0)", "distance": "2.5"})
	require.Equal(t, "POINT (2.5 0)\n", got)
}

func TestRunRing(t *testing.T) {
	got := reference(t, map[string]interface{}{
		"path":     "POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))",
		"start":    "POINT(4.1 0)",
		"hint":     "POINT(1 0)",
		"distance": 6,
	})
	require.Equal(t, "POINT (0 2)\n", got)
}

func TestRunErrors(t *testing.T) {
	conf := viper.New()
	conf.Set("crs", "cartesian")
	conf.Set("path", "LINESTRING(0 0, 10 0)")
	conf.Set("distance", "far")
	require.Error(t, run(conf, &bytes.Buffer{}))

	conf.Set("distance", 1)
	conf.Set("start", "POINT(0 0)")
	conf.Set("hint", "POINT(1 0)")
	require.Error(t, run(conf, &bytes.Buffer{}))
}
