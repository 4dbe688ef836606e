/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestStartProfile(t *testing.T) {
	conf := viper.New()
	s, err := StartProfile(conf)
	require.NoError(t, err)
	require.Equal(t, noOpStopper{}, s)
	s.Stop()

	conf.Set("profile_mode", "gpu")
	_, err = StartProfile(conf)
	require.Error(t, err)
}
