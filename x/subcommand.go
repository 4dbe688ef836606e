/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SubCommand bundles a cobra command with the viper instance its flags are bound to.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// GetFloat64E reads name as a float64. Values coming from a config file may be
// strings, so the conversion goes through cast and reports malformed input.
func (s SubCommand) GetFloat64E(name string) (float64, error) {
	return cast.ToFloat64E(s.Conf.Get(name))
}
