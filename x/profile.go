/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/viper"
)

type stopper interface {
	Stop()
}

// StartProfile starts the profile named by the profile_mode setting of conf.
// The returned value must be stopped to write the profile out.
func StartProfile(conf *viper.Viper) (stopper, error) {
	profileMode := conf.GetString("profile_mode")
	switch profileMode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.Quiet), nil
	case "mutex":
		return profile.Start(profile.MutexProfile, profile.Quiet), nil
	case "block":
		runtime.SetBlockProfileRate(conf.GetInt("block_rate"))
		return profile.Start(profile.BlockProfile, profile.Quiet), nil
	case "":
		return noOpStopper{}, nil
	default:
		return nil, errors.Errorf("invalid profile mode: %q", profileMode)
	}
}

type noOpStopper struct{}

func (noOpStopper) Stop() {}
