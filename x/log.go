/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"

	"github.com/golang/glog"
)

// ToGlog routes the log output of embedded libraries (badger) to glog. Their
// informational chatter only shows at verbosity 2 and above.
type ToGlog struct{}

func (rl *ToGlog) Debugf(format string, v ...interface{}) { glog.V(3).Infof(format, v...) }
func (rl *ToGlog) Infof(format string, v ...interface{}) { glog.V(2).Infof(format, v...) }
func (rl *ToGlog) Warningf(format string, v ...interface{}) {
	glog.WarningDepth(1, fmt.Sprintf(format, v...))
}
func (rl *ToGlog) Errorf(format string, v ...interface{}) {
	glog.ErrorDepth(1, fmt.Sprintf(format, v...))
}
