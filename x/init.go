/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"fmt"
)

var (
	// These variables are set using -ldflags
	spatialVersion string
	gitBranch      string
	lastCommitSHA  string
	lastCommitTime string
)

// NonRootTemplate is the help template used by every subcommand.
const NonRootTemplate = `{{if .Long}}{{.Long}}{{else}}{{.Short}}{{end}}

Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

// BuildDetails returns a string containing details about the binary.
func BuildDetails() string {
	return fmt.Sprintf(`
Spatial version  : %v
Commit SHA-1     : %v
Commit timestamp : %v
Branch           : %v

Licensed under the Apache Public License 2.0.
`,
		Version(), lastCommitSHA, lastCommitTime, gitBranch)
}

// Version returns the version of the binary, "dev" for untagged builds.
func Version() string {
	if spatialVersion == "" {
		return "dev"
	}
	return spatialVersion
}
