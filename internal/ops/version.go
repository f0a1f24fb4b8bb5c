// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// SetBuildInfo records the ldflags-injected build metadata shown by the
// version command. Empty values keep the N/A placeholder.
func SetBuildInfo(version, date, commit string) {
	if version != "" {
		buildVersion = version
	}
	if date != "" {
		buildDate = date
	}
	if commit != "" {
		buildCommit = commit
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Build version: %s\n", buildVersion)
		fmt.Printf("Build date: %s\n", buildDate)
		fmt.Printf("Build commit: %s\n", buildCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
