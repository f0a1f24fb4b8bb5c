// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-totp-keeper/internal/ops"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ops.SetBuildInfo(buildVersion, buildDate, buildCommit)

	if err := ops.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
