// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// totp-keeper application. It is populated by merging values from
// environment variables and an optional JSON file; command-line flags are
// handled per command and override these values at the call site.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the default record
	// file and log destination.
	App App `envPrefix:"APP_"`

	// Watch holds settings for the live-code watch screen.
	Watch Watch `envPrefix:"WATCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// RecordsFile is the record file used when a command does not pass
	// -f/--file. Relative paths resolve against the working directory.
	// Env: APP_RECORDS_FILE
	RecordsFile string `env:"RECORDS_FILE"`

	// LogFile is the destination for diagnostic logs. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Watch holds settings for the watch screen refresh loop.
type Watch struct {
	// RefreshInterval is the redraw period of the live-code screen.
	// Env: WATCH_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetConfig loads, merges, and validates the application configuration
// from all available sources in the following priority order (first
// source wins for non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RecordsFile: "records.totp",
		},
		Watch: Watch{
			RefreshInterval: time.Second,
		},
	}
}

func (c *StructuredConfig) validate() error {
	if c.Watch.RefreshInterval <= 0 {
		return ErrInvalidWatchConfigs
	}

	if c.App.RecordsFile == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
