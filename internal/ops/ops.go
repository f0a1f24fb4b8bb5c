// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ops wires the CLI commands of totp-keeper. Each operation
// loads the record file, mutates it in memory or generates codes, and
// saves it back; all cryptography and persistence lives in the store and
// crypto packages.
package ops

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/internal/config"
	"github.com/MKhiriev/go-totp-keeper/internal/logger"
	"github.com/MKhiriev/go-totp-keeper/internal/store"
)

var (
	cfg *config.StructuredConfig
	log = logger.Nop()

	// filePath is the -f/--file override shared by every subcommand.
	filePath string
)

var rootCmd = &cobra.Command{
	Use:   "totpkeeper",
	Short: "Manage TOTP credentials stored in a local record file",
	Long: `totpkeeper stores named TOTP credentials in a single file and
generates live codes from them.

The storage format follows the file extension: plaintext JSON (.json),
plaintext YAML (.yaml/.yml), or an encrypted binary store (.totp) that is
protected by a passphrase. Without -f/--file, commands use ` + "`records.totp`" + `
in the current directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.GetConfig()
		if err != nil {
			return err
		}

		cfg = loaded
		log = logger.NewFileLogger("cli", cfg.App.LogFile)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "record file to operate on")
}

// openRecordFile resolves the effective record file path and loads it,
// prompting for a passphrase when the file is encrypted.
func openRecordFile() (*store.TotpFile, error) {
	path, err := resolveRecordsFile(filePath, cfg.App.RecordsFile)
	if err != nil {
		return nil, err
	}

	file, err := store.FromPath(path, promptPassphrase)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Int("records", len(file.Records)).Msg("record file loaded")
	return file, nil
}
