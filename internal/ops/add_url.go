// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"github.com/spf13/cobra"
)

var addURLCmd = &cobra.Command{
	Use:   "add-url",
	Short: "Add a new record from an otpauth URL",
	Long: `Adds a new record parsed from a provisioning URL of the form
otpauth://totp/ISSUER:USERNAME?secret=...&algorithm=...&digits=...&period=...

Unrecognized query parameters are reported but do not fail the import.
The record name defaults to the issuer in the URL label and can be
overridden with --name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rawURL, _ := cmd.Flags().GetString("url")
		viewOnly, _ := cmd.Flags().GetBool("view-only")

		parsed, err := parseOtpauthURL(rawURL)
		if err != nil {
			return err
		}

		for _, key := range parsed.Unknowns {
			cmd.PrintErrf("unknown query parameter in url: %s\n", key)
			log.Warn().Str("key", key).Msg("unknown query parameter in otpauth url")
		}

		name := parsed.Name
		if cmd.Flags().Changed("name") {
			name, _ = cmd.Flags().GetString("name")
		}

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		if err := printTotpRecord(name, parsed.Record); err != nil {
			return err
		}

		if viewOnly {
			return nil
		}

		file.Set(name, parsed.Record)
		return file.Save()
	},
}

func init() {
	addURLCmd.Flags().String("url", "", "the otpauth url to parse the record from")
	addURLCmd.Flags().StringP("name", "n", "", "overrides the record name taken from the url label")
	addURLCmd.Flags().BoolP("view-only", "v", false, "views the record and will not add it to the file")
	_ = addURLCmd.MarkFlagRequired("url")

	rootCmd.AddCommand(addURLCmd)
}
