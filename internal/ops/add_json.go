// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/models"
)

var addJSONCmd = &cobra.Command{
	Use:   "add-json",
	Short: "Add a new record from a JSON string",
	Long: `Adds a new record to a record file using a json string.

The key value pairs of the json are as follows:
  secret:   array of byte values (required)
  algo:     string "SHA1", "SHA256", "SHA512" (default "SHA1")
  digits:   unsigned integer (default 6)
  step:     unsigned integer (default 30)
  issuer:   string (optional)
  username: string (optional)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		rawJSON, _ := cmd.Flags().GetString("json")
		viewOnly, _ := cmd.Flags().GetBool("view-only")

		var record models.TotpRecord
		if err := json.Unmarshal([]byte(rawJSON), &record); err != nil {
			return fmt.Errorf("parse record json: %w", err)
		}

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		if err := printTotpRecord(name, record); err != nil {
			return err
		}

		if viewOnly {
			return nil
		}

		file.Set(name, record)
		return file.Save()
	},
}

func init() {
	addJSONCmd.Flags().StringP("name", "n", "", "the name of the new record")
	addJSONCmd.Flags().String("json", "", "the json string of the record to add")
	addJSONCmd.Flags().BoolP("view-only", "v", false, "views the record and will not add it to the file")
	_ = addJSONCmd.MarkFlagRequired("name")
	_ = addJSONCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(addJSONCmd)
}
