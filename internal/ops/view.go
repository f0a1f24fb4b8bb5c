// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/models"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View records stored in a record file",
	Long: `Prints the stored records with their secrets and generation
parameters. Without --name, every record in the file is shown. With --qr,
the record is rendered as a terminal QR code of its provisioning URL for
import into authenticator apps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showQR, _ := cmd.Flags().GetBool("qr")

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		printer := printTotpRecord
		if showQR {
			printer = printTotpQR
		}

		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")

			record, err := file.Get(name)
			if err != nil {
				return err
			}

			return printer(name, record)
		}

		return printRecordsList(file.Records, printer)
	},
}

// printTotpQR renders the record's provisioning URL as a QR code drawn
// with half-block characters.
func printTotpQR(name string, record models.TotpRecord) error {
	code, err := qrcode.New(buildOtpauthURL(name, record), qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to build qr code: %w", err)
	}

	fmt.Print(code.ToSmallString(false))
	return nil
}

func init() {
	viewCmd.Flags().StringP("name", "n", "", "the name of a single record to view")
	viewCmd.Flags().BoolP("qr", "q", false, "render the record as a qr code")

	rootCmd.AddCommand(viewCmd)
}
