// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/models"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new record to a record file",
	Long:  "The manual process of adding new codes to a desired record file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		rawSecret, _ := cmd.Flags().GetString("secret")
		rawAlgo, _ := cmd.Flags().GetString("algo")
		digits, _ := cmd.Flags().GetUint32("digits")
		step, _ := cmd.Flags().GetUint64("step")

		secret, err := parseSecret(rawSecret)
		if err != nil {
			return err
		}

		algo, err := parseAlgo(rawAlgo)
		if err != nil {
			return err
		}

		record := models.TotpRecord{
			Secret: secret,
			Algo:   algo,
			Digits: digits,
			Step:   step,
		}

		if cmd.Flags().Changed("issuer") {
			issuer, _ := cmd.Flags().GetString("issuer")
			record.Issuer = &issuer
		}
		if cmd.Flags().Changed("username") {
			username, _ := cmd.Flags().GetString("username")
			record.Username = &username
		}

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		if err := printTotpRecord(name, record); err != nil {
			return err
		}

		file.Set(name, record)
		return file.Save()
	},
}

func init() {
	addCmd.Flags().StringP("name", "n", "", "the name of the new record")
	addCmd.Flags().StringP("secret", "s", "", "a valid BASE32 string")
	addCmd.Flags().StringP("algo", "a", "SHA1", "the desired algorithm used to generate codes with")
	addCmd.Flags().Uint32P("digits", "d", models.DefaultDigits, "number of digits to generate for the codes")
	addCmd.Flags().Uint64P("step", "t", models.DefaultStep, "the step between generating new codes")
	addCmd.Flags().StringP("issuer", "i", "", "the issuer that the code is for")
	addCmd.Flags().StringP("username", "u", "", "the username associated with the codes")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("secret")

	rootCmd.AddCommand(addCmd)
}
