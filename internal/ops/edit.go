// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit an existing record",
	Long: `Patches fields of an existing record. Only the flags that are
set on the command line are applied; everything else keeps its stored
value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		record, err := file.Get(name)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("secret") {
			rawSecret, _ := cmd.Flags().GetString("secret")

			secret, err := parseSecret(rawSecret)
			if err != nil {
				return err
			}
			record.Secret = secret
		}
		if cmd.Flags().Changed("algo") {
			rawAlgo, _ := cmd.Flags().GetString("algo")

			algo, err := parseAlgo(rawAlgo)
			if err != nil {
				return err
			}
			record.Algo = algo
		}
		if cmd.Flags().Changed("digits") {
			digits, _ := cmd.Flags().GetUint32("digits")
			record.Digits = digits
		}
		if cmd.Flags().Changed("step") {
			step, _ := cmd.Flags().GetUint64("step")
			record.Step = step
		}
		if cmd.Flags().Changed("issuer") {
			issuer, _ := cmd.Flags().GetString("issuer")
			record.Issuer = &issuer
		}
		if cmd.Flags().Changed("username") {
			username, _ := cmd.Flags().GetString("username")
			record.Username = &username
		}

		if err := printTotpRecord(name, record); err != nil {
			return err
		}

		file.Set(name, record)
		return file.Save()
	},
}

func init() {
	editCmd.Flags().StringP("name", "n", "", "the name of the record to edit")
	editCmd.Flags().StringP("secret", "s", "", "a valid BASE32 string")
	editCmd.Flags().StringP("algo", "a", "", "the desired algorithm used to generate codes with")
	editCmd.Flags().Uint32P("digits", "d", 0, "number of digits to generate for the codes")
	editCmd.Flags().Uint64P("step", "t", 0, "the step between generating new codes")
	editCmd.Flags().StringP("issuer", "i", "", "the issuer that the code is for")
	editCmd.Flags().StringP("username", "u", "", "the username associated with the codes")
	_ = editCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(editCmd)
}
