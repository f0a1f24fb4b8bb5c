// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a record in a record file",
	RunE: func(cmd *cobra.Command, args []string) error {
		original, _ := cmd.Flags().GetString("original")
		renamed, _ := cmd.Flags().GetString("renamed")

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		if err := file.Rename(original, renamed); err != nil {
			return err
		}

		if err := file.Save(); err != nil {
			return err
		}

		fmt.Printf("renamed %q to %q\n", original, renamed)
		return nil
	},
}

func init() {
	renameCmd.Flags().StringP("original", "o", "", "the current name of the record")
	renameCmd.Flags().StringP("renamed", "r", "", "the new name of the record")
	_ = renameCmd.MarkFlagRequired("original")
	_ = renameCmd.MarkFlagRequired("renamed")

	rootCmd.AddCommand(renameCmd)
}
