// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Remove a record from a record file",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		file, err := openRecordFile()
		if err != nil {
			return err
		}

		if err := file.Drop(name); err != nil {
			return err
		}

		if err := file.Save(); err != nil {
			return err
		}

		fmt.Printf("dropped %q\n", name)
		return nil
	},
}

func init() {
	dropCmd.Flags().StringP("name", "n", "", "the name of the record to remove")
	_ = dropCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(dropCmd)
}
