// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/internal/store"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new encrypted record file",
	Long: `Creates an empty encrypted record file protected by a passphrase.
The file is written with a .totp extension and refuses to overwrite an
existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		directory, _ := cmd.Flags().GetString("directory")

		if filepath.Ext(name) == "" {
			name += ".totp"
		}
		path := filepath.Join(directory, name)

		passphrase, err := promptPassphrase("secret")
		if err != nil {
			return err
		}

		file, err := store.NewEncrypted(path, passphrase)
		if err != nil {
			return err
		}

		if err := file.Save(); err != nil {
			return err
		}

		fmt.Printf("created %s\n", file.Path)
		log.Info().Str("path", file.Path).Msg("record file created")
		return nil
	},
}

func init() {
	newCmd.Flags().StringP("name", "n", "", "the name of the new record file")
	newCmd.Flags().StringP("directory", "d", ".", "the directory to create the record file in")
	_ = newCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(newCmd)
}
