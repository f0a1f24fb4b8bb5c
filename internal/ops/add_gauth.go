package ops

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-totp-keeper/models"
)

var addGauthCmd = &cobra.Command{
	Use:   "add-gauth",
	Short: "Add a new record with Google Authenticator defaults",
	Long: `Adds a new record to a record file with Google Authenticator
defaults: 6 digits, a 30 second step, and the SHA1 algorithm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		rawSecret, _ := cmd.Flags().GetString("secret")

		secret, err := parseSecret(rawSecret)
		if err != nil {
			return err
		}

		record := models.TotpRecord{
			Secret: secret,
			Algo:   models.AlgoSHA1,
			Digits: models.DefaultDigits,
			Step:   models.DefaultStep,
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
	addGauthCmd.Flags().StringP("name", "n", "Unknown", "the name of the new record")
	addGauthCmd.Flags().StringP("secret", "s", "", "the desired secret to assign the new record")
	_ = addGauthCmd.MarkFlagRequired("secret")

	rootCmd.AddCommand(addGauthCmd)
}
