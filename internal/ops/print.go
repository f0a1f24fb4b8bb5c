// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/internal/utils"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// printTotpRecord dumps a record's fields: the secret in Base32 and as
// hex bytes, then the generation parameters and identifying labels.
func printTotpRecord(_ string, record models.TotpRecord) error {
	fmt.Printf("base32: %s\n", encodeSecret(record.Secret))
	fmt.Print(" bytes:")

	for _, b := range record.Secret {
		fmt.Printf(" %02X", b)
	}

	fmt.Printf(" (%d)\ndigits: %d\n  step: %ds\n  algo: %s\n",
		len(record.Secret), record.Digits, record.Step, record.Algo)

	if record.Issuer != nil {
		fmt.Printf("  issuer: %s\n", *record.Issuer)
	}
	if record.Username != nil {
		fmt.Printf("username: %s\n", *record.Username)
	}

	return nil
}

// printTotpCode prints the record's current code and how long it remains
// valid.
func printTotpCode(codes *service.CodeService) func(string, models.TotpRecord) error {
	return func(_ string, record models.TotpRecord) error {
		code, err := codes.Generate(record)
		if err != nil {
			return err
		}

		fmt.Printf("%s\nseconds left: %ds\n", code.Value, code.SecondsLeft)
		return nil
	}
}

// printRecordsList walks the records in name order, printing a padded
// name header before handing each record to the callback.
func printRecordsList(records models.TotpRecordDict, cb func(string, models.TotpRecord) error) error {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	longest := utils.LongestValue(names, 80)

	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}

		fmt.Println(utils.PadKey(name, longest))

		if err := cb(name, records[name]); err != nil {
			return err
		}
	}

	return nil
}
