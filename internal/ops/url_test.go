// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-totp-keeper/models"
)

func TestParseOtpauthURL(t *testing.T) {
	t.Run("full url with label and parameters", func(t *testing.T) {
		parsed, err := parseOtpauthURL("otpauth://totp/Example:alice@example.com?secret=JBSWY3DPEHPK3PXP&issuer=Example&algorithm=SHA256&digits=8&period=60")
		require.NoError(t, err)

		assert.Equal(t, "Example", parsed.Name)
		assert.Equal(t, models.AlgoSHA256, parsed.Record.Algo)
		assert.Equal(t, uint32(8), parsed.Record.Digits)
		assert.Equal(t, uint64(60), parsed.Record.Step)
		require.NotNil(t, parsed.Record.Issuer)
		assert.Equal(t, "Example", *parsed.Record.Issuer)
		require.NotNil(t, parsed.Record.Username)
		assert.Equal(t, "alice@example.com", *parsed.Record.Username)
		assert.Equal(t, models.Secret("Hello!\xde\xad\xbe\xef"), parsed.Record.Secret)
		assert.Empty(t, parsed.Unknowns)
	})

	t.Run("minimal url keeps defaults", func(t *testing.T) {
		parsed, err := parseOtpauthURL("otpauth://totp/?secret=JBSWY3DPEHPK3PXP")
		require.NoError(t, err)

		assert.Equal(t, "Unknown", parsed.Name)
		assert.Equal(t, models.AlgoSHA1, parsed.Record.Algo)
		assert.Equal(t, uint32(models.DefaultDigits), parsed.Record.Digits)
		assert.Equal(t, uint64(models.DefaultStep), parsed.Record.Step)
		assert.Nil(t, parsed.Record.Issuer)
		assert.Nil(t, parsed.Record.Username)
	})

	t.Run("label without separator names the record", func(t *testing.T) {
		parsed, err := parseOtpauthURL("otpauth://totp/GitHub?secret=JBSWY3DPEHPK3PXP")
		require.NoError(t, err)

		assert.Equal(t, "GitHub", parsed.Name)
		assert.Nil(t, parsed.Record.Issuer)
	})

	t.Run("step is a synonym for period", func(t *testing.T) {
		parsed, err := parseOtpauthURL("otpauth://totp/x?secret=JBSWY3DPEHPK3PXP&step=90")
		require.NoError(t, err)

		assert.Equal(t, uint64(90), parsed.Record.Step)
	})

	t.Run("unknown query keys are collected not fatal", func(t *testing.T) {
		parsed, err := parseOtpauthURL("otpauth://totp/x?secret=JBSWY3DPEHPK3PXP&counter=5")
		require.NoError(t, err)

		assert.Equal(t, []string{"counter"}, parsed.Unknowns)
	})

	tests := []struct {
		name string
		url  string
		want error
	}{
		{name: "wrong scheme", url: "https://totp/x?secret=JBSWY3DPEHPK3PXP", want: ErrURLScheme},
		{name: "wrong host", url: "otpauth://hotp/x?secret=JBSWY3DPEHPK3PXP", want: ErrURLHost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOtpauthURL(tt.url)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("invalid secret fails", func(t *testing.T) {
		_, err := parseOtpauthURL("otpauth://totp/x?secret=notbase32!!")
		assert.Error(t, err)
	})

	t.Run("invalid digits fails", func(t *testing.T) {
		_, err := parseOtpauthURL("otpauth://totp/x?secret=JBSWY3DPEHPK3PXP&digits=six")
		assert.Error(t, err)
	})
}

func TestBuildOtpauthURL(t *testing.T) {
	issuer := "Example"
	username := "alice@example.com"

	record := models.TotpRecord{
		Secret:   models.Secret("Hello!\xde\xad\xbe\xef"),
		Algo:     models.AlgoSHA256,
		Digits:   8,
		Step:     60,
		Issuer:   &issuer,
		Username: &username,
	}

	raw := buildOtpauthURL("ignored", record)

	parsed, err := parseOtpauthURL(raw)
	require.NoError(t, err)

	assert.Equal(t, record.Secret, parsed.Record.Secret)
	assert.Equal(t, record.Algo, parsed.Record.Algo)
	assert.Equal(t, record.Digits, parsed.Record.Digits)
	assert.Equal(t, record.Step, parsed.Record.Step)
	require.NotNil(t, parsed.Record.Issuer)
	assert.Equal(t, issuer, *parsed.Record.Issuer)
	require.NotNil(t, parsed.Record.Username)
	assert.Equal(t, username, *parsed.Record.Username)
	assert.Equal(t, issuer, parsed.Name)
}

func TestBuildOtpauthURLWithoutLabels(t *testing.T) {
	record := models.TotpRecord{
		Secret: models.Secret{0xde, 0xad, 0xbe, 0xef},
		Algo:   models.AlgoSHA1,
		Digits: 6,
		Step:   30,
	}

	raw := buildOtpauthURL("GitHub", record)
	assert.Contains(t, raw, "otpauth://totp/GitHub?")

	parsed, err := parseOtpauthURL(raw)
	require.NoError(t, err)
	assert.Equal(t, "GitHub", parsed.Name)
	assert.Nil(t, parsed.Record.Issuer)
}
