// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/models"
)

func fixedPassphrase(secret string) PassphraseFunc {
	return func(string) ([]byte, error) {
		return []byte(secret), nil
	}
}

func noPassphrase(t *testing.T) PassphraseFunc {
	return func(string) ([]byte, error) {
		t.Fatalf("passphrase requested for a plaintext file")
		return nil, nil
	}
}

func sampleRecords() models.TotpRecordDict {
	issuer := "example.com"
	return models.TotpRecordDict{
		"main": {
			Secret: models.Secret("12345678901234567890"),
			Algo:   models.AlgoSHA1,
			Digits: 6,
			Step:   30,
			Issuer: &issuer,
		},
	}
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    FileType
		wantErr error
	}{
		{name: "json", path: "records.json", want: FileTypeJSON},
		{name: "yaml", path: "records.yaml", want: FileTypeYAML},
		{name: "yml", path: "records.yml", want: FileTypeYAML},
		{name: "totp", path: "records.totp", want: FileTypeTOTP},
		{name: "uppercase extension", path: "records.TOTP", want: FileTypeTOTP},
		{name: "unknown extension", path: "records.txt", wantErr: ErrUnknownExtension},
		{name: "no extension", path: "records", wantErr: ErrNoExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFileType(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPath_JSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"main":{"secret":[1,2,3]}}`), 0o600))

	file, err := FromPath(path, noPassphrase(t))
	require.NoError(t, err)
	assert.Equal(t, FileTypeJSON, file.Type)

	record, err := file.Get("main")
	require.NoError(t, err)
	assert.Equal(t, models.Secret{1, 2, 3}, record.Secret)
	assert.Equal(t, models.AlgoSHA1, record.Algo)

	file.Set("second", models.TotpRecord{Secret: models.Secret{9}, Algo: models.AlgoSHA256, Digits: 8, Step: 60})
	require.NoError(t, file.Save())

	reloaded, err := FromPath(path, noPassphrase(t))
	require.NoError(t, err)
	assert.Len(t, reloaded.Records, 2)
	assert.Equal(t, file.Records, reloaded.Records)
}

func TestFromPath_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte("main:\n  secret: [4, 5, 6]\n  digits: 8\n"), 0o600))

	file, err := FromPath(path, noPassphrase(t))
	require.NoError(t, err)
	assert.Equal(t, FileTypeYAML, file.Type)

	record, err := file.Get("main")
	require.NoError(t, err)
	assert.Equal(t, models.Secret{4, 5, 6}, record.Secret)
	assert.Equal(t, uint32(8), record.Digits)
	assert.Equal(t, models.DefaultStep, record.Step)

	require.NoError(t, file.Save())

	reloaded, err := FromPath(path, noPassphrase(t))
	require.NoError(t, err)
	assert.Equal(t, file.Records, reloaded.Records)
}

func TestEncryptedFile_FullSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.totp")

	created, err := NewEncrypted(path, []byte("hunter2"))
	require.NoError(t, err)
	require.NoError(t, created.Save())

	// The on-disk form must be an opaque blob, not JSON.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), crypto.NonceLen)
	assert.NotContains(t, string(raw), "secret")

	loaded, err := FromPath(path, fixedPassphrase("hunter2"))
	require.NoError(t, err)
	assert.Empty(t, loaded.Records)

	for name, record := range sampleRecords() {
		loaded.Set(name, record)
	}
	require.NoError(t, loaded.Save())

	reloaded, err := FromPath(path, fixedPassphrase("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, loaded.Records, reloaded.Records)
}

func TestEncryptedFile_WrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.totp")

	created, err := NewEncrypted(path, []byte("right"))
	require.NoError(t, err)
	require.NoError(t, created.Save())

	_, err = FromPath(path, fixedPassphrase("wrong"))
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestEncryptedFile_TruncatedBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.totp")
	require.NoError(t, os.WriteFile(path, []byte("too short"), 0o600))

	_, err := FromPath(path, fixedPassphrase("any"))
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidFormat)
	assert.NotErrorIs(t, err, crypto.ErrDecrypt)
}

func TestNewEncrypted_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.totp")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	_, err := NewEncrypted(path, []byte("pw"))
	assert.ErrorIs(t, err, ErrFileExists)
}

func TestNewEncrypted_RequiresTotpExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")

	_, err := NewEncrypted(path, []byte("pw"))
	assert.ErrorIs(t, err, ErrUnknownExtension)
}

func TestFromPath_MissingSecretFailsParsing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"main":{"digits":6}}`), 0o600))

	_, err := FromPath(path, noPassphrase(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMissingSecret)
}

func TestSave_FailedEncodeLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.totp")

	created, err := NewEncrypted(path, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, created.Save())

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	// Losing the session key makes encoding fail before any write.
	created.key = nil
	err = created.Save()
	require.ErrorIs(t, err, ErrMissingKey)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGetDropRename(t *testing.T) {
	file := &TotpFile{Records: sampleRecords()}

	_, err := file.Get("missing")
	var notFound *ErrNameNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Name)

	require.NoError(t, file.Rename("main", "primary"))
	_, err = file.Get("main")
	assert.Error(t, err)
	_, err = file.Get("primary")
	assert.NoError(t, err)

	assert.Error(t, file.Drop("main"))
	require.NoError(t, file.Drop("primary"))
	assert.Empty(t, file.Records)
}
