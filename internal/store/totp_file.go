// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists named TOTP records to a single file. The storage
// format follows the path extension: plaintext JSON (.json), plaintext
// YAML (.yaml/.yml), or a passphrase-encrypted binary layout (.totp) where
// the first 24 bytes are the nonce and the rest is AEAD output over the
// JSON-serialized record mapping.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-totp-keeper/internal/crypto"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// FileType is the storage format of a record file.
type FileType int

const (
	FileTypeJSON FileType = iota
	FileTypeYAML
	FileTypeTOTP
)

// DetectFileType maps a path extension to its storage format.
func DetectFileType(path string) (FileType, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, ErrNoExtension
	}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return FileTypeJSON, nil
	case "yaml", "yml":
		return FileTypeYAML, nil
	case "totp":
		return FileTypeTOTP, nil
	default:
		return 0, ErrUnknownExtension
	}
}

// TotpFile is a loaded record file: its resolved path, detected format,
// in-memory records, and for encrypted files the session key derived
// from the passphrase at load time. The key is kept only so the user does
// not have to provide the passphrase twice within one session; it is never
// persisted and is not reused across files.
type TotpFile struct {
	Path    string
	Type    FileType
	Records models.TotpRecordDict

	key      []byte
	keychain crypto.KeyChainService
}

// FromPath reads and parses the record file at path. For encrypted files
// the passphrase function is invoked once and the derived key is retained
// for the eventual Save.
func FromPath(path string, passphrase PassphraseFunc) (*TotpFile, error) {
	fileType, err := DetectFileType(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}

	file := &TotpFile{
		Path:     path,
		Type:     fileType,
		keychain: crypto.NewKeyChainService(),
	}

	switch fileType {
	case FileTypeJSON:
		if err := json.Unmarshal(data, &file.Records); err != nil {
			return nil, fmt.Errorf("parse json records: %w", err)
		}
	case FileTypeYAML:
		if err := yaml.Unmarshal(data, &file.Records); err != nil {
			return nil, fmt.Errorf("parse yaml records: %w", err)
		}
	case FileTypeTOTP:
		secret, err := passphrase("secret")
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}

		key, err := file.keychain.MakeKey(secret)
		if err != nil {
			return nil, err
		}

		plaintext, err := file.keychain.Decrypt(key, data)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(plaintext, &file.Records); err != nil {
			return nil, fmt.Errorf("parse decrypted records: %w", err)
		}

		file.key = key
	}

	if file.Records == nil {
		file.Records = make(models.TotpRecordDict)
	}

	return file, nil
}

// NewEncrypted prepares an empty encrypted record file at path without
// touching the filesystem yet; Save writes it. Fails if path already
// exists or does not carry the .totp extension.
func NewEncrypted(path string, passphrase []byte) (*TotpFile, error) {
	fileType, err := DetectFileType(path)
	if err != nil {
		return nil, err
	}
	if fileType != FileTypeTOTP {
		return nil, ErrUnknownExtension
	}

	if _, err := os.Stat(path); err == nil {
		return nil, ErrFileExists
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat record file: %w", err)
	}

	keychain := crypto.NewKeyChainService()
	key, err := keychain.MakeKey(passphrase)
	if err != nil {
		return nil, err
	}

	return &TotpFile{
		Path:     path,
		Type:     FileTypeTOTP,
		Records:  make(models.TotpRecordDict),
		key:      key,
		keychain: keychain,
	}, nil
}

// Get looks up a record by name.
func (f *TotpFile) Get(name string) (models.TotpRecord, error) {
	record, ok := f.Records[name]
	if !ok {
		return models.TotpRecord{}, &ErrNameNotFound{Name: name}
	}

	return record, nil
}

// Set inserts or replaces a record.
func (f *TotpFile) Set(name string, record models.TotpRecord) {
	f.Records[name] = record
}

// Drop removes a record by name.
func (f *TotpFile) Drop(name string) error {
	if _, ok := f.Records[name]; !ok {
		return &ErrNameNotFound{Name: name}
	}

	delete(f.Records, name)
	return nil
}

// Rename moves a record from original to renamed. An existing record
// under the new name is replaced.
func (f *TotpFile) Rename(original, renamed string) error {
	record, ok := f.Records[original]
	if !ok {
		return &ErrNameNotFound{Name: original}
	}

	delete(f.Records, original)
	f.Records[renamed] = record
	return nil
}

// encode serializes the records into the file's storage format entirely in
// memory. Encrypted files are JSON-serialized and sealed with the session
// key under a fresh nonce.
func (f *TotpFile) encode() ([]byte, error) {
	switch f.Type {
	case FileTypeJSON:
		data, err := json.Marshal(f.Records)
		if err != nil {
			return nil, fmt.Errorf("serialize json records: %w", err)
		}
		return data, nil
	case FileTypeYAML:
		data, err := yaml.Marshal(f.Records)
		if err != nil {
			return nil, fmt.Errorf("serialize yaml records: %w", err)
		}
		return data, nil
	case FileTypeTOTP:
		if f.key == nil {
			return nil, ErrMissingKey
		}

		plaintext, err := json.Marshal(f.Records)
		if err != nil {
			return nil, fmt.Errorf("serialize records for encryption: %w", err)
		}

		return f.keychain.Encrypt(f.key, plaintext)
	default:
		return nil, ErrUnknownExtension
	}
}

// Save writes the records back to the file's path. Encoding (and
// encryption) completes in memory before a single write happens, so a
// failure along the way leaves the previous on-disk file untouched.
func (f *TotpFile) Save() error {
	contents, err := f.encode()
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.Path, contents, 0o600); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}

	return nil
}
