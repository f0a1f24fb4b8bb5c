// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

const (
	// KeyLen is the symmetric key length produced by MakeKey.
	KeyLen = chacha20poly1305.KeySize

	// NonceLen is the extended XChaCha20 nonce length. The large nonce is
	// what makes fresh random nonces safe without any bookkeeping.
	NonceLen = chacha20poly1305.NonceSizeX
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// random is the entropy source for nonces. Production code uses the
	// OS CSPRNG; tests may substitute a reader to exercise read failures.
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] backed by the OS
// CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// MakeKey implements [KeyChainService]. It runs HKDF extract-and-expand
// with SHA3-256, no salt, and an empty info string over the passphrase,
// producing exactly KeyLen bytes of key material.
func (k *keyChainService) MakeKey(passphrase []byte) ([]byte, error) {
	kdf := hkdf.New(sha3.New256, passphrase, nil, nil)

	key := make([]byte, KeyLen)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}

	return key, nil
}

// MakeNonce implements [KeyChainService]. A failed read from the random
// source is fatal for the operation; there is no fallback.
func (k *keyChainService) MakeNonce() ([]byte, error) {
	nonce := make([]byte, NonceLen)
	if _, err := io.ReadFull(k.random, nonce); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	return nonce, nil
}

// Encrypt implements [KeyChainService]. The output layout is
// nonce (24 bytes) ‖ ciphertext+tag, with no additional authenticated
// data. Each call draws a fresh nonce.
func (k *keyChainService) Encrypt(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}

	nonce, err := k.MakeNonce()
	if err != nil {
		return nil, err
	}

	blob := make([]byte, NonceLen, NonceLen+len(plaintext)+aead.Overhead())
	copy(blob, nonce)

	return aead.Seal(blob, nonce, plaintext, nil), nil
}

// Decrypt implements [KeyChainService]. The first NonceLen bytes of blob
// are the nonce; the remainder is opaque AEAD output. A tag failure does
// not reveal whether the key or the ciphertext was at fault.
func (k *keyChainService) Decrypt(key, blob []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyLength, err)
	}

	if len(blob) < NonceLen {
		return nil, ErrInvalidFormat
	}

	nonce, ciphertext := blob[:NonceLen], blob[NonceLen:]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return plaintext, nil
}
