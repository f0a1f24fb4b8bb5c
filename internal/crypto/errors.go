package crypto

import "errors"

// Sentinel errors for the keychain. Callers match these with [errors.Is]
// to map failures to user-facing behavior.
var (
	// ErrKeyDerivation indicates the KDF expand step failed. With the
	// fixed 32-byte output length this is practically unreachable, but it
	// stays part of the contract.
	ErrKeyDerivation = errors.New("failed to create a valid key length")

	// ErrInvalidKeyLength indicates the AEAD rejected the key material.
	ErrInvalidKeyLength = errors.New("length of provided key is invalid")

	// ErrInvalidFormat indicates an encrypted blob too short to even hold
	// the nonce prefix.
	ErrInvalidFormat = errors.New("invalid file format for encrypted file")

	// ErrDecrypt indicates authentication-tag verification failed. A wrong
	// key and corrupted data are deliberately indistinguishable.
	ErrDecrypt = errors.New("failed to decrypt requested data")

	// ErrEncrypt indicates the AEAD seal operation failed.
	ErrEncrypt = errors.New("failed to encrypt requested data")

	// ErrEntropy indicates the OS random source could not be read. This is
	// fatal; nonces are never generated from a weaker source.
	ErrEntropy = errors.New("failed to read random bytes from the OS")
)
