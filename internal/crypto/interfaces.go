package crypto

// KeyChainService owns all key material handling for encrypted record
// files. It knows nothing about paths, records, or prompts; its inputs and
// outputs are byte buffers.
//
// Usage for one encrypted-file session:
//
//	key  = MakeKey(passphrase)    (once per file session)
//	blob = Encrypt(key, json)     (on save)
//	json = Decrypt(key, blob)     (on load)
//
// The key lives only in memory for the lifetime of the session and is
// never written anywhere. There is no key-check field in the blob: a wrong
// passphrase surfaces as a tag-verification failure on Decrypt.
type KeyChainService interface {
	// MakeKey stretches a user passphrase into a 32-byte symmetric key.
	// Deterministic: the same passphrase always yields the same key, which
	// is what lets a user re-derive it from memory.
	MakeKey(passphrase []byte) ([]byte, error)

	// MakeNonce returns 24 fresh bytes from the OS CSPRNG. A nonce is
	// used at most once per key.
	MakeNonce() ([]byte, error)

	// Encrypt seals plaintext under key with a fresh random nonce and
	// returns the blob nonce ‖ ciphertext+tag.
	Encrypt(key, plaintext []byte) ([]byte, error)

	// Decrypt splits a blob produced by Encrypt and opens it. Fails with
	// [ErrInvalidFormat] if the blob cannot hold a nonce, and with
	// [ErrDecrypt] if the authentication tag does not verify.
	Decrypt(key, blob []byte) ([]byte, error)
}
