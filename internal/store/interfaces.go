package store

// PassphraseFunc supplies the user's passphrase for an encrypted record
// file. The CLI installs an interactive prompt; tests install a fixture.
// The store calls it at most once per load and never retries a failed
// decrypt with a re-prompt; that choice belongs to the caller.
type PassphraseFunc func(prompt string) ([]byte, error)
