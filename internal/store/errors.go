package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNoExtension indicates the given path has no file extension, so
	// the storage format cannot be chosen.
	ErrNoExtension = errors.New("no file extension found for given path")

	// ErrUnknownExtension indicates an extension outside json/yaml/yml/totp.
	ErrUnknownExtension = errors.New("unknown file extension given from path")

	// ErrMissingKey indicates an attempt to save an encrypted file without
	// the session key that loaded it.
	ErrMissingKey = errors.New("missing key for encrypted file")

	// ErrFileExists indicates a new-file operation would overwrite an
	// existing file.
	ErrFileExists = errors.New("the specified file already exists")
)

// ErrNameNotFound is returned when a record lookup by name fails.
type ErrNameNotFound struct {
	Name string
}

func (e *ErrNameNotFound) Error() string {
	return fmt.Sprintf("record name not found: %q", e.Name)
}
