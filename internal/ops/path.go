package ops

import (
	"os"
	"path/filepath"
)

// resolveRecordsFile picks the record file for an operation: the explicit
// -f/--file value when given, the configured default otherwise. Relative
// paths resolve against the current working directory.
func resolveRecordsFile(flagPath, configuredPath string) (string, error) {
	path := flagPath
	if path == "" {
		path = configuredPath
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Join(cwd, path), nil
}
