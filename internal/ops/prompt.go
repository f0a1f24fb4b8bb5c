package ops

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassphrase asks the user for the secret protecting an encrypted
// record file. On a terminal the input is read with echo disabled; when
// stdin is not a terminal (tests, pipes) it falls back to a plain line
// read.
func promptPassphrase(prompt string) ([]byte, error) {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		passphrase, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("read passphrase: %w", err)
		}

		return passphrase, nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}

	return []byte(strings.TrimRight(line, "\r\n")), nil
}
