package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyPassphrase is returned when the entered passphrase is blank.
var ErrEmptyPassphrase = errors.New("passphrase cannot be empty")

// promptPassphrase reads a passphrase from in, without echo when in is a terminal.
func promptPassphrase(in *os.File, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter passphrase: ")

	var passphrase string

	if fd := int(in.Fd()); term.IsTerminal(fd) { //nolint:gosec // file descriptors fit in int
		raw, err := term.ReadPassword(fd)

		fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}

		passphrase = string(raw)
	} else {
		line, err := readLine(in)
		if err != nil {
			return "", err
		}

		passphrase = line
	}

	if strings.TrimSpace(passphrase) == "" {
		return "", ErrEmptyPassphrase
	}

	return passphrase, nil
}

// readLine reads one line from r without its line ending.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
