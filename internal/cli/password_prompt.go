package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

// PromptNewPassword asks for a password twice without echoing it.
func PromptNewPassword(out io.Writer, stdin *os.File) (string, error) {
	first, err := promptSecret(out, stdin, "New password: ")
	if err != nil {
		return "", err
	}
	second, err := promptSecret(out, stdin, "Repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPasswordMismatch
	}
	return first, nil
}

func promptSecret(out io.Writer, stdin *os.File, label string) (string, error) {
	fmt.Fprint(out, label)
	secret, err := readPasswordNoEcho(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}

// readSecretLine reads one line byte by byte, so that nothing past the
// newline is consumed, and strips the line terminator. A final line without a
// newline is accepted.
func readSecretLine(reader io.Reader) ([]byte, error) {
	var line []byte
	buffer := make([]byte, 1)
	for {
		read, err := reader.Read(buffer)
		if read == 1 {
			if buffer[0] == '\n' {
				break
			}
			line = append(line, buffer[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return bytes.TrimRight(line, "\r"), nil
}
