package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

const maxUsernameLength = 150

const msgUsernameTaken = "A user with that username already exists."

// NormalizeUsername applies NFKC so visually identical names collide.
func NormalizeUsername(raw string) string {
	return norm.NFKC.String(strings.TrimSpace(raw))
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := NormalizeUsername(usernameRaw)
	if username == "" || passwordRaw == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, passwordRaw, nil
}

// usernameProblem returns the message describing why username is unusable,
// or "" when it is acceptable.
func usernameProblem(username string) string {
	switch {
	case username == "":
		return msgRequired
	case utf8.RuneCountInString(username) > maxUsernameLength:
		return fmt.Sprintf(msgMaxLength, maxUsernameLength)
	default:
		return ""
	}
}
