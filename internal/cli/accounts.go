package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/terraincognita07/steadfast/internal/security"
	"github.com/terraincognita07/steadfast/internal/services"
)

const temporaryPasswordLength = 12

// CreateUser adds an account from the command line. Field problems are
// reported one per line.
func CreateUser(auth *services.AuthService, username string, password string, out io.Writer) error {
	user, err := auth.CreateUser(username, password, false)
	if err != nil {
		return describeValidation(err)
	}
	fmt.Fprintf(out, "Created user %s (id %d)\n", user.Username, user.ID)
	return nil
}

// ResetPassword replaces the password of username with a temporary one that
// must be changed on next login, and returns it.
func ResetPassword(auth *services.AuthService, username string, out io.Writer) (string, error) {
	user, err := auth.FindByUsername(username)
	if errors.Is(err, services.ErrUserNotFound) {
		return "", fmt.Errorf("user %q not found", services.NormalizeUsername(username))
	}
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}

	temporary, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}
	if err := auth.SetPassword(user.ID, temporary, true); err != nil {
		return "", fmt.Errorf("update password: %w", err)
	}

	fmt.Fprintf(out, "Password reset for %s\n", user.Username)
	fmt.Fprintf(out, "Temporary password: %s\n", temporary)
	fmt.Fprintln(out, "The user must change it before logging in.")
	return temporary, nil
}

func describeValidation(err error) error {
	var validation *services.ValidationError
	if !errors.As(err, &validation) {
		return err
	}

	fields := make([]string, 0, len(validation.Fields))
	for field := range validation.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var lines strings.Builder
	lines.WriteString("invalid input")
	for _, field := range fields {
		for _, message := range validation.Fields[field] {
			fmt.Fprintf(&lines, "\n  %s: %s", field, message)
		}
	}
	return errors.New(lines.String())
}
