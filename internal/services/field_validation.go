package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/terraincognita07/steadfast/internal/models"
)

// presentValue reports a required/null violation for field and returns the
// decoded value when one was supplied.
func presentValue[T any](validation *ValidationError, field string, value Optional[T], required bool) (T, bool) {
	var zero T
	if !value.Set {
		if required {
			validation.Add(field, msgRequired)
		}
		return zero, false
	}
	if value.Value == nil {
		validation.Add(field, msgNotNull)
		return zero, false
	}
	return *value.Value, true
}

func validateName(validation *ValidationError, field string, value Optional[string], required bool, maxLength int) (string, bool) {
	raw, ok := presentValue(validation, field, value, required)
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(raw)
	if name == "" {
		validation.Add(field, msgBlank)
		return "", false
	}
	if utf8.RuneCountInString(name) > maxLength {
		validation.Add(field, fmt.Sprintf(msgMaxLength, maxLength))
		return "", false
	}
	return name, true
}

func validateDate(validation *ValidationError, field string, value Optional[string], required bool) (models.Date, bool) {
	raw, ok := presentValue(validation, field, value, required)
	if !ok {
		return models.Date{}, false
	}
	parsed, err := models.ParseDate(raw)
	if err != nil {
		validation.Add(field, msgDateFormat)
		return models.Date{}, false
	}
	return parsed, true
}
