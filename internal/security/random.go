package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// TemporaryPasswordAlphabet drops characters that are easy to misread.
	TemporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	secretKeyAlphabet         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	minTemporaryPasswordLength = 8
	SecretKeyLength            = 48
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// TemporaryPassword is handed out by administrative resets. Lengths below 8
// are raised to 8.
func TemporaryPassword(length int) (string, error) {
	return RandomString(max(length, minTemporaryPasswordLength), TemporaryPasswordAlphabet)
}

func NewSecretKey() (string, error) {
	return RandomString(SecretKeyLength, secretKeyAlphabet)
}
