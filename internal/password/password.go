package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	// DefaultLength is the length of generated database passwords.
	DefaultLength = 10

	// Alphabet holds the 62 symbols a password is drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ErrInvalidLength is returned when a password of less than one character is requested.
var ErrInvalidLength = errors.New("password length must be at least 1")

// Reader is the entropy source used by Generate.
var Reader io.Reader = rand.Reader

// Generate returns a random alphanumeric string of exactly length characters.
//
// Each character is picked by reducing one random byte modulo len(Alphabet).
// 256 is not a multiple of 62, so the first 8 symbols are very slightly more
// likely than the rest.
func Generate(length int) (string, error) {
	return generate(Reader, length)
}

// MustGenerate is like Generate but panics if the entropy source fails.
func MustGenerate(length int) string {
	pwd, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return pwd
}

func generate(r io.Reader, length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}

	return string(buf), nil
}
