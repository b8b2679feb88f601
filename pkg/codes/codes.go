package codes

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// alphabet omits 0/O/1/I to keep codes readable over the phone.
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const DefaultLength = 8

// Generate produces an upper-case referral code of n random characters,
// prefixed with "PREFIX-" when prefix is non-empty.
func Generate(prefix string, n int) (string, error) {
	if n <= 0 {
		n = DefaultLength
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("can't read random bytes: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	body := string(b)
	if prefix == "" {
		return body, nil
	}
	return Normalize(prefix) + "-" + body, nil
}

// Normalize maps a user-supplied code to its canonical form. Codes are
// compared case-insensitively and stored upper-case.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
