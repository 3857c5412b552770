package utils

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// MaskCode masks a participant code for logging (show first 2 and last 2
// characters only)
func MaskCode(code string) string {
	if len(code) > 4 {
		return code[:2] + "******" + code[len(code)-2:]
	}
	return "******"
}

// GenerateReferenceCode generates a random participant code of the given
// length, drawn from the system entropy pool. Codes are upper-case base32,
// so they survive being read over the phone.
func GenerateReferenceCode(length int) (string, error) {
	if length < 1 {
		length = 8
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b)
	return strings.ToUpper(encoded[:length]), nil
}

// NormalizeCode trims and upper-cases a participant code so lookups are
// case-insensitive
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
