package secret

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// MustNew generates a new cryptographically secure byte array of length len and returns its URL-safe base64
// representation + the hex encoded SHA512 hash of the raw bytes
func MustNew(len int) (string, string) {
	bytes := make([]byte, len)
	_, err := rand.Read(bytes)
	if err != nil {
		panic(err)
	}

	raw := base64.RawURLEncoding.EncodeToString(bytes)
	sum := sha512.Sum512(bytes)
	return raw, hex.EncodeToString(sum[:])
}

// Hash decodes the given base64 string and returns the hex encoded SHA512 hash of its bytes
func Hash(raw string) (string, error) {
	bytes, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", err
	}
	sum := sha512.Sum512(bytes)
	return hex.EncodeToString(sum[:]), nil
}

// Sign appends an HMAC-SHA256 signature of value (keyed with key) to value, separated by a dot
func Sign(key, value string) string {
	return value + "." + signature(key, value)
}

// Verify checks the signature appended by Sign and returns the original value
func Verify(key, signed string) (string, bool) {
	value, sig, ok := strings.Cut(signed, ".")
	if !ok || value == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(signature(key, value))) {
		return "", false
	}
	return value, true
}

func signature(key, value string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
