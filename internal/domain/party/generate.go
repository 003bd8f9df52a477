package party

import (
	"crypto/rand"
	"encoding/hex"
)

const passcodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewPasscode returns a 6-character uppercase alphanumeric access code.
// No uniqueness check is performed: a passcode is only meaningful combined
// with its resource's slug, so cross-resource collisions are tolerable.
func NewPasscode() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	out := make([]byte, len(buf))
	for i, b := range buf {
		out[i] = passcodeAlphabet[int(b)%len(passcodeAlphabet)]
	}
	return string(out)
}

// NewSlug returns a 16-character lowercase hex URL slug (64-bit keyspace).
func NewSlug() string {
	return NewToken(8)
}

// NewToken returns a hex string of n random bytes from crypto/rand.
func NewToken(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
