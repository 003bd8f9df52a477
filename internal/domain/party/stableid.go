package party

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// stableIDHexLen is the truncation width of a derived stable id. 128 bits
// of digest keeps the id well inside messaging-backend id length limits
// while making preimage search and collisions impractical.
const stableIDHexLen = 32

// ExternalStableID derives the messaging-backend identity for an external
// party from a namespace and their email. The derivation is deterministic,
// so the same party reconnecting (new cookie, new process) maps to the same
// channel member and history, and one-way, so the backend's directory never
// sees raw email addresses. The output uses only [a-z0-9-].
func ExternalStableID(namespace, email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := sha256.Sum256([]byte(namespace + "|" + normalized))
	return "ext-" + hex.EncodeToString(sum[:])[:stableIDHexLen]
}

// RandomStableID returns a random stable id for sessions with no email.
// It is persisted inside the soft-session cookie so the identity survives
// for the cookie's lifetime, but not beyond it.
func RandomStableID() string {
	return "ext-" + NewToken(stableIDHexLen/2)
}
