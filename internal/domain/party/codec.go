package party

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Codec encodes soft sessions into cookie values and back. The envelope is
// base64url(JSON claims) + "." + base64url(HMAC-SHA256), so a cookie cannot
// be forged or altered by guessing the resource id. The key is shared by
// all resources; the signed Scope claim binds each session to one of them,
// since cookie names alone are attacker-chosen.
type Codec struct {
	key []byte
}

// NewCodec creates a codec signing with the given key.
func NewCodec(key []byte) Codec {
	return Codec{key: key}
}

// Encode serializes and signs the session into a cookie-safe value.
func (c Codec) Encode(s SoftSession) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + c.sign(body), nil
}

// Decode parses and verifies a cookie value. Any malformed, truncated, or
// tampered input yields (zero, false); decode never errors, since bad
// cookies are expected results of normal traffic.
func (c Codec) Decode(value string) (SoftSession, bool) {
	body, mac, ok := strings.Cut(value, ".")
	if !ok {
		return SoftSession{}, false
	}
	if !hmac.Equal([]byte(mac), []byte(c.sign(body))) {
		return SoftSession{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return SoftSession{}, false
	}
	var s SoftSession
	if err := json.Unmarshal(payload, &s); err != nil {
		return SoftSession{}, false
	}
	if s.Name == "" {
		return SoftSession{}, false
	}
	return s, true
}

func (c Codec) sign(body string) string {
	mac := hmac.New(sha256.New, c.key)
	_, _ = mac.Write([]byte(body))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
