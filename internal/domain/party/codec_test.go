package party

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_EncodeDecode(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-signing-key"))

	session := SoftSession{
		Name:       "Avery Lane",
		Email:      "avery@lane-goods.example",
		Scope:      KindIssue.Namespace("issue-1"),
		FallbackID: "ext-abc123",
	}

	value, err := codec.Encode(session)
	require.NoError(t, err)
	require.NotEmpty(t, value)

	decoded, ok := codec.Decode(value)
	require.True(t, ok)
	assert.Equal(t, session, decoded)
}

func TestCodec_DecodeRejectsTampering(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-signing-key"))

	value, err := codec.Encode(SoftSession{Name: "Avery"})
	require.NoError(t, err)

	body, mac, found := strings.Cut(value, ".")
	require.True(t, found)

	// Re-sign the same body with a different key.
	other := NewCodec([]byte("other-key"))
	otherValue, err := other.Encode(SoftSession{Name: "Avery"})
	require.NoError(t, err)
	_, otherMac, _ := strings.Cut(otherValue, ".")

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty value", value: ""},
		{name: "no separator", value: body},
		{name: "body only", value: body + "."},
		{name: "mac only", value: "." + mac},
		{name: "flipped body byte", value: "A" + body[1:] + "." + mac},
		{name: "truncated mac", value: body + "." + mac[:len(mac)-2]},
		{name: "mac from different key", value: body + "." + otherMac},
		{name: "garbage", value: "not-a-cookie-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			decoded, ok := codec.Decode(tt.value)
			assert.False(t, ok)
			assert.Zero(t, decoded)
		})
	}
}

func TestCodec_DecodeRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	codec := NewCodec([]byte("test-signing-key"))

	// A correctly signed value whose body is not base64url JSON.
	signedGarbage := func(body string) string {
		return body + "." + codec.sign(body)
	}

	tests := []struct {
		name  string
		value string
	}{
		{name: "not base64", value: signedGarbage("!!not-base64!!")},
		{name: "not json", value: signedGarbage("bm90LWpzb24")},
		{name: "empty name claim", value: mustEncodeRaw(t, codec, SoftSession{Email: "a@b.example"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := codec.Decode(tt.value)
			assert.False(t, ok)
		})
	}
}

func mustEncodeRaw(t *testing.T, codec Codec, s SoftSession) string {
	t.Helper()
	value, err := codec.Encode(s)
	require.NoError(t, err)
	return value
}

func TestCodec_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	a := NewCodec([]byte("key-a"))
	b := NewCodec([]byte("key-b"))

	value, err := a.Encode(SoftSession{Name: "Noor"})
	require.NoError(t, err)

	_, ok := b.Decode(value)
	assert.False(t, ok, "a codec with a different key must reject the cookie")

	decoded, ok := a.Decode(value)
	require.True(t, ok)
	assert.Equal(t, "Noor", decoded.Name)
}
