package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasscode(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 100 {
		code := NewPasscode()
		require.Len(t, code, 6)
		for _, c := range code {
			assert.Contains(t, passcodeAlphabet, string(c))
		}
		seen[code] = true
	}
	// 36^6 combinations; 100 draws colliding down to a handful would mean
	// the generator is broken, not unlucky.
	assert.Greater(t, len(seen), 90)
}

func TestNewSlug(t *testing.T) {
	t.Parallel()

	slug := NewSlug()
	require.Len(t, slug, 16)
	assert.Regexp(t, "^[0-9a-f]{16}$", slug)

	assert.NotEqual(t, slug, NewSlug())
}

func TestNewToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "8 bytes", n: 8, wantLen: 16},
		{name: "16 bytes", n: 16, wantLen: 32},
		{name: "32 bytes", n: 32, wantLen: 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			token := NewToken(tt.n)
			assert.Len(t, token, tt.wantLen)
			assert.Regexp(t, "^[0-9a-f]+$", token)
		})
	}
}
