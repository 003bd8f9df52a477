package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testResourceID = "11111111-1111-1111-1111-111111111111"
	testEmail      = "vendor@hartwell-fittings.example"
)

func TestMagicLinkStore_IssueAndConsume(t *testing.T) {
	t.Parallel()

	store := NewMagicLinkStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, testResourceID, testEmail, time.Hour)
	require.NoError(t, err)
	require.Len(t, token, 32)

	ok, err := store.Consume(ctx, token, testResourceID, testEmail)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMagicLinkStore_ConsumeIsSingleUse(t *testing.T) {
	t.Parallel()

	store := NewMagicLinkStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, testResourceID, testEmail, time.Hour)
	require.NoError(t, err)

	ok, err := store.Consume(ctx, token, testResourceID, testEmail)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.Consume(ctx, token, testResourceID, testEmail)
	require.NoError(t, err)
	assert.False(t, ok, "replay with identical arguments must fail")
}

func TestMagicLinkStore_WrongFieldsDestroyToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resourceID string
		email      string
	}{
		{name: "wrong resource", resourceID: "22222222-2222-2222-2222-222222222222", email: testEmail},
		{name: "wrong email", resourceID: testResourceID, email: "other@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewMagicLinkStore()
			ctx := context.Background()

			token, err := store.Issue(ctx, testResourceID, testEmail, time.Hour)
			require.NoError(t, err)

			ok, err := store.Consume(ctx, token, tt.resourceID, tt.email)
			require.NoError(t, err)
			require.False(t, ok)

			// A failed attempt burns the token: retrying with the correct
			// fields must not succeed.
			ok, err = store.Consume(ctx, token, testResourceID, testEmail)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestMagicLinkStore_EmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	store := NewMagicLinkStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, testResourceID, "  Vendor@Hartwell-Fittings.Example ", time.Hour)
	require.NoError(t, err)

	ok, err := store.Consume(ctx, token, testResourceID, "VENDOR@hartwell-fittings.example")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMagicLinkStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewMagicLinkStore()
	ctx := context.Background()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	token, err := store.Issue(ctx, testResourceID, testEmail, 30*time.Minute)
	require.NoError(t, err)

	current = current.Add(31 * time.Minute)

	ok, err := store.Consume(ctx, token, testResourceID, testEmail)
	require.NoError(t, err)
	assert.False(t, ok, "expired token must not verify")
}

func TestMagicLinkStore_ZeroTTLDefaultsToAnHour(t *testing.T) {
	t.Parallel()

	store := NewMagicLinkStore()
	ctx := context.Background()

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	token, err := store.Issue(ctx, testResourceID, testEmail, 0)
	require.NoError(t, err)

	current = current.Add(59 * time.Minute)

	ok, err := store.Consume(ctx, token, testResourceID, testEmail)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMagicLinkStore_ConcurrentConsume(t *testing.T) {
	t.Parallel()

	store := NewMagicLinkStore()
	ctx := context.Background()

	token, err := store.Issue(ctx, testResourceID, testEmail, time.Hour)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	results := make(chan bool, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, consumeErr := store.Consume(ctx, token, testResourceID, testEmail)
			assert.NoError(t, consumeErr)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent consume may win")
}
